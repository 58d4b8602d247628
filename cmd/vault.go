package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type vaultCmd struct{}

func (*vaultCmd) Name() string     { return "vault" }
func (*vaultCmd) Synopsis() string { return "display the regional deal vault (Pro)" }
func (*vaultCmd) Usage() string {
	return `tth vault

  Displays the live deal vault for the current region.
`
}

func (*vaultCmd) SetFlags(_ *flag.FlagSet) {}

func (*vaultCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	if !session.State.IsPro {
		fmt.Fprintln(os.Stderr, "🔒 The Vault is a Pro feature, activate a license first")
		return subcommands.ExitFailure
	}

	catalog, degraded := thrifthunter.NewCatalogCache().Get()
	var b strings.Builder
	fmt.Fprintf(&b, "# 🔐 The Vault — %s\n\n", session.Region().Name)
	if degraded != "" {
		fmt.Fprintf(&b, "_live data unavailable: %s_\n", degraded)
	}
	for _, deal := range catalog.VaultFor(session.State.Region) {
		fmt.Fprintf(&b, "- %v\n", deal)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
