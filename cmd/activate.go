package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type activateCmd struct{}

func (*activateCmd) Name() string     { return "activate" }
func (*activateCmd) Synopsis() string { return "verify a Pro license key and unlock Pro features" }
func (*activateCmd) Usage() string {
	return `tth activate <license key>

  Verifies the key against the licensing service (or the local override
  codes) and, on success, unlocks Pro and saves immediately.
`
}

func (*activateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *activateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: activate needs exactly one license key")
		return subcommands.ExitUsageError
	}
	session := openSession()

	valid, reason, err := session.Activate(thrifthunter.NewVerifier(), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving state: %v\n", err)
		return subcommands.ExitFailure
	}
	if !valid {
		fmt.Fprintf(os.Stderr, "❌ %s\n", reason)
		fmt.Fprintf(os.Stderr, "Get a key: %s (monthly) or %s (lifetime)\n",
			thrifthunter.PaymentLinks["monthly"], thrifthunter.PaymentLinks["lifetime"])
		return subcommands.ExitFailure
	}
	fmt.Printf("👑 Success: %s\n", reason)
	return subcommands.ExitSuccess
}
