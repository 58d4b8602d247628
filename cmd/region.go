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

type regionCmd struct{}

func (*regionCmd) Name() string     { return "region" }
func (*regionCmd) Synopsis() string { return "show or switch the marketplace region" }
func (*regionCmd) Usage() string {
	return `tth region [<region key>]

  Without an argument, lists the known regions and marks the current one.
  With an argument, switches to that region.
`
}

func (*regionCmd) SetFlags(_ *flag.FlagSet) {}

func (*regionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if f.NArg() > 0 {
		key := strings.Join(f.Args(), " ")
		if err := session.SetRegion(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	current := session.Region()
	for _, key := range thrifthunter.RegionKeys() {
		marker := "  "
		if key == current.Name {
			marker = "🌍"
		}
		r := thrifthunter.LookupRegion(key)
		fmt.Printf("%s %s  (%s, %s, ship %s)\n", marker, key, r.CurrencyCode, r.Ebay, r.Format(r.DefaultShipping))
	}
	return subcommands.ExitSuccess
}
