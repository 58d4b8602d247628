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

type scanCmd struct {
	sold      bool
	blacklist bool
}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "build marketplace comp-check links for an item" }
func (*scanCmd) Usage() string {
	return `tth scan [-sold] [-blacklist] <item name>

  Prints the marketplace search links used to check comparable prices for an
  item in the current region, and optionally the live brand blacklist.
`
}

func (c *scanCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.sold, "sold", true, "Restrict the marketplace search to sold and completed listings")
	f.BoolVar(&c.blacklist, "blacklist", false, "Also display the live brand blacklist")
}

func (c *scanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: scan needs an item name")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

	session := openSession()
	region := session.Region()

	var b strings.Builder
	fmt.Fprintf(&b, "# 🔎 Smart Scan: %s\n\n", term)
	fmt.Fprintf(&b, "- [Check %s](%s)\n", region.Ebay, region.EbaySearchURL(term, c.sold))
	fmt.Fprintf(&b, "- [Check %s](%s)\n", region.Posh, region.PoshSearchURL(term))
	fmt.Fprintf(&b, "- [Google Lens](%s)\n", thrifthunter.LensSearchURL(term))

	if c.blacklist {
		catalog, degraded := thrifthunter.NewCatalogCache().Get()
		fmt.Fprintf(&b, "\n## ⛔ Brand Blacklist\n\n")
		if degraded != "" {
			fmt.Fprintf(&b, "_live data unavailable: %s_\n", degraded)
		}
		for _, rec := range catalog.Blacklist {
			fmt.Fprintf(&b, "- %v\n", rec)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
