package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	thrifthunter "github.com/focusos/thrifthunter"
)

type soldCmd struct {
	item   string
	source string
	cost   float64
	sell   float64
	ship   float64
}

func (*soldCmd) Name() string     { return "sold" }
func (*soldCmd) Synopsis() string { return "record a completed sale in the history ledger" }
func (*soldCmd) Usage() string {
	return `tth sold -item <name> -cost <c> -sell <s> [-ship <fee>] [-source <label>]

  Computes the net profit (sell - cost - shipping - 13% marketplace fee) and
  prepends the sale to the history. Shipping defaults to the region's
  default shipping cost when negative.
`
}

func (c *soldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name")
	f.StringVar(&c.source, "source", "", "Acquisition source label")
	f.Float64Var(&c.cost, "cost", 0, "Acquisition cost")
	f.Float64Var(&c.sell, "sell", 0, "Sale price")
	f.Float64Var(&c.ship, "ship", -1, "Shipping cost (region default when negative)")
}

func (c *soldCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	region := session.Region()

	shipping := region.DefaultShipping
	if c.ship >= 0 {
		shipping = decimal.NewFromFloat(c.ship)
	}
	profit := thrifthunter.NetProfit(decimal.NewFromFloat(c.cost), decimal.NewFromFloat(c.sell), shipping)

	if err := session.RecordSale(c.item, c.source, profit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("💰 Sold %q for %s net profit\n", c.item, region.Format(profit))
	return subcommands.ExitSuccess
}
