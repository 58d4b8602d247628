package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type stockCmd struct {
	item   string
	source string
	cost   float64
	expect float64
}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "add an item to the active inventory" }
func (*stockCmd) Usage() string {
	return `tth stock -item <name> -cost <c> [-expect <sale price>] [-source <label>]

  Records an item bought but not yet sold.
`
}

func (c *stockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "Item name")
	f.StringVar(&c.source, "source", "", "Acquisition source label")
	f.Float64Var(&c.cost, "cost", 0, "Acquisition cost")
	f.Float64Var(&c.expect, "expect", 0, "Expected sale price")
}

func (c *stockCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	err := session.AddInventory(c.item, c.source,
		decimal.NewFromFloat(c.cost), decimal.NewFromFloat(c.expect))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("📦 Added %q to inventory (%d items active)\n", c.item, len(session.State.Inventory))
	return subcommands.ExitSuccess
}
