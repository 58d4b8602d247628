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

type bulkCmd struct {
	cost  float64
	items int
}

func (*bulkCmd) Name() string     { return "bulk" }
func (*bulkCmd) Synopsis() string { return "spread a bulk lot cost per item (Pro)" }
func (*bulkCmd) Usage() string {
	return `tth bulk -cost <total> -items <n>

  Computes the cost per item of a bulk lot.
`
}

func (c *bulkCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.cost, "cost", 50, "Total lot cost")
	f.IntVar(&c.items, "items", 20, "Number of items in the lot")
}

func (c *bulkCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	if !session.State.IsPro {
		fmt.Fprintln(os.Stderr, "🔒 Bulk Calculator is a Pro feature, activate a license first")
		return subcommands.ExitFailure
	}
	perItem := thrifthunter.BulkCostPerItem(decimal.NewFromFloat(c.cost), c.items)
	fmt.Printf("Cost per item: %s\n", session.Region().Format(perItem))
	return subcommands.ExitSuccess
}
