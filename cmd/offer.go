package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	thrifthunter "github.com/focusos/thrifthunter"
)

type offerCmd struct {
	buy   float64
	offer float64
}

func (*offerCmd) Name() string     { return "offer" }
func (*offerCmd) Synopsis() string { return "check the profit of accepting a buyer offer" }
func (*offerCmd) Usage() string {
	return `tth offer -buy <cost> -offer <amount>

  Computes the profit of accepting an incoming offer (offer - cost - 20% fee)
  and says whether it is worth taking.
`
}

func (c *offerCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.buy, "buy", 10, "What you paid for the item")
	f.Float64Var(&c.offer, "offer", 20, "The buyer's offer amount")
}

func (c *offerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	region := session.Region()

	profit := thrifthunter.OfferProfit(decimal.NewFromFloat(c.buy), decimal.NewFromFloat(c.offer))
	if profit.IsPositive() {
		fmt.Printf("✅ Profit: %s — take it\n", region.Format(profit))
	} else {
		fmt.Printf("🚫 Loss: %s — counter or decline\n", region.Format(profit))
	}
	return subcommands.ExitSuccess
}
