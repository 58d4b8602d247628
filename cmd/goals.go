package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	thrifthunter "github.com/focusos/thrifthunter"
)

type goalsCmd struct {
	weekly  float64
	monthly float64
	yearly  float64
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show or set the profit goals" }
func (*goalsCmd) Usage() string {
	return `tth goals [-weekly <w>] [-monthly <m>] [-yearly <y>]

  Without flags, displays progress against each goal. With flags, replaces
  the targets (unset flags keep their current value).
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.weekly, "weekly", -1, "Weekly profit target")
	f.Float64Var(&c.monthly, "monthly", -1, "Monthly profit target")
	f.Float64Var(&c.yearly, "yearly", -1, "Yearly profit target")
}

func (c *goalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if c.weekly >= 0 || c.monthly >= 0 || c.yearly >= 0 {
		goals := session.State.Goals
		if c.weekly >= 0 {
			goals.Weekly = decimal.NewFromFloat(c.weekly)
		}
		if c.monthly >= 0 {
			goals.Monthly = decimal.NewFromFloat(c.monthly)
		}
		if c.yearly >= 0 {
			goals.Yearly = decimal.NewFromFloat(c.yearly)
		}
		if err := session.SetGoals(goals.Weekly, goals.Monthly, goals.Yearly); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	region := session.Region()
	today := thrifthunter.Today()
	var b strings.Builder
	fmt.Fprintf(&b, "# 🎯 Goals\n\n| Period | Profit | Target | Progress |\n|---|---|---|---|\n")
	for _, period := range thrifthunter.GoalPeriods {
		profit := thrifthunter.PeriodProfit(session.State.History, period, today)
		target := session.State.Goals.For(period)
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			period, region.Format(profit), region.Format(target),
			progressBar(thrifthunter.GoalProgress(profit, target)))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
