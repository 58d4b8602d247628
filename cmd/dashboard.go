package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type dashboardCmd struct {
	period string
	tail   int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the profit dashboard" }
func (*dashboardCmd) Usage() string {
	return `tth dashboard [-period <weekly|monthly|yearly>] [-n <rows>]

  Displays the news ticker, goal progress, profit metrics, and the latest
  history and inventory rows.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "weekly", "Goal period to display (weekly, monthly, yearly)")
	f.IntVar(&c.tail, "n", 5, "Number of history and inventory rows to display")
}

func (c *dashboardCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()
	state := session.State
	region := session.Region()
	today := thrifthunter.Today()

	var b strings.Builder
	fmt.Fprintf(&b, "# 🦅 %s — %s\n\n", state.StoreName, state.Username)

	for _, line := range thrifthunter.NewsTicker(today, region) {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	fmt.Fprintln(&b)

	// Goal progress for the selected period.
	period := thrifthunter.ParsePeriod(c.period)
	profit := thrifthunter.PeriodProfit(state.History, period, today)
	target := state.Goals.For(period)
	progress := thrifthunter.GoalProgress(profit, target)
	fmt.Fprintf(&b, "**%s goal:** %s / %s (%s)\n\n",
		period, region.Format(profit), region.Format(target), progressBar(progress))

	// Lifetime metrics, tax-adjusted when the Pro taxman is on.
	lifetime := thrifthunter.PeriodProfit(state.History, thrifthunter.Lifetime, today)
	if state.IsPro && state.TaxMode {
		view := thrifthunter.TaxAdjusted(lifetime, state.TaxRate)
		fmt.Fprintf(&b, "| Gross | Net | Tax | Inventory |\n|---|---|---|---|\n")
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n\n",
			region.Format(view.Gross), region.Format(view.Net), region.Format(view.Held), len(state.Inventory))
	} else {
		fmt.Fprintf(&b, "| Total Profit | Active Inventory | Items Scanned |\n|---|---|---|\n")
		fmt.Fprintf(&b, "| %s | %d | %d |\n\n", region.Format(lifetime), len(state.Inventory), state.ItemsScanned)
	}

	if n := len(state.History); n > 0 {
		fmt.Fprintf(&b, "## 📜 History\n\n| Date | Item | Profit | Source |\n|---|---|---|---|\n")
		for _, rec := range state.History[:min(c.tail, n)] {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", rec.Date, rec.Item, region.Format(rec.Profit), rec.Source)
		}
		fmt.Fprintln(&b)
	}
	if n := len(state.Inventory); n > 0 {
		fmt.Fprintf(&b, "## 📦 Inventory\n\n| Date | Item | Cost | Expected | Source |\n|---|---|---|---|---|\n")
		start := max(0, n-c.tail)
		for _, item := range state.Inventory[start:] {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				item.Date, item.Item, region.Format(item.Cost), region.Format(item.Expected), item.Source)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// progressBar renders a ratio in [0,1] as a ten-slot bar.
func progressBar(ratio float64) string {
	filled := int(ratio * 10)
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
