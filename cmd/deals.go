package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type dealsCmd struct{}

func (*dealsCmd) Name() string     { return "deals" }
func (*dealsCmd) Synopsis() string { return "display this week's supply deals" }
func (*dealsCmd) Usage() string {
	return `tth deals

  Displays the weekly supply-deal rotation. The picks change every ISO week
  and stay stable within a week.
`
}

func (*dealsCmd) SetFlags(_ *flag.FlagSet) {}

func (*dealsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var b strings.Builder
	fmt.Fprintf(&b, "# 🛒 Supply Drop\n\n")
	for _, deal := range thrifthunter.WeeklyDeals(thrifthunter.Today()) {
		fmt.Fprintf(&b, "- %s **%s** — %s ([view](%s))\n", deal.Icon, deal.Name, deal.Deal, deal.Link)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
