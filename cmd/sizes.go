package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type sizesCmd struct {
	us float64
}

func (*sizesCmd) Name() string     { return "sizes" }
func (*sizesCmd) Synopsis() string { return "convert a US shoe size to UK and EU" }
func (*sizesCmd) Usage() string {
	return `tth sizes -us <size>

  Converts a US shoe size to its UK and EU equivalents.
`
}

func (c *sizesCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.us, "us", 9, "US shoe size")
}

func (c *sizesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	uk, eu := thrifthunter.ShoeSizes(c.us)
	fmt.Printf("US %.1f — UK: %.1f | EU: %.0f\n", c.us, uk, eu)
	return subcommands.ExitSuccess
}
