package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	thrifthunter "github.com/focusos/thrifthunter"
)

type taxCmd struct {
	enable bool
	rate   float64
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "configure the tax buffer (Pro)" }
func (*taxCmd) Usage() string {
	return `tth tax [-enable=<true|false>] [-rate <0-50>]

  Enables the tax buffer and sets the rate held back from gross profit.
  The rate is clamped to [0, 50].
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.enable, "enable", true, "Enable the tax buffer")
	f.Float64Var(&c.rate, "rate", 25, "Tax rate percentage")
}

func (c *taxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if err := session.SetTax(c.enable, decimal.NewFromFloat(c.rate)); err != nil {
		if errors.Is(err, thrifthunter.ErrProRequired) {
			fmt.Fprintln(os.Stderr, "🔒 The Taxman is a Pro feature, activate a license first")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	if session.State.TaxMode {
		fmt.Printf("🧾 Tax buffer on at %s%%\n", session.State.TaxRate)
	} else {
		fmt.Println("🧾 Tax buffer off")
	}
	return subcommands.ExitSuccess
}
