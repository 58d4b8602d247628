package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all data and delete the state file" }
func (*resetCmd) Usage() string {
	return `tth reset -force

  Clears the session back to defaults and deletes the state file. Refuses to
  run without -force.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Actually perform the reset")
}

func (c *resetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "reset deletes all history, inventory and settings; re-run with -force")
		return subcommands.ExitUsageError
	}
	session := openSession()
	if err := session.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("App reset, starting fresh")
	return subcommands.ExitSuccess
}
