package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type watchCmd struct {
	add  string
	link string
	rm   string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the supply watchlist" }
func (*watchCmd) Usage() string {
	return `tth watch [-add <name> -link <url>] [-rm <name>]

  Without flags, lists the watchlist. Watch items are identified by name.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Add a watch item with this name")
	f.StringVar(&c.link, "link", "", "Link for the added watch item")
	f.StringVar(&c.rm, "rm", "", "Remove the watch item with this name")
}

func (c *watchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	if c.add != "" {
		if err := session.AddWatch(c.add, c.link); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("👀 Watching %q\n", c.add)
	}
	if c.rm != "" {
		removed, err := session.RemoveWatch(c.rm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !removed {
			fmt.Fprintf(os.Stderr, "No watch item named %q\n", c.rm)
			return subcommands.ExitFailure
		}
		fmt.Printf("❌ Removed %q\n", c.rm)
	}

	if c.add == "" && c.rm == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "# 👀 Watchlist\n\n")
		for _, w := range session.State.Watchlist {
			fmt.Fprintf(&b, "- [%s](%s)\n", w.Name, w.Link)
		}
		printMarkdown(b.String())
	}
	return subcommands.ExitSuccess
}
