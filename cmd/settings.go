package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type settingsCmd struct {
	name   string
	store  string
	theme  string
	source string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "update profile settings" }
func (*settingsCmd) Usage() string {
	return `tth settings [-name <username>] [-store <store name>] [-theme <dark|light>] [-add-source <label>]

  Updates profile settings; each change is saved immediately. Without flags,
  displays the current settings.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display username")
	f.StringVar(&c.store, "store", "", "Store display name")
	f.StringVar(&c.theme, "theme", "", "Theme (dark or light)")
	f.StringVar(&c.source, "add-source", "", "Add an acquisition source label")
}

func (c *settingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := openSession()

	fail := func(err error) subcommands.ExitStatus {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.name != "" {
		if err := session.SetUsername(c.name); err != nil {
			return fail(err)
		}
	}
	if c.store != "" {
		if err := session.SetStoreName(c.store); err != nil {
			return fail(err)
		}
	}
	if c.theme != "" {
		if err := session.SetTheme(c.theme); err != nil {
			return fail(err)
		}
	}
	if c.source != "" {
		if err := session.AddSource(c.source); err != nil {
			return fail(err)
		}
	}

	state := session.State
	fmt.Printf("User: %s\nStore: %s\nTheme: %s\nRegion: %s\nPro: %v\nSources: %v\n",
		state.Username, state.StoreName, state.Theme, state.Region, state.IsPro, state.Sources)
	return subcommands.ExitSuccess
}
