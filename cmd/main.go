// Package cmd implements the CLI application to run the thrift-resale
// dashboard: recording sales, tracking inventory and goals, and managing the
// Pro license.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "dashboard")
	c.Register(&scanCmd{}, "dashboard")
	c.Register(&soldCmd{}, "ledger")
	c.Register(&stockCmd{}, "ledger")
	c.Register(&goalsCmd{}, "ledger")

	c.Register(&watchCmd{}, "supplies")
	c.Register(&dealsCmd{}, "supplies")

	c.Register(&titleCmd{}, "toolkit")
	c.Register(&describeCmd{}, "toolkit")
	c.Register(&offerCmd{}, "toolkit")
	c.Register(&bulkCmd{}, "toolkit")
	c.Register(&sizesCmd{}, "toolkit")

	c.Register(&activateCmd{}, "pro")
	c.Register(&vaultCmd{}, "pro")
	c.Register(&taxCmd{}, "pro")

	c.Register(&settingsCmd{}, "settings")
	c.Register(&regionCmd{}, "settings")
	c.Register(&resetCmd{}, "settings")
	c.Register(&serveCmd{}, "settings")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stateFile = flag.String("state-file", defaultStatePath(), "Path to the dashboard state file (JSON)")

// defaultStatePath honors TTH_STATE_FILE when the flag is not given.
func defaultStatePath() string {
	if path := os.Getenv("TTH_STATE_FILE"); path != "" {
		return path
	}
	return thrifthunter.DefaultStatePath
}

// openSession loads the session state from the app state file.
func openSession() *thrifthunter.Session {
	return thrifthunter.OpenSession(thrifthunter.NewStore(*stateFile))
}
