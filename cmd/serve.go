package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	thrifthunter "github.com/focusos/thrifthunter"
	"github.com/focusos/thrifthunter/server"
)

type serveCmd struct {
	port string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard HTTP API" }
func (*serveCmd) Usage() string {
	return `tth serve [-port <port>]

  Serves the dashboard JSON API for web front ends. The port can also come
  from a PORT entry in .env or the environment.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "Port to listen on (default 8080, or $PORT)")
}

func (c *serveCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// .env is optional; the environment still applies without one.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	port := c.port
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}

	session := openSession()
	srv := server.New(session, thrifthunter.NewCatalogCache(), thrifthunter.NewVerifier())

	fmt.Printf("Thrift Hunter API listening on :%s (state %s)\n", port, *stateFile)
	if err := http.ListenAndServe(":"+port, srv.Router()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
