package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	thrifthunter "github.com/focusos/thrifthunter"
	"github.com/focusos/thrifthunter/agent"
)

type describeCmd struct {
	condition string
	ai        bool
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "generate a listing description (Pro)" }
func (*describeCmd) Usage() string {
	return `tth describe [-condition <Excellent|Good|Fair>] [-ai] <item>

  Generates a listing description. With -ai, asks the Gemini listing
  assistant instead of the offline template.
`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.condition, "condition", "Good", "Item condition")
	f.BoolVar(&c.ai, "ai", false, "Use the AI listing assistant")
}

func (c *describeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: describe needs an item")
		return subcommands.ExitUsageError
	}
	session := openSession()
	if !session.State.IsPro {
		fmt.Fprintln(os.Stderr, "🔒 Description Gen is a Pro feature, activate a license first")
		return subcommands.ExitFailure
	}
	item := strings.Join(f.Args(), " ")

	if c.ai {
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
			return subcommands.ExitFailure
		}
		lister := agent.NewLister()
		if err := lister.Start(ctx, client); err != nil {
			fmt.Fprintln(os.Stderr, "Error starting listing assistant:", err)
			return subcommands.ExitFailure
		}
		text, err := lister.Describe(ctx, item, c.condition)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Listing assistant failed:", err)
			return subcommands.ExitFailure
		}
		fmt.Println(text)
		return subcommands.ExitSuccess
	}

	printMarkdown(thrifthunter.Describe(item, c.condition))
	return subcommands.ExitSuccess
}
