package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	thrifthunter "github.com/focusos/thrifthunter"
)

type titleCmd struct {
	gender   string
	size     string
	keywords string
}

func (*titleCmd) Name() string     { return "title" }
func (*titleCmd) Synopsis() string { return "build a marketplace listing title" }
func (*titleCmd) Usage() string {
	return `tth title [-gender <Men's|Women's>] [-size <s>] [-keys <k1,k2>] <brand/item>

  Assembles a listing title, e.g. "Nike Hoodie Men's Vintage 90s Size L".
`
}

func (c *titleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gender, "gender", "Men's", "Gender label")
	f.StringVar(&c.size, "size", "L", "Size label")
	f.StringVar(&c.keywords, "keys", "", "Comma-separated keywords (e.g. Vintage,90s)")
}

func (c *titleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: title needs a brand/item")
		return subcommands.ExitUsageError
	}
	var keys []string
	for _, k := range strings.Split(c.keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	fmt.Println(thrifthunter.BuildTitle(strings.Join(f.Args(), " "), c.gender, c.size, keys))
	return subcommands.ExitSuccess
}
