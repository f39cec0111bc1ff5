package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
	"github.com/nivesh/nivesh/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the asset summary" }
func (*summaryCmd) Usage() string {
	return `nv summary [-d <date>]

  Displays per-class subtotals and the total asset value. Derived values
  (maturities, valuations, returns) are recomputed for the given date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date for the summary")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		return usage("invalid date: %v", err)
	}

	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	doc, err := nivesh.ReadAssets(s, sess.UserID)
	if err != nil {
		return fail(err)
	}
	doc.Recompute(on)

	printMarkdown(renderer.RenderSummary(renderer.NewSummary(&doc, on)))
	return subcommands.ExitSuccess
}
