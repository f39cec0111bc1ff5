package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
	"github.com/nivesh/nivesh/renderer"
)

type yearlyCmd struct {
	kind string
	fy   int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display a financial-year report" }
func (*yearlyCmd) Usage() string {
	return `nv yearly [-kind expenses|savings|dividends] [-fy <starting year>]

  Displays month-by-month totals for an April-March financial year. The
  report is recomputed from the raw entries every time; -fy 2024 selects
  FY 2024-25 and defaults to the current one.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expenses", "Collection to aggregate: expenses, savings or dividends")
	f.IntVar(&c.fy, "fy", int(date.CurrentFY()), "Financial year by its starting calendar year")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}
	fy := date.FinancialYear(c.fy)

	var agg nivesh.YearlyAggregate
	var title string
	switch c.kind {
	case "expenses":
		title = "Expenses"
		agg, err = nivesh.LoadYearlyExpenses(s, sess.UserID, fy)
	case "savings":
		title = "Savings"
		agg, err = nivesh.LoadYearlyFinancial(s, sess.UserID, fy)
	case "dividends":
		title = "Dividends"
		agg, err = nivesh.LoadYearlyDividends(s, sess.UserID, fy)
	default:
		return usage("unknown kind %q, want expenses, savings or dividends", c.kind)
	}
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderYearly(renderer.NewYearly(title, agg)))
	return subcommands.ExitSuccess
}
