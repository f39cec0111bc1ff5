package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/renderer"
)

type dividendCmd struct {
	symbol string
	amount string
	date   string
	id     string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record and list dividends" }
func (*dividendCmd) Usage() string {
	return `nv dividend add -symbol <symbol> -amount <amount> [-date <date>]
nv dividend list
nv dividend delete -id <id>
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Paying security")
	f.StringVar(&c.amount, "amount", "", "Amount received")
	f.StringVar(&c.date, "date", "", "Payout date, defaults to today")
	f.StringVar(&c.id, "id", "", "Record id, for delete")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		amount, err := parseAmount(c.amount)
		if err != nil {
			return usage("%v", err)
		}
		on, err := parseDateFlag(c.date)
		if err != nil {
			return usage("invalid date: %v", err)
		}
		v, err := nivesh.CreateDividend(s, sess.UserID, nivesh.Dividend{
			Symbol: c.symbol,
			Amount: amount,
			Date:   on,
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Added dividend %s\n", v.ID)

	case "list":
		dividends, err := nivesh.ReadDividends(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderEntries(renderer.NewDividendEntries(dividends)))

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		if err := nivesh.DeleteDividend(s, sess.UserID, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted dividend %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
