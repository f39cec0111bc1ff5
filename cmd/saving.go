package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/renderer"
)

type savingCmd struct {
	description string
	kind        string
	amount      string
	date        string
	id          string
}

func (*savingCmd) Name() string     { return "saving" }
func (*savingCmd) Synopsis() string { return "record and list savings" }
func (*savingCmd) Usage() string {
	return `nv saving add -description <text> -amount <amount> [-type <type>] [-date <date>]
nv saving list
nv saving delete -id <id>
`
}

func (c *savingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the money was put into")
	f.StringVar(&c.kind, "type", "", "Optional saving type, e.g. sip, fd, cash")
	f.StringVar(&c.amount, "amount", "", "Amount saved")
	f.StringVar(&c.date, "date", "", "Date of the saving, defaults to today")
	f.StringVar(&c.id, "id", "", "Record id, for delete")
}

func (c *savingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		v, err := nivesh.CreateSaving(s, sess.UserID, nivesh.Saving{
			Description: c.description,
			Type:        c.kind,
			Amount:      amount,
			Date:        on,
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Added saving %s\n", v.ID)

	case "list":
		savings, err := nivesh.ReadSavings(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderEntries(renderer.NewSavingEntries(savings)))

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		if err := nivesh.DeleteSaving(s, sess.UserID, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted saving %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
