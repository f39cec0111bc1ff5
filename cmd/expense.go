package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/renderer"
)

type expenseCmd struct {
	description string
	amount      string
	category    string
	date        string
	id          string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record and list expenses" }
func (*expenseCmd) Usage() string {
	return `nv expense add -description <text> -amount <amount> [-category <cat>] [-date <date>]
nv expense list
nv expense update -id <id> [-amount <amount>] [-category <cat>]
nv expense delete -id <id>
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "description", "", "What the money went to")
	f.StringVar(&c.amount, "amount", "", "Amount spent")
	f.StringVar(&c.category, "category", "", "Optional category")
	f.StringVar(&c.date, "date", "", "Date of the expense, defaults to today")
	f.StringVar(&c.id, "id", "", "Record id, for update and delete")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		e, err := nivesh.CreateExpense(s, sess.UserID, nivesh.Expense{
			Description: c.description,
			Amount:      amount,
			Category:    c.category,
			Date:        on,
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Added expense %s\n", e.ID)

	case "list":
		expenses, err := nivesh.ReadExpenses(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderEntries(renderer.NewExpenseEntries(expenses)))

	case "update":
		if c.id == "" {
			return usage("update needs -id")
		}
		_, err := nivesh.UpdateExpense(s, sess.UserID, c.id, func(e *nivesh.Expense) {
			if c.description != "" {
				e.Description = c.description
			}
			if c.category != "" {
				e.Category = c.category
			}
			if c.amount != "" {
				if amount, err := parseAmount(c.amount); err == nil {
					e.Amount = amount
				}
			}
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated expense %s\n", c.id)

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		if err := nivesh.DeleteExpense(s, sess.UserID, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted expense %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list, update or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
