package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type itemCmd struct {
	title       string
	description string
	amount      string
	category    string
	id          string
}

func (*itemCmd) Name() string     { return "item" }
func (*itemCmd) Synopsis() string { return "manage free-form records" }
func (*itemCmd) Usage() string {
	return `nv item add -title <title> [-amount <amount>] [-category <cat>] [-description <text>]
nv item list
nv item update -id <id> [-title <title>] [-amount <amount>]
nv item delete -id <id>

  Items are free-form records outside the asset document: reminders,
  one-off notes, anything with a title and maybe an amount.
`
}

func (c *itemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Item title")
	f.StringVar(&c.description, "description", "", "Longer description")
	f.StringVar(&c.amount, "amount", "", "Optional amount")
	f.StringVar(&c.category, "category", "", "Optional category")
	f.StringVar(&c.id, "id", "", "Record id, for update and delete")
}

func (c *itemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		item := nivesh.Item{Title: c.title, Description: c.description, Category: c.category}
		if c.amount != "" {
			amount, err := parseAmount(c.amount)
			if err != nil {
				return usage("%v", err)
			}
			item.Amount = amount
		}
		created, err := nivesh.CreateItem(s, sess.UserID, item)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Added item %s\n", created.ID)

	case "list":
		items, err := nivesh.ReadItems(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "# Items\n\n")
		fmt.Fprintf(&b, "| ID | Title | Category | Amount |\n|---|---|---|---:|\n")
		for _, it := range items {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", it.ID, it.Title, it.Category, nivesh.INR(it.Amount))
		}
		printMarkdown(b.String())

	case "update":
		if c.id == "" {
			return usage("update needs -id")
		}
		_, err := nivesh.UpdateItem(s, sess.UserID, c.id, func(it *nivesh.Item) {
			if c.title != "" {
				it.Title = c.title
			}
			if c.description != "" {
				it.Description = c.description
			}
			if c.category != "" {
				it.Category = c.category
			}
			if c.amount != "" {
				if amount, err := parseAmount(c.amount); err == nil {
					it.Amount = amount
				}
			}
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated item %s\n", c.id)

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		if err := nivesh.DeleteItem(s, sess.UserID, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted item %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list, update or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
