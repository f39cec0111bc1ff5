package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type accountCmd struct {
	bank    string
	number  string
	kind    string
	balance string
	id      string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "manage bank accounts" }
func (*accountCmd) Usage() string {
	return `nv account add -bank <name> -balance <amount> [-number <acc no>] [-type savings|current]
nv account list
nv account update -id <id> [-balance <amount>] [-bank <name>]
nv account delete -id <id>
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bank, "bank", "", "Bank name")
	f.StringVar(&c.number, "number", "", "Account number")
	f.StringVar(&c.kind, "type", "savings", "Account type")
	f.StringVar(&c.balance, "balance", "", "Current balance")
	f.StringVar(&c.id, "id", "", "Record id, for update and delete")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		balance, err := parseAmount(c.balance)
		if err != nil {
			return usage("%v", err)
		}
		acc, err := nivesh.CreateBankAccount(s, sess.UserID, nivesh.BankAccount{
			BankName:      c.bank,
			AccountNumber: c.number,
			AccountType:   c.kind,
			Balance:       balance,
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Added bank account %s\n", acc.ID)

	case "list":
		doc, err := nivesh.ReadAssets(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "# Bank Accounts\n\n")
		fmt.Fprintf(&b, "| ID | Bank | Number | Type | Balance |\n|---|---|---|---|---:|\n")
		for _, a := range doc.BankAccounts {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", a.ID, a.BankName, a.AccountNumber, a.AccountType, nivesh.INR(a.Balance))
		}
		printMarkdown(b.String())

	case "update":
		if c.id == "" {
			return usage("update needs -id")
		}
		_, err := nivesh.UpdateBankAccount(s, sess.UserID, c.id, func(a *nivesh.BankAccount) {
			if c.bank != "" {
				a.BankName = c.bank
			}
			if c.balance != "" {
				if balance, err := parseAmount(c.balance); err == nil {
					a.Balance = balance
				}
			}
		})
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Updated bank account %s\n", c.id)

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		if err := nivesh.DeleteBankAccount(s, sess.UserID, c.id); err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted bank account %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list, update or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
