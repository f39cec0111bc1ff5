package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type depositCmd struct {
	kind   string
	bank   string
	amount string
	rate   string
	start  string
	tenure int
	id     string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "manage fixed and recurring deposits" }
func (*depositCmd) Usage() string {
	return `nv deposit add -kind fd|rd -bank <name> -amount <amount> -start <date> -tenure <months> [-rate <pct>]
nv deposit list
nv deposit delete -id <id>

  For a recurring deposit (-kind rd) the amount is the monthly installment.
  Maturity dates, totals and the Active/Matured status are derived, never
  entered.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "fd", "Deposit kind: fd or rd")
	f.StringVar(&c.bank, "bank", "", "Bank name")
	f.StringVar(&c.amount, "amount", "", "Principal (fd) or monthly installment (rd)")
	f.StringVar(&c.rate, "rate", "0", "Interest rate in percent")
	f.StringVar(&c.start, "start", "", "Start date, defaults to today")
	f.IntVar(&c.tenure, "tenure", 0, "Tenure in calendar months")
	f.StringVar(&c.id, "id", "", "Record id, for delete")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		rate, err := parseAmount(c.rate)
		if err != nil {
			return usage("%v", err)
		}
		start, err := parseDateFlag(c.start)
		if err != nil {
			return usage("invalid start date: %v", err)
		}
		switch c.kind {
		case "fd":
			fd, err := nivesh.CreateFixedDeposit(s, sess.UserID, nivesh.FixedDeposit{
				BankName:     c.bank,
				Amount:       amount,
				InterestRate: rate,
				StartDate:    start,
				TenureMonths: c.tenure,
			})
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Added fixed deposit %s, matures on %s\n", fd.ID, fd.MaturityDate)
		case "rd":
			rd, err := nivesh.CreateRecurringDeposit(s, sess.UserID, nivesh.RecurringDeposit{
				BankName:      c.bank,
				MonthlyAmount: amount,
				InterestRate:  rate,
				StartDate:     start,
				TenureMonths:  c.tenure,
			})
			if err != nil {
				return fail(err)
			}
			fmt.Printf("Added recurring deposit %s, matures on %s\n", rd.ID, rd.MaturityDate)
		default:
			return usage("unknown deposit kind %q, want fd or rd", c.kind)
		}

	case "list":
		doc, err := nivesh.ReadAssets(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "# Deposits\n\n")
		fmt.Fprintf(&b, "| ID | Kind | Bank | Amount | Rate | Maturity | Status |\n|---|---|---|---:|---:|---|---|\n")
		for _, fd := range doc.FixedDeposits {
			fmt.Fprintf(&b, "| %s | FD | %s | %s | %s%% | %s | %s |\n",
				fd.ID, fd.BankName, nivesh.INR(fd.Amount), fd.InterestRate, fd.MaturityDate, fd.Status)
		}
		for _, rd := range doc.RecurringDeposits {
			fmt.Fprintf(&b, "| %s | RD | %s | %s | %s%% | %s | %s |\n",
				rd.ID, rd.BankName, nivesh.INR(rd.TotalAmount), rd.InterestRate, rd.MaturityDate, rd.Status)
		}
		printMarkdown(b.String())

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		switch c.kind {
		case "fd":
			err = nivesh.DeleteFixedDeposit(s, sess.UserID, c.id)
		case "rd":
			err = nivesh.DeleteRecurringDeposit(s, sess.UserID, c.id)
		default:
			return usage("unknown deposit kind %q, want fd or rd", c.kind)
		}
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted deposit %s\n", c.id)

	default:
		return usage("unknown verb %q, want add, list or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
