package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

// schemeCmd manages the government-scheme collections: PPF, floating rate
// bonds and NPS.
type schemeCmd struct {
	kind        string
	institution string
	number      string
	issuer      string
	pran        string
	amount      string
	value       string
	rate        string
	id          string
}

func (*schemeCmd) Name() string     { return "scheme" }
func (*schemeCmd) Synopsis() string { return "manage PPF, bonds and NPS" }
func (*schemeCmd) Usage() string {
	return `nv scheme add -kind ppf -institution <name> -amount <balance> [-number <acc no>]
nv scheme add -kind frb -issuer <name> -amount <amount> [-rate <pct>]
nv scheme add -kind nps -pran <pran> -amount <invested> [-value <current>]
nv scheme list
nv scheme delete -id <id> -kind <kind>
`
}

func (c *schemeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "ppf", "Scheme kind: ppf, frb or nps")
	f.StringVar(&c.institution, "institution", "", "Institution holding the PPF account")
	f.StringVar(&c.number, "number", "", "PPF account number")
	f.StringVar(&c.issuer, "issuer", "", "Bond issuer")
	f.StringVar(&c.pran, "pran", "", "NPS PRAN")
	f.StringVar(&c.amount, "amount", "", "Balance (ppf), principal (frb) or invested amount (nps)")
	f.StringVar(&c.value, "value", "", "Current NPS value, defaults to the invested amount")
	f.StringVar(&c.rate, "rate", "0", "Interest rate in percent, frb only")
	f.StringVar(&c.id, "id", "", "Record id, for delete")
}

func (c *schemeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		var id string
		switch c.kind {
		case "ppf":
			p, err := nivesh.CreatePPF(s, sess.UserID, nivesh.PublicProvidentFund{
				Institution: c.institution, AccountNumber: c.number, Balance: amount,
			})
			if err != nil {
				return fail(err)
			}
			id = p.ID
		case "frb":
			rate, err := parseAmount(c.rate)
			if err != nil {
				return usage("invalid rate: %v", err)
			}
			fr, err := nivesh.CreateFRB(s, sess.UserID, nivesh.FloatingRateBond{
				Issuer: c.issuer, Amount: amount, InterestRate: rate,
			})
			if err != nil {
				return fail(err)
			}
			id = fr.ID
		case "nps":
			value := amount
			if c.value != "" {
				if value, err = parseAmount(c.value); err != nil {
					return usage("invalid value: %v", err)
				}
			}
			n, err := nivesh.CreateNPS(s, sess.UserID, nivesh.NationalPensionScheme{
				PRAN: c.pran, InvestedAmount: amount, CurrentValue: value,
			})
			if err != nil {
				return fail(err)
			}
			id = n.ID
		default:
			return usage("unknown scheme kind %q, want ppf, frb or nps", c.kind)
		}
		fmt.Printf("Added %s record %s\n", c.kind, id)

	case "list":
		doc, err := nivesh.ReadAssets(s, sess.UserID)
		if err != nil {
			return fail(err)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "# Schemes\n\n")
		fmt.Fprintf(&b, "| ID | Kind | Holder | Value |\n|---|---|---|---:|\n")
		for _, p := range doc.PPF {
			fmt.Fprintf(&b, "| %s | PPF | %s | %s |\n", p.ID, p.Institution, nivesh.INR(p.Balance))
		}
		for _, fr := range doc.FRB {
			fmt.Fprintf(&b, "| %s | FRB | %s | %s |\n", fr.ID, fr.Issuer, nivesh.INR(fr.Amount))
		}
		for _, n := range doc.NPS {
			fmt.Fprintf(&b, "| %s | NPS | %s | %s |\n", n.ID, n.PRAN, nivesh.INR(n.CurrentValue))
		}
		printMarkdown(b.String())

	case "delete":
		if c.id == "" {
			return usage("delete needs -id")
		}
		switch c.kind {
		case "ppf":
			err = nivesh.DeletePPF(s, sess.UserID, c.id)
		case "frb":
			err = nivesh.DeleteFRB(s, sess.UserID, c.id)
		case "nps":
			err = nivesh.DeleteNPS(s, sess.UserID, c.id)
		default:
			return usage("unknown scheme kind %q, want ppf, frb or nps", c.kind)
		}
		if err != nil {
			return fail(err)
		}
		fmt.Printf("Deleted %s record %s\n", c.kind, c.id)

	default:
		return usage("unknown verb %q, want add, list or delete", f.Arg(0))
	}
	return subcommands.ExitSuccess
}
