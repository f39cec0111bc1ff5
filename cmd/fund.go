package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh"
)

// fundCmd manages the market-linked collections: mutual funds, gold ETFs,
// stocks and equity ETFs. They share the same derived valuation, so they
// share a command.
type fundCmd struct {
	kind     string
	name     string
	folio    string
	symbol   string
	units    string
	price    string
	invested string
	id       string
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "manage market-linked holdings" }
func (*fundCmd) Usage() string {
	return `nv fund add -kind mf|gold|stock|equity -name <name> -units <units> -price <price> -invested <amount>
nv fund list
nv fund update -id <id> -kind <kind> [-units <units>] [-price <price>]
nv fund delete -id <id> -kind <kind>

  Stocks take -symbol instead of -name, and -price is the NAV for funds.
  Current value and returns are derived from units, price and the invested
  amount.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "mf", "Holding kind: mf, gold, stock or equity")
	f.StringVar(&c.name, "name", "", "Fund or ETF name")
	f.StringVar(&c.folio, "folio", "", "Folio number, mutual funds only")
	f.StringVar(&c.symbol, "symbol", "", "Ticker symbol, stocks only")
	f.StringVar(&c.units, "units", "", "Units or share quantity held")
	f.StringVar(&c.price, "price", "", "Latest NAV or price per unit")
	f.StringVar(&c.invested, "invested", "", "Total amount invested")
	f.StringVar(&c.id, "id", "", "Record id, for update and delete")
}

func (c *fundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	switch f.Arg(0) {
	case "add":
		return c.add(s, sess.UserID)
	case "list":
		return c.list(s, sess.UserID)
	case "update":
		return c.update(s, sess.UserID)
	case "delete":
		return c.delete(s, sess.UserID)
	default:
		return usage("unknown verb %q, want add, list, update or delete", f.Arg(0))
	}
}

func (c *fundCmd) add(s *nivesh.Store, userID string) subcommands.ExitStatus {
	units, err := parseAmount(c.units)
	if err != nil {
		return usage("invalid units: %v", err)
	}
	price, err := parseAmount(c.price)
	if err != nil {
		return usage("invalid price: %v", err)
	}
	invested, err := parseAmount(c.invested)
	if err != nil {
		return usage("invalid invested amount: %v", err)
	}

	var id string
	switch c.kind {
	case "mf":
		mf, err := nivesh.CreateMutualFund(s, userID, nivesh.MutualFund{
			Name: c.name, FolioNumber: c.folio, Units: units, NAV: price, InvestedAmount: invested,
		})
		if err != nil {
			return fail(err)
		}
		id = mf.ID
	case "gold":
		g, err := nivesh.CreateGoldETF(s, userID, nivesh.GoldETF{
			Name: c.name, Units: units, CurrentPrice: price, InvestedAmount: invested,
		})
		if err != nil {
			return fail(err)
		}
		id = g.ID
	case "stock":
		st, err := nivesh.CreateStock(s, userID, nivesh.Stock{
			Symbol: c.symbol, Quantity: units, CurrentPrice: price, InvestedAmount: invested,
		})
		if err != nil {
			return fail(err)
		}
		id = st.ID
	case "equity":
		e, err := nivesh.CreateEquityETF(s, userID, nivesh.EquityETF{
			Name: c.name, Units: units, NAV: price, InvestedAmount: invested,
		})
		if err != nil {
			return fail(err)
		}
		id = e.ID
	default:
		return usage("unknown holding kind %q, want mf, gold, stock or equity", c.kind)
	}
	fmt.Printf("Added %s holding %s\n", c.kind, id)
	return subcommands.ExitSuccess
}

func (c *fundCmd) list(s *nivesh.Store, userID string) subcommands.ExitStatus {
	doc, err := nivesh.ReadAssets(s, userID)
	if err != nil {
		return fail(err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Market-Linked Holdings\n\n")
	fmt.Fprintf(&b, "| ID | Kind | Name | Units | Price | Value | Returns |\n|---|---|---|---:|---:|---:|---:|\n")
	for _, mf := range doc.MutualFunds {
		fmt.Fprintf(&b, "| %s | MF | %s | %s | %s | %s | %s |\n",
			mf.ID, mf.Name, mf.Units, nivesh.INR(mf.NAV), nivesh.INR(mf.CurrentValue), mf.Returns)
	}
	for _, g := range doc.GoldETFs {
		fmt.Fprintf(&b, "| %s | Gold | %s | %s | %s | %s | %s |\n",
			g.ID, g.Name, g.Units, nivesh.INR(g.CurrentPrice), nivesh.INR(g.CurrentValue), g.Returns)
	}
	for _, st := range doc.Stocks {
		fmt.Fprintf(&b, "| %s | Stock | %s | %s | %s | %s | %s |\n",
			st.ID, st.Symbol, st.Quantity, nivesh.INR(st.CurrentPrice), nivesh.INR(st.CurrentValue), st.Returns)
	}
	for _, e := range doc.EquityETFs {
		fmt.Fprintf(&b, "| %s | Equity | %s | %s | %s | %s | %s |\n",
			e.ID, e.Name, e.Units, nivesh.INR(e.NAV), nivesh.INR(e.CurrentValue), e.Returns)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func (c *fundCmd) update(s *nivesh.Store, userID string) subcommands.ExitStatus {
	if c.id == "" {
		return usage("update needs -id")
	}
	var err error
	switch c.kind {
	case "mf":
		_, err = nivesh.UpdateMutualFund(s, userID, c.id, func(mf *nivesh.MutualFund) {
			c.patch(&mf.Units, &mf.NAV, &mf.InvestedAmount)
		})
	case "gold":
		_, err = nivesh.UpdateGoldETF(s, userID, c.id, func(g *nivesh.GoldETF) {
			c.patch(&g.Units, &g.CurrentPrice, &g.InvestedAmount)
		})
	case "stock":
		_, err = nivesh.UpdateStock(s, userID, c.id, func(st *nivesh.Stock) {
			c.patch(&st.Quantity, &st.CurrentPrice, &st.InvestedAmount)
		})
	case "equity":
		_, err = nivesh.UpdateEquityETF(s, userID, c.id, func(e *nivesh.EquityETF) {
			c.patch(&e.Units, &e.NAV, &e.InvestedAmount)
		})
	default:
		return usage("unknown holding kind %q, want mf, gold, stock or equity", c.kind)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Updated %s holding %s\n", c.kind, c.id)
	return subcommands.ExitSuccess
}

func (c *fundCmd) delete(s *nivesh.Store, userID string) subcommands.ExitStatus {
	if c.id == "" {
		return usage("delete needs -id")
	}
	var err error
	switch c.kind {
	case "mf":
		err = nivesh.DeleteMutualFund(s, userID, c.id)
	case "gold":
		err = nivesh.DeleteGoldETF(s, userID, c.id)
	case "stock":
		err = nivesh.DeleteStock(s, userID, c.id)
	case "equity":
		err = nivesh.DeleteEquityETF(s, userID, c.id)
	default:
		return usage("unknown holding kind %q, want mf, gold, stock or equity", c.kind)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted %s holding %s\n", c.kind, c.id)
	return subcommands.ExitSuccess
}

// patch applies the optional -units, -price and -invested flags onto the
// record's raw fields; derived values follow on the write.
func (c *fundCmd) patch(units, price, invested *decimal.Decimal) {
	if c.units != "" {
		if v, err := parseAmount(c.units); err == nil {
			*units = v
		}
	}
	if c.price != "" {
		if v, err := parseAmount(c.price); err == nil {
			*price = v
		}
	}
	if c.invested != "" {
		if v, err := parseAmount(c.invested); err == nil {
			*invested = v
		}
	}
}
