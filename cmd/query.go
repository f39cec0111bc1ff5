package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type queryCmd struct {
	doc   string
	first bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against a document" }
func (*queryCmd) Usage() string {
	return `nv query [-doc assets|expenses|savings|dividends] <jsonpath>

  Evaluates the expression against the selected document and prints the
  result as JSON. Useful for scripting:

  $ nv query '$.summary.totalAssets'
  $ nv query -doc expenses '$.expenses[*].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.doc, "doc", "assets", "Document to query: assets, expenses, savings or dividends")
	f.BoolVar(&c.first, "first", false, "Print only the first match of a list result")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("query takes exactly one JSONPath expression")
	}
	path := f.Arg(0)

	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	var source any
	switch c.doc {
	case "assets":
		source, err = nivesh.ReadAssets(s, sess.UserID)
	case "expenses":
		var expenses []nivesh.Expense
		expenses, err = nivesh.ReadExpenses(s, sess.UserID)
		source = map[string]any{"expenses": expenses}
	case "savings":
		var savings []nivesh.Saving
		savings, err = nivesh.ReadSavings(s, sess.UserID)
		source = map[string]any{"savings": savings}
	case "dividends":
		var dividends []nivesh.Dividend
		dividends, err = nivesh.ReadDividends(s, sess.UserID)
		source = map[string]any{"dividends": dividends}
	default:
		return usage("unknown document %q, want assets, expenses, savings or dividends", c.doc)
	}
	if err != nil {
		return fail(err)
	}

	// jsonpath walks plain maps and slices, so round-trip the document
	// through JSON first.
	raw, err := json.Marshal(source)
	if err != nil {
		return fail(err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return fail(err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return fail(fmt.Errorf("evaluating %q: %w", path, err))
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && c.first && len(jlist) > 0 {
		jval = jlist[0]
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return fail(err)
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
