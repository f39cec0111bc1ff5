package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "restore data from a backup file" }
func (*importCmd) Usage() string {
	return `nv import <file>

  Validates the backup and replaces the current user's assets, expenses
  and savings with its contents. The backup must carry the same codec
  version; derived values are recomputed and the yearly caches reset.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return usage("import takes exactly one backup file")
	}
	raw, err := os.ReadFile(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	env, err := nivesh.ValidateEnvelope(raw)
	if err != nil {
		return fail(err)
	}
	if err := nivesh.Import(s, sess.UserID, env); err != nil {
		return fail(err)
	}
	fmt.Printf("Restored backup from %s (exported %s)\n", f.Arg(0), env.ExportDate.Format("2006-01-02"))
	return subcommands.ExitSuccess
}
