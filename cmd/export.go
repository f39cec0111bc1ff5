package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all data to a backup file" }
func (*exportCmd) Usage() string {
	return `nv export [-o <file>]

  Writes a versioned JSON backup of the current user's assets, expenses,
  savings and settings. Without -o the backup goes to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, defaults to stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}

	env, err := nivesh.Export(s, sess.UserID, sess.Username)
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := nivesh.EncodeEnvelope(out, env); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Exported backup to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
