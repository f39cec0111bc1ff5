package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type registerCmd struct {
	username string
	email    string
	password string
	pin      string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new user account" }
func (*registerCmd) Usage() string {
	return `nv register -username <name> -password <password> [-email <email>] [-pin <4 digits>]

  Creates a user account. The password and the optional PIN are stored as
  one-way digests. The email, when given, can be used to log in instead of
  the username.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "Unique account name")
	f.StringVar(&c.email, "email", "", "Optional email address")
	f.StringVar(&c.password, "password", "", "Account password")
	f.StringVar(&c.pin, "pin", "", "Optional 4-digit PIN for quick login")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	user, err := nivesh.Register(s, nivesh.RegisterRequest{
		Username: c.username,
		Email:    c.email,
		Password: c.password,
		PIN:      c.pin,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %q (%s)\n", user.Username, user.ID)
	return subcommands.ExitSuccess
}
