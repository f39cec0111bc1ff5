package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type loginCmd struct {
	username  string
	email     string
	password  string
	pin       string
	biometric bool
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and start a session" }
func (*loginCmd) Usage() string {
	return `nv login -username <name> [-password <password>] [-pin <pin>] [-biometric]

  Logs in and records the session, so data commands run as this user until
  'nv logout'. The account is located by username or email. When several
  credentials are given, biometrics win over the PIN, and the PIN wins over
  the password.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "Account name")
	f.StringVar(&c.email, "email", "", "Account email, used when the username does not match")
	f.StringVar(&c.password, "password", "", "Account password")
	f.StringVar(&c.pin, "pin", "", "Account PIN")
	f.BoolVar(&c.biometric, "biometric", false, "Use biometric authentication when enabled on the account")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openStore()
	user, err := nivesh.Login(s, platformBiometric(), nivesh.LoginRequest{
		Username:     c.username,
		Email:        c.email,
		Password:     c.password,
		PIN:          c.pin,
		UseBiometric: c.biometric,
	})
	if err != nil {
		return fail(err)
	}
	if err := nivesh.SaveSession(s, user); err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %q\n", user.Username)
	return subcommands.ExitSuccess
}

// platformBiometric returns the biometric collaborator for this platform.
// There is no sensor integration yet, so the resolver always falls through
// to PIN or password.
func platformBiometric() nivesh.Biometric {
	return nivesh.NoBiometric{}
}
