package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
)

type biometricCmd struct {
	enable  bool
	disable bool
}

func (*biometricCmd) Name() string     { return "biometric" }
func (*biometricCmd) Synopsis() string { return "opt in or out of biometric login" }
func (*biometricCmd) Usage() string {
	return `nv biometric -enable | -disable

  Toggles the biometric flag on the current account. The check itself is
  performed by the platform at login time.
`
}

func (c *biometricCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.enable, "enable", false, "Enable biometric login")
	f.BoolVar(&c.disable, "disable", false, "Disable biometric login")
}

func (c *biometricCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.enable == c.disable {
		return usage("pass exactly one of -enable or -disable")
	}
	s := openStore()
	sess, err := currentUser(s)
	if err != nil {
		return fail(err)
	}
	if err := nivesh.EnableBiometric(s, sess.UserID, c.enable); err != nil {
		return fail(err)
	}
	if c.enable {
		fmt.Println("Biometric login enabled")
	} else {
		fmt.Println("Biometric login disabled")
	}
	return subcommands.ExitSuccess
}
