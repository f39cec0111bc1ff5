// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
)

// Environment variables honored by every command.
const (
	// dataDirEnv overrides the default data directory.
	dataDirEnv = "NIVESH_DATA_DIR"
	// adminPasswordEnv seeds the admin account on first access. Without it
	// no admin account is ever created.
	adminPasswordEnv = "NIVESH_ADMIN_PASSWORD"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
var dataDir = flag.String("data-dir", defaultDataDir(), "Path to the directory holding all documents")

func defaultDataDir() string {
	if dir := os.Getenv(dataDirEnv); dir != "" {
		return dir
	}
	return "."
}

// Commands lists every subcommand in registration order. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&biometricCmd{},
	&accountCmd{},
	&depositCmd{},
	&fundCmd{},
	&schemeCmd{},
	&itemCmd{},
	&expenseCmd{},
	&savingCmd{},
	&dividendCmd{},
	&summaryCmd{},
	&yearlyCmd{},
	&exportCmd{},
	&importCmd{},
	&queryCmd{},
	&topicCmd{},
}

// openStore opens the document store rooted at the configured data directory.
func openStore() *nivesh.Store {
	return nivesh.NewStore(nivesh.Config{
		BaseDir:   *dataDir,
		AdminSeed: os.Getenv(adminPasswordEnv),
	})
}

// currentUser returns the active session, or explains how to start one.
func currentUser(s *nivesh.Store) (nivesh.Session, error) {
	sess, err := nivesh.CurrentSession(s)
	if err != nil {
		return nivesh.Session{}, fmt.Errorf("not logged in, run 'nv login' first")
	}
	return sess, nil
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}

// parseAmount parses a decimal amount given on the command line.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// parseDateFlag parses an optional date flag, defaulting to today.
func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}
