package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
)

// run parses args into the command's flag set and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags for %q: %v", c.Name(), err)
	}
	return c.Execute(context.Background(), f)
}

func useTempDataDir(t *testing.T) {
	t.Helper()
	old := *dataDir
	*dataDir = t.TempDir()
	t.Cleanup(func() { *dataDir = old })
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"100", false},
		{"2500.51", false},
		{"-5", false},
		{"", true},
		{"abc", true},
		{"1,000", true},
	}
	for _, tc := range tests {
		_, err := parseAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestParseDateFlagDefaultsToToday(t *testing.T) {
	on, err := parseDateFlag("")
	if err != nil {
		t.Fatal(err)
	}
	if on != date.Today() {
		t.Errorf("parseDateFlag(\"\") = %s, want today", on)
	}
}

func TestRegisterLoginExpenseFlow(t *testing.T) {
	useTempDataDir(t)

	if got := run(t, &registerCmd{}, "-username", "asha", "-password", "secret"); got != subcommands.ExitSuccess {
		t.Fatalf("register exited %v", got)
	}
	if got := run(t, &loginCmd{}, "-username", "asha", "-password", "secret"); got != subcommands.ExitSuccess {
		t.Fatalf("login exited %v", got)
	}
	if got := run(t, &expenseCmd{}, "-description", "rent", "-amount", "18000", "add"); got != subcommands.ExitSuccess {
		t.Fatalf("expense add exited %v", got)
	}

	s := openStore()
	sess, err := nivesh.CurrentSession(s)
	if err != nil {
		t.Fatal(err)
	}
	expenses, err := nivesh.ReadExpenses(s, sess.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 1 || expenses[0].Description != "rent" {
		t.Errorf("expenses = %+v, want the one added", expenses)
	}

	if got := run(t, &logoutCmd{}); got != subcommands.ExitSuccess {
		t.Fatalf("logout exited %v", got)
	}
	if got := run(t, &expenseCmd{}, "-description", "x", "-amount", "1", "add"); got != subcommands.ExitFailure {
		t.Errorf("expense add after logout exited %v, want failure", got)
	}
}

func TestExportImportCommands(t *testing.T) {
	useTempDataDir(t)

	run(t, &registerCmd{}, "-username", "asha", "-password", "secret")
	run(t, &loginCmd{}, "-username", "asha", "-password", "secret")
	run(t, &accountCmd{}, "-bank", "HDFC", "-balance", "5000", "add")

	backup := filepath.Join(t.TempDir(), "backup.json")
	if got := run(t, &exportCmd{}, "-o", backup); got != subcommands.ExitSuccess {
		t.Fatalf("export exited %v", got)
	}
	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	if got := run(t, &importCmd{}, backup); got != subcommands.ExitSuccess {
		t.Fatalf("import exited %v", got)
	}
}

func TestCommandsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Commands {
		if c.Name() == "" || c.Synopsis() == "" || c.Usage() == "" {
			t.Errorf("command %T is missing metadata", c)
		}
		if seen[c.Name()] {
			t.Errorf("duplicate command name %q", c.Name())
		}
		seen[c.Name()] = true
	}
}
