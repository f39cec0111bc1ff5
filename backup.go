package nivesh

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh/date"
)

// BackupVersion is the codec version written into every envelope. Import
// refuses any other version; there is no migration path.
const BackupVersion = "1.0.0"

// UserSettings is the slice of the user record carried in a backup.
type UserSettings struct {
	Email            string            `json:"email,omitempty"`
	BiometricEnabled bool              `json:"biometricEnabled"`
	Preferences      map[string]string `json:"preferences,omitempty"`
}

// Envelope is the portable export of a user's whole document set.
// Dividends are not part of the envelope.
type Envelope struct {
	Version      string       `json:"version"`
	ExportDate   time.Time    `json:"exportDate"`
	UserID       string       `json:"userId"`
	Username     string       `json:"username"`
	Assets       AssetData    `json:"assets"`
	Expenses     []Expense    `json:"expenses"`
	Savings      []Saving     `json:"savings"`
	UserSettings UserSettings `json:"userSettings"`
}

// Export composes the envelope from the user's document stores. Missing
// source files are treated as empty defaults, never as errors, so export
// always succeeds for an existing user.
func Export(s *Store, userID, username string) (Envelope, error) {
	assets, err := ReadAssets(s, userID)
	if err != nil {
		return Envelope{}, err
	}
	expenses, err := ReadExpenses(s, userID)
	if err != nil {
		return Envelope{}, err
	}
	savings, err := ReadSavings(s, userID)
	if err != nil {
		return Envelope{}, err
	}

	env := Envelope{
		Version:    BackupVersion,
		ExportDate: time.Now().UTC(),
		UserID:     userID,
		Username:   username,
		Assets:     assets,
		Expenses:   expenses,
		Savings:    savings,
	}
	// The settings slice comes from the registry; a vanished record only
	// leaves the settings empty.
	if users, err := ReadUsers(s); err == nil {
		for _, u := range users {
			if u.ID == userID {
				env.UserSettings = UserSettings{Email: u.Email, BiometricEnabled: u.BiometricEnabled}
				break
			}
		}
	}
	return env, nil
}

// EncodeEnvelope writes the envelope as indented JSON with a stable header
// key order (version, exportDate, userId, username, then the data sections).
// An all-default userSettings section is omitted.
func EncodeEnvelope(w io.Writer, env Envelope) error {
	var obj jsonObjectWriter
	obj.Append("version", env.Version)
	obj.Append("exportDate", env.ExportDate)
	obj.Append("userId", env.UserID)
	obj.Append("username", env.Username)
	obj.Append("assets", env.Assets)
	obj.Append("expenses", env.Expenses)
	obj.Append("savings", env.Savings)
	obj.Optional("userSettings", env.UserSettings)

	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	var indented json.RawMessage = raw
	data, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write backup: %w", err)
	}
	return nil
}

// ValidateEnvelope parses raw JSON and checks the envelope shape: the four
// header keys, the three data sections, and the structural validity of
// every record. Anything else is rejected as an invalid file.
func ValidateEnvelope(raw []byte) (Envelope, error) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		return Envelope{}, fmt.Errorf("%w: invalid file: %v", ErrValidation, err)
	}
	for _, key := range []string{"version", "exportDate", "userId", "username", "assets", "expenses", "savings"} {
		if _, ok := shape[key]; !ok {
			return Envelope{}, fmt.Errorf("%w: invalid file: missing %q", ErrValidation, key)
		}
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("%w: invalid file: %v", ErrValidation, err)
	}
	if err := env.validateRecords(); err != nil {
		return Envelope{}, err
	}
	return env, nil
}

// validateRecords performs per-record structural validation so a
// structurally plausible but semantically broken envelope is caught before
// it overwrites good data.
func (env *Envelope) validateRecords() error {
	nonNegative := func(kind, id string, v decimal.Decimal, field string) error {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s %q: negative %s", ErrValidation, kind, id, field)
		}
		return nil
	}
	for _, r := range env.Assets.BankAccounts {
		if r.ID == "" {
			return fmt.Errorf("%w: bank account without id", ErrValidation)
		}
	}
	for _, r := range env.Assets.FixedDeposits {
		if r.ID == "" {
			return fmt.Errorf("%w: fixed deposit without id", ErrValidation)
		}
		if r.TenureMonths < 0 {
			return fmt.Errorf("%w: fixed deposit %q: negative tenure", ErrValidation, r.ID)
		}
		if err := nonNegative("fixed deposit", r.ID, r.Amount, "amount"); err != nil {
			return err
		}
	}
	for _, r := range env.Assets.RecurringDeposits {
		if r.ID == "" {
			return fmt.Errorf("%w: recurring deposit without id", ErrValidation)
		}
		if r.TenureMonths < 0 {
			return fmt.Errorf("%w: recurring deposit %q: negative tenure", ErrValidation, r.ID)
		}
		if err := nonNegative("recurring deposit", r.ID, r.MonthlyAmount, "monthly amount"); err != nil {
			return err
		}
	}
	for _, r := range env.Assets.MutualFunds {
		if r.ID == "" {
			return fmt.Errorf("%w: mutual fund without id", ErrValidation)
		}
		if err := nonNegative("mutual fund", r.ID, r.Units, "units"); err != nil {
			return err
		}
		if err := nonNegative("mutual fund", r.ID, r.NAV, "nav"); err != nil {
			return err
		}
	}
	for _, r := range env.Expenses {
		if r.ID == "" {
			return fmt.Errorf("%w: expense without id", ErrValidation)
		}
		if err := nonNegative("expense", r.ID, r.Amount, "amount"); err != nil {
			return err
		}
	}
	for _, r := range env.Savings {
		if r.ID == "" {
			return fmt.Errorf("%w: saving without id", ErrValidation)
		}
		if err := nonNegative("saving", r.ID, r.Amount, "amount"); err != nil {
			return err
		}
	}
	return nil
}

// Import replaces the user's assets, expenses, and savings documents with
// the envelope's contents and re-initializes the yearly caches for the
// current financial year. The envelope version must match the codec's own.
func Import(s *Store, userID string, env Envelope) error {
	if env.Version != BackupVersion {
		return fmt.Errorf("%w: backup version %q, want %q", ErrVersionMismatch, env.Version, BackupVersion)
	}

	assets := env.Assets
	assets.Recompute(date.Today())
	if err := replaceDocument(s, s.assetsPath(userID), assets); err != nil {
		return err
	}
	expenses := env.Expenses
	if expenses == nil {
		expenses = []Expense{}
	}
	if err := replaceDocument(s, s.expensesPath(userID), expenseDocument{Expenses: expenses}); err != nil {
		return err
	}
	savings := env.Savings
	if savings == nil {
		savings = []Saving{}
	}
	if err := replaceDocument(s, s.savingsPath(userID), savingDocument{Savings: savings}); err != nil {
		return err
	}
	return resetYearlyCaches(s, userID)
}
