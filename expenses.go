package nivesh

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh/date"
)

// The expense, saving, and dividend stores are flat arrays under a single
// top-level key, one file per user.

// Expense is a single spend entry.
type Expense struct {
	recordMeta
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
}

// Saving is a single amount put aside.
type Saving struct {
	recordMeta
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        date.Date       `json:"date"`
}

// Dividend is a payout received for a holding.
type Dividend struct {
	recordMeta
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
	Date   date.Date       `json:"date"`
}

type expenseDocument struct {
	Expenses []Expense `json:"expenses"`
}
type savingDocument struct {
	Savings []Saving `json:"savings"`
}
type dividendDocument struct {
	Dividends []Dividend `json:"dividends"`
}

func newExpenseDocument() expenseDocument   { return expenseDocument{Expenses: []Expense{}} }
func newSavingDocument() savingDocument     { return savingDocument{Savings: []Saving{}} }
func newDividendDocument() dividendDocument { return dividendDocument{Dividends: []Dividend{}} }

// createEntry stamps and appends a record to a flat store document.
func createEntry[D any, T any, P assetRecordPtr[T]](s *Store, rel string, skeleton func() D, col func(*D) *[]T, rec T) (T, error) {
	P(&rec).stamp(newRecordID(), time.Now().UTC())
	_, err := updateDocument(s, rel, skeleton, func(d *D) error {
		c := col(d)
		*c = append(*c, rec)
		return nil
	})
	return rec, err
}

// updateEntry applies a partial patch to the record with the given id.
func updateEntry[D any, T any, P assetRecordPtr[T]](s *Store, rel string, skeleton func() D, col func(*D) *[]T, id string, patch func(*T)) (T, error) {
	var out T
	_, err := updateDocument(s, rel, skeleton, func(d *D) error {
		c := col(d)
		for i := range *c {
			if P(&(*c)[i]).recordID() != id {
				continue
			}
			patch(&(*c)[i])
			out = (*c)[i]
			return nil
		}
		return fmt.Errorf("record %q: %w", id, ErrNotFound)
	})
	return out, err
}

// deleteEntry removes the record with the given id, rewriting the document.
func deleteEntry[D any, T any, P assetRecordPtr[T]](s *Store, rel string, skeleton func() D, col func(*D) *[]T, id string) error {
	_, err := updateDocument(s, rel, skeleton, func(d *D) error {
		c := col(d)
		kept := (*c)[:0]
		found := false
		for _, r := range *c {
			if P(&r).recordID() == id {
				found = true
				continue
			}
			kept = append(kept, r)
		}
		if !found {
			return fmt.Errorf("record %q: %w", id, ErrNotFound)
		}
		*c = kept
		return nil
	})
	return err
}

func expenseCol(d *expenseDocument) *[]Expense    { return &d.Expenses }
func savingCol(d *savingDocument) *[]Saving       { return &d.Savings }
func dividendCol(d *dividendDocument) *[]Dividend { return &d.Dividends }

// ReadExpenses returns all expenses of the user.
func ReadExpenses(s *Store, userID string) ([]Expense, error) {
	doc, err := readDocument(s, s.expensesPath(userID), newExpenseDocument)
	if err != nil {
		return nil, err
	}
	return doc.Expenses, nil
}

func CreateExpense(s *Store, userID string, e Expense) (Expense, error) {
	if e.Amount.IsZero() {
		return Expense{}, fmt.Errorf("%w: expense amount is required", ErrValidation)
	}
	if e.Date.IsZero() {
		e.Date = date.Today()
	}
	return createEntry(s, s.expensesPath(userID), newExpenseDocument, expenseCol, e)
}

func UpdateExpense(s *Store, userID, id string, patch func(*Expense)) (Expense, error) {
	return updateEntry(s, s.expensesPath(userID), newExpenseDocument, expenseCol, id, patch)
}

func DeleteExpense(s *Store, userID, id string) error {
	return deleteEntry[expenseDocument, Expense](s, s.expensesPath(userID), newExpenseDocument, expenseCol, id)
}

// ReadSavings returns all savings of the user.
func ReadSavings(s *Store, userID string) ([]Saving, error) {
	doc, err := readDocument(s, s.savingsPath(userID), newSavingDocument)
	if err != nil {
		return nil, err
	}
	return doc.Savings, nil
}

func CreateSaving(s *Store, userID string, v Saving) (Saving, error) {
	if v.Amount.IsZero() {
		return Saving{}, fmt.Errorf("%w: saving amount is required", ErrValidation)
	}
	if v.Date.IsZero() {
		v.Date = date.Today()
	}
	return createEntry(s, s.savingsPath(userID), newSavingDocument, savingCol, v)
}

func UpdateSaving(s *Store, userID, id string, patch func(*Saving)) (Saving, error) {
	return updateEntry(s, s.savingsPath(userID), newSavingDocument, savingCol, id, patch)
}

func DeleteSaving(s *Store, userID, id string) error {
	return deleteEntry[savingDocument, Saving](s, s.savingsPath(userID), newSavingDocument, savingCol, id)
}

// ReadDividends returns all dividends of the user.
func ReadDividends(s *Store, userID string) ([]Dividend, error) {
	doc, err := readDocument(s, s.dividendsPath(userID), newDividendDocument)
	if err != nil {
		return nil, err
	}
	return doc.Dividends, nil
}

func CreateDividend(s *Store, userID string, v Dividend) (Dividend, error) {
	if v.Amount.IsZero() {
		return Dividend{}, fmt.Errorf("%w: dividend amount is required", ErrValidation)
	}
	if v.Date.IsZero() {
		v.Date = date.Today()
	}
	return createEntry(s, s.dividendsPath(userID), newDividendDocument, dividendCol, v)
}

func DeleteDividend(s *Store, userID, id string) error {
	return deleteEntry[dividendDocument, Dividend](s, s.dividendsPath(userID), newDividendDocument, dividendCol, id)
}
