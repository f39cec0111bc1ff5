package nivesh

import (
	"errors"
	"testing"

	"github.com/nivesh/nivesh/date"
)

func TestExpenseLifecycle(t *testing.T) {
	s := newTestStore(t)

	created, err := CreateExpense(s, "u1", Expense{Description: "rent", Amount: dec(18000), Date: date.MustParse("2024-05-01")})
	if err != nil {
		t.Fatalf("CreateExpense() failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created expense has no id")
	}

	updated, err := UpdateExpense(s, "u1", created.ID, func(e *Expense) {
		e.Amount = dec(18500)
		e.Category = "housing"
	})
	if err != nil {
		t.Fatalf("UpdateExpense() failed: %v", err)
	}
	if !eq(updated.Amount, dec(18500)) || updated.Category != "housing" {
		t.Errorf("patched expense = %+v", updated)
	}
	if updated.Description != "rent" {
		t.Errorf("patch clobbered description: %q", updated.Description)
	}

	if err := DeleteExpense(s, "u1", created.ID); err != nil {
		t.Fatalf("DeleteExpense() failed: %v", err)
	}
	expenses, err := ReadExpenses(s, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(expenses) != 0 {
		t.Errorf("expenses after delete = %+v, want none", expenses)
	}
}

func TestCreateEntryDefaultsDateToToday(t *testing.T) {
	s := newTestStore(t)
	e, err := CreateExpense(s, "u1", Expense{Description: "chai", Amount: dec(20)})
	if err != nil {
		t.Fatal(err)
	}
	if e.Date != date.Today() {
		t.Errorf("date = %s, want today", e.Date)
	}
}

func TestEntryValidation(t *testing.T) {
	s := newTestStore(t)
	if _, err := CreateExpense(s, "u1", Expense{Description: "no amount"}); !errors.Is(err, ErrValidation) {
		t.Errorf("CreateExpense(zero amount) = %v, want ErrValidation", err)
	}
	if _, err := CreateSaving(s, "u1", Saving{Description: "no amount"}); !errors.Is(err, ErrValidation) {
		t.Errorf("CreateSaving(zero amount) = %v, want ErrValidation", err)
	}
	if _, err := CreateDividend(s, "u1", Dividend{Symbol: "TCS"}); !errors.Is(err, ErrValidation) {
		t.Errorf("CreateDividend(zero amount) = %v, want ErrValidation", err)
	}
	if _, err := UpdateSaving(s, "u1", "nope", func(*Saving) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSaving(unknown) = %v, want ErrNotFound", err)
	}
	if err := DeleteDividend(s, "u1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteDividend(unknown) = %v, want ErrNotFound", err)
	}
}

func TestStoresAreIndependentPerUser(t *testing.T) {
	s := newTestStore(t)
	if _, err := CreateSaving(s, "u1", Saving{Description: "ppf", Amount: dec(500), Date: date.MustParse("2024-04-10")}); err != nil {
		t.Fatal(err)
	}
	savings, err := ReadSavings(s, "u2")
	if err != nil {
		t.Fatal(err)
	}
	if len(savings) != 0 {
		t.Errorf("u2 sees u1's savings: %+v", savings)
	}
}
