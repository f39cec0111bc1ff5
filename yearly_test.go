package nivesh

import (
	"testing"

	"github.com/nivesh/nivesh/date"
)

func TestYearlyExpensesAggregation(t *testing.T) {
	s := newTestStore(t)
	entries := []Expense{
		{Description: "rent april", Amount: dec(18000), Date: date.MustParse("2024-04-01")},
		{Description: "rent may", Amount: dec(18000), Date: date.MustParse("2024-05-01")},
		{Description: "groceries may", Amount: dec(3200.50), Date: date.MustParse("2024-05-20")},
		// January 2025 belongs to FY 2024-25.
		{Description: "rent january", Amount: dec(18000), Date: date.MustParse("2025-01-01")},
		// March 2024 belongs to the previous financial year.
		{Description: "rent march", Amount: dec(18000), Date: date.MustParse("2024-03-01")},
	}
	for _, e := range entries {
		if _, err := CreateExpense(s, "u1", e); err != nil {
			t.Fatal(err)
		}
	}

	agg, err := LoadYearlyExpenses(s, "u1", date.FinancialYear(2024))
	if err != nil {
		t.Fatalf("LoadYearlyExpenses() failed: %v", err)
	}
	if agg.FinancialYear != "2024-25" {
		t.Errorf("financialYear = %q, want 2024-25", agg.FinancialYear)
	}
	if !eq(agg.Total, dec(57200.50)) {
		t.Errorf("total = %s, want 57200.50 (out-of-year entry excluded)", agg.Total)
	}
	if len(agg.Months) != 12 {
		t.Fatalf("months = %d, want 12", len(agg.Months))
	}
	if agg.Months[0].Month != "April" || agg.Months[11].Month != "March" {
		t.Errorf("month order = %s..%s, want April..March", agg.Months[0].Month, agg.Months[11].Month)
	}
	byMonth := make(map[string]MonthBucket)
	for _, b := range agg.Months {
		byMonth[b.Month] = b
	}
	if !eq(byMonth["May"].Total, dec(21200.50)) {
		t.Errorf("May = %s, want 21200.50", byMonth["May"].Total)
	}
	if !eq(byMonth["January"].Total, dec(18000)) {
		t.Errorf("January = %s, want 18000", byMonth["January"].Total)
	}
	if !byMonth["June"].Total.IsZero() {
		t.Errorf("June = %s, want 0", byMonth["June"].Total)
	}
}

func TestYearlyFinancialAggregatesSavings(t *testing.T) {
	s := newTestStore(t)
	if _, err := CreateSaving(s, "u1", Saving{Description: "sip", Amount: dec(5000), Date: date.MustParse("2024-06-05")}); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateSaving(s, "u1", Saving{Description: "sip", Amount: dec(5000), Date: date.MustParse("2024-07-05")}); err != nil {
		t.Fatal(err)
	}

	agg, err := LoadYearlyFinancial(s, "u1", date.FinancialYear(2024))
	if err != nil {
		t.Fatalf("LoadYearlyFinancial() failed: %v", err)
	}
	if !eq(agg.Total, dec(10000)) {
		t.Errorf("total = %s, want 10000", agg.Total)
	}
}

func TestYearlyLoadIsRecomputedNotCached(t *testing.T) {
	s := newTestStore(t)
	e, err := CreateExpense(s, "u1", Expense{Description: "one", Amount: dec(100), Date: date.MustParse("2024-04-10")})
	if err != nil {
		t.Fatal(err)
	}
	fy := date.FinancialYear(2024)
	if _, err := LoadYearlyExpenses(s, "u1", fy); err != nil {
		t.Fatal(err)
	}

	// Mutating the raw collection must be reflected on the next load: the
	// cache file carries no authority.
	if err := DeleteExpense(s, "u1", e.ID); err != nil {
		t.Fatal(err)
	}
	agg, err := LoadYearlyExpenses(s, "u1", fy)
	if err != nil {
		t.Fatal(err)
	}
	if !agg.Total.IsZero() {
		t.Errorf("total = %s after deleting the only expense, want 0", agg.Total)
	}
}

func TestYearlyDividends(t *testing.T) {
	s := newTestStore(t)
	if _, err := CreateDividend(s, "u1", Dividend{Symbol: "TCS", Amount: dec(120), Date: date.MustParse("2024-08-01")}); err != nil {
		t.Fatal(err)
	}
	agg, err := LoadYearlyDividends(s, "u1", date.FinancialYear(2024))
	if err != nil {
		t.Fatalf("LoadYearlyDividends() failed: %v", err)
	}
	if !eq(agg.Total, dec(120)) {
		t.Errorf("total = %s, want 120", agg.Total)
	}
}
