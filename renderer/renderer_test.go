package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
)

func sampleAssets(t *testing.T) *nivesh.AssetData {
	t.Helper()
	d := nivesh.AssetData{
		BankAccounts: []nivesh.BankAccount{
			{BankName: "HDFC", Balance: decimal.NewFromInt(5000)},
		},
		FixedDeposits: []nivesh.FixedDeposit{
			{BankName: "HDFC", Amount: decimal.NewFromInt(10000), StartDate: date.MustParse("2024-01-01"), TenureMonths: 12},
		},
		MutualFunds: []nivesh.MutualFund{
			{Name: "Index", Units: decimal.NewFromInt(100), NAV: decimal.NewFromInt(25), InvestedAmount: decimal.NewFromInt(2000)},
		},
	}
	d.Recompute(date.MustParse("2024-06-15"))
	return &d
}

func TestRenderSummary(t *testing.T) {
	got := RenderSummary(NewSummary(sampleAssets(t), date.MustParse("2024-06-15")))

	for _, want := range []string{
		"# Asset Summary on 2024-06-15",
		"| Cash | 1 |",
		"| Fixed Deposits | 1 |",
		"| Mutual Funds | 1 |",
		"## Active Deposits",
		"| HDFC | Fixed Deposit |",
		"2025-01-01",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q in:\n%s", want, got)
		}
	}
	// Empty classes stay out of the table.
	for _, reject := range []string{"Stocks", "NPS", "error "} {
		if strings.Contains(got, reject) {
			t.Errorf("summary should not contain %q in:\n%s", reject, got)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	d := nivesh.AssetData{}
	d.Recompute(date.MustParse("2024-06-15"))
	got := RenderSummary(NewSummary(&d, date.MustParse("2024-06-15")))
	if !strings.Contains(got, "No assets recorded yet.") {
		t.Errorf("empty summary missing placeholder:\n%s", got)
	}
}

func TestRenderYearly(t *testing.T) {
	agg := nivesh.YearlyAggregate{
		FinancialYear: "2024-25",
		Total:         decimal.NewFromInt(57200),
		Months: []nivesh.MonthBucket{
			{Month: "April", Total: decimal.NewFromInt(18000)},
			{Month: "May", Total: decimal.NewFromInt(21200)},
		},
	}
	got := RenderYearly(NewYearly("Expenses", agg))

	for _, want := range []string{"# Expenses for FY 2024-25", "| April |", "| May |"} {
		if !strings.Contains(got, want) {
			t.Errorf("yearly missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderEntries(t *testing.T) {
	expenses := []nivesh.Expense{
		{Description: "rent", Category: "housing", Amount: decimal.NewFromInt(18000), Date: date.MustParse("2024-05-01")},
		{Description: "chai", Amount: decimal.NewFromInt(20), Date: date.MustParse("2024-05-02")},
	}
	got := RenderEntries(NewExpenseEntries(expenses))

	for _, want := range []string{"# Expenses", "| 2024-05-01 | rent | housing |", "| 2024-05-02 | chai | - |"} {
		if !strings.Contains(got, want) {
			t.Errorf("entries missing %q in:\n%s", want, got)
		}
	}

	empty := RenderEntries(NewDividendEntries(nil))
	if !strings.Contains(empty, "Nothing recorded yet.") {
		t.Errorf("empty entries missing placeholder:\n%s", empty)
	}
}
