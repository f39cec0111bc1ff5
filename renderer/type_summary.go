package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
)

// Summary is the asset summary prepared for rendering. Values are carried as
// Money so the templates get locale-aware formatting for free.
type Summary struct {
	// Date the summary was computed for.
	Date date.Date `json:"date"`
	// Total is the grand total across every asset class.
	Total nivesh.Money `json:"total"`
	// Rows lists the non-empty asset classes.
	Rows []SummaryRow `json:"rows"`
	// Deposits lists the active deposits with their maturity dates.
	Deposits []DepositRow `json:"deposits"`
}

// SummaryRow is one asset class line of the summary table.
type SummaryRow struct {
	Label string       `json:"label"`
	Count int          `json:"count"`
	Value nivesh.Money `json:"value"`
}

// DepositRow is one active fixed or recurring deposit.
type DepositRow struct {
	Bank     string       `json:"bank"`
	Kind     string       `json:"kind"`
	Amount   nivesh.Money `json:"amount"`
	Maturity date.Date    `json:"maturity"`
	Status   string       `json:"status"`
}

// NewSummary builds the summary view from an asset document. Zero-valued
// asset classes are left out of the table.
func NewSummary(d *nivesh.AssetData, on date.Date) *Summary {
	v := &Summary{
		Date:     on,
		Total:    nivesh.INR(d.Summary.TotalAssets),
		Rows:     make([]SummaryRow, 0),
		Deposits: make([]DepositRow, 0),
	}

	activeFDs, activeRDs := 0, 0
	for _, fd := range d.FixedDeposits {
		if fd.Status != nivesh.StatusActive {
			continue
		}
		activeFDs++
		v.Deposits = append(v.Deposits, DepositRow{
			Bank:     fd.BankName,
			Kind:     "Fixed Deposit",
			Amount:   nivesh.INR(fd.Amount),
			Maturity: fd.MaturityDate,
			Status:   fd.Status,
		})
	}
	for _, rd := range d.RecurringDeposits {
		if rd.Status != nivesh.StatusActive {
			continue
		}
		activeRDs++
		v.Deposits = append(v.Deposits, DepositRow{
			Bank:     rd.BankName,
			Kind:     "Recurring Deposit",
			Amount:   nivesh.INR(rd.TotalAmount),
			Maturity: rd.MaturityDate,
			Status:   rd.Status,
		})
	}

	v.row("Cash", len(d.BankAccounts), d.Summary.Cash)
	v.row("Fixed Deposits", activeFDs, d.Summary.FixedDeposits)
	v.row("Recurring Deposits", activeRDs, d.Summary.RecurringDeposits)
	v.row("Mutual Funds", len(d.MutualFunds), d.Summary.MutualFunds)
	v.row("Gold ETFs", len(d.GoldETFs), d.Summary.GoldETFs)
	v.row("Stocks", len(d.Stocks), d.Summary.Stocks)
	v.row("Equity ETFs", len(d.EquityETFs), d.Summary.EquityETFs)
	v.row("PPF", len(d.PPF), d.Summary.PPF)
	v.row("Floating Rate Bonds", len(d.FRB), d.Summary.FRB)
	v.row("NPS", len(d.NPS), d.Summary.NPS)
	v.row("Other Assets", 0, d.Summary.OtherAssets)

	return v
}

func (v *Summary) row(label string, count int, value decimal.Decimal) {
	if value.IsZero() {
		return
	}
	v.Rows = append(v.Rows, SummaryRow{Label: label, Count: count, Value: nivesh.INR(value)})
}
