package renderer

import "github.com/nivesh/nivesh"

// Yearly is a financial-year aggregate prepared for rendering.
type Yearly struct {
	// Title names the aggregated collection, e.g. "Expenses".
	Title string `json:"title"`
	// FinancialYear in the "2024-25" form.
	FinancialYear string `json:"financialYear"`
	// Total across the whole financial year.
	Total nivesh.Money `json:"total"`
	// Months holds one row per month, April through March.
	Months []YearlyRow `json:"months"`
}

// YearlyRow is one month of a yearly aggregate.
type YearlyRow struct {
	Month string       `json:"month"`
	Total nivesh.Money `json:"total"`
}

// NewYearly builds the yearly view from an aggregate document. Empty months
// are kept so the table always shows the full year.
func NewYearly(title string, agg nivesh.YearlyAggregate) *Yearly {
	v := &Yearly{
		Title:         title,
		FinancialYear: agg.FinancialYear,
		Total:         nivesh.INR(agg.Total),
		Months:        make([]YearlyRow, 0, len(agg.Months)),
	}
	for _, b := range agg.Months {
		v.Months = append(v.Months, YearlyRow{Month: b.Month, Total: nivesh.INR(b.Total)})
	}
	return v
}
