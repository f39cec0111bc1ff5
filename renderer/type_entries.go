package renderer

import (
	"github.com/nivesh/nivesh"
	"github.com/nivesh/nivesh/date"
)

// Entries is a flat listing of dated amounts (expenses, savings, dividends)
// prepared for rendering.
type Entries struct {
	Title string       `json:"title"`
	Total nivesh.Money `json:"total"`
	Rows  []EntryRow   `json:"rows"`
}

// EntryRow is one line of an entry listing.
type EntryRow struct {
	Date        date.Date    `json:"date"`
	Description string       `json:"description"`
	Category    string       `json:"category,omitempty"`
	Amount      nivesh.Money `json:"amount"`
}

// NewExpenseEntries builds the listing view from raw expenses.
func NewExpenseEntries(expenses []nivesh.Expense) *Entries {
	v := &Entries{Title: "Expenses", Total: nivesh.INR(0), Rows: make([]EntryRow, 0, len(expenses))}
	for _, e := range expenses {
		v.Rows = append(v.Rows, EntryRow{Date: e.Date, Description: e.Description, Category: e.Category, Amount: nivesh.INR(e.Amount)})
		v.Total = v.Total.Add(nivesh.INR(e.Amount))
	}
	return v
}

// NewSavingEntries builds the listing view from raw savings.
func NewSavingEntries(savings []nivesh.Saving) *Entries {
	v := &Entries{Title: "Savings", Total: nivesh.INR(0), Rows: make([]EntryRow, 0, len(savings))}
	for _, e := range savings {
		v.Rows = append(v.Rows, EntryRow{Date: e.Date, Description: e.Description, Category: e.Type, Amount: nivesh.INR(e.Amount)})
		v.Total = v.Total.Add(nivesh.INR(e.Amount))
	}
	return v
}

// NewDividendEntries builds the listing view from raw dividends.
func NewDividendEntries(dividends []nivesh.Dividend) *Entries {
	v := &Entries{Title: "Dividends", Total: nivesh.INR(0), Rows: make([]EntryRow, 0, len(dividends))}
	for _, e := range dividends {
		v.Rows = append(v.Rows, EntryRow{Date: e.Date, Description: e.Symbol, Amount: nivesh.INR(e.Amount)})
		v.Total = v.Total.Add(nivesh.INR(e.Amount))
	}
	return v
}
