package date

import (
	"fmt"
	"time"
)

// FinancialYear identifies an April-March financial year by its starting
// calendar year: FY 2024 runs from 2024-04-01 to 2025-03-31.
type FinancialYear int

// FYOf returns the financial year the given date falls in.
func FYOf(d Date) FinancialYear {
	if d.Month() < time.April {
		return FinancialYear(d.Year() - 1)
	}
	return FinancialYear(d.Year())
}

// CurrentFY returns the financial year of today.
func CurrentFY() FinancialYear { return FYOf(Today()) }

// Start returns the first day of the financial year.
func (fy FinancialYear) Start() Date { return New(int(fy), time.April, 1) }

// End returns the last day of the financial year.
func (fy FinancialYear) End() Date { return New(int(fy)+1, time.March, 31) }

// Contains reports whether d falls within the financial year.
func (fy FinancialYear) Contains(d Date) bool {
	return !d.Before(fy.Start()) && !d.After(fy.End())
}

// String formats the financial year as "2024-25".
func (fy FinancialYear) String() string {
	return fmt.Sprintf("%d-%02d", int(fy), (int(fy)+1)%100)
}

// Months yields the twelve months of the financial year in order,
// April through March.
func (fy FinancialYear) Months() []time.Month {
	return []time.Month{
		time.April, time.May, time.June, time.July, time.August,
		time.September, time.October, time.November, time.December,
		time.January, time.February, time.March,
	}
}
