package nivesh

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh/date"
)

// Yearly aggregates bucket amounts into the months of an April-March
// financial year. The files are caches only: they are recomputed from the
// raw collections on every load, so a stale cache can never be observed.

// MonthBucket is the total for one month of a financial year.
type MonthBucket struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// YearlyAggregate is the per-financial-year cache document.
type YearlyAggregate struct {
	FinancialYear string          `json:"financialYear"`
	Total         decimal.Decimal `json:"total"`
	Months        []MonthBucket   `json:"months"`
}

// zeroAggregate returns a zeroed skeleton for the given financial year,
// April through March.
func zeroAggregate(fy date.FinancialYear) YearlyAggregate {
	agg := YearlyAggregate{FinancialYear: fy.String()}
	for _, m := range fy.Months() {
		agg.Months = append(agg.Months, MonthBucket{Month: m.String()})
	}
	return agg
}

// aggregateFY buckets the entries falling inside fy by calendar month.
func aggregateFY[T any](fy date.FinancialYear, entries []T, when func(T) date.Date, amount func(T) decimal.Decimal) YearlyAggregate {
	agg := zeroAggregate(fy)
	index := make(map[string]int, len(agg.Months))
	for i, b := range agg.Months {
		index[b.Month] = i
	}
	for _, e := range entries {
		on := when(e)
		if !fy.Contains(on) {
			continue
		}
		i := index[on.Month().String()]
		agg.Months[i].Total = agg.Months[i].Total.Add(amount(e)).Round(moneyPlaces)
		agg.Total = agg.Total.Add(amount(e)).Round(moneyPlaces)
	}
	return agg
}

// LoadYearlyExpenses recomputes the expense aggregate for fy from the raw
// expense collection and rewrites the cache file.
func LoadYearlyExpenses(s *Store, userID string, fy date.FinancialYear) (YearlyAggregate, error) {
	expenses, err := ReadExpenses(s, userID)
	if err != nil {
		return YearlyAggregate{}, err
	}
	agg := aggregateFY(fy, expenses,
		func(e Expense) date.Date { return e.Date },
		func(e Expense) decimal.Decimal { return e.Amount })
	if err := replaceDocument(s, s.yearlyExpensesPath(userID), agg); err != nil {
		return YearlyAggregate{}, err
	}
	return agg, nil
}

// LoadYearlyFinancial recomputes the savings aggregate for fy from the raw
// savings collection and rewrites the cache file.
func LoadYearlyFinancial(s *Store, userID string, fy date.FinancialYear) (YearlyAggregate, error) {
	savings, err := ReadSavings(s, userID)
	if err != nil {
		return YearlyAggregate{}, err
	}
	agg := aggregateFY(fy, savings,
		func(v Saving) date.Date { return v.Date },
		func(v Saving) decimal.Decimal { return v.Amount })
	if err := replaceDocument(s, s.yearlyFinancialPath(userID), agg); err != nil {
		return YearlyAggregate{}, err
	}
	return agg, nil
}

// LoadYearlyDividends recomputes the dividend aggregate for fy from the raw
// dividend collection and rewrites the cache file.
func LoadYearlyDividends(s *Store, userID string, fy date.FinancialYear) (YearlyAggregate, error) {
	dividends, err := ReadDividends(s, userID)
	if err != nil {
		return YearlyAggregate{}, err
	}
	agg := aggregateFY(fy, dividends,
		func(v Dividend) date.Date { return v.Date },
		func(v Dividend) decimal.Decimal { return v.Amount })
	if err := replaceDocument(s, s.yearlyDividendsPath(userID), agg); err != nil {
		return YearlyAggregate{}, err
	}
	return agg, nil
}

// resetYearlyCaches rewrites the three yearly cache files with zeroed
// skeletons for the current financial year. Import uses this after
// replacing the raw collections.
func resetYearlyCaches(s *Store, userID string) error {
	zero := zeroAggregate(date.CurrentFY())
	for _, rel := range []string{
		s.yearlyFinancialPath(userID),
		s.yearlyExpensesPath(userID),
		s.yearlyDividendsPath(userID),
	} {
		if err := replaceDocument(s, rel, zero); err != nil {
			return err
		}
	}
	return nil
}
