package nivesh

import (
	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh/date"
)

// This file is the derived-state layer: pure recomputation of per-record
// computed fields and of the summary. Recompute is called synchronously
// before every write of an asset document, so a persisted document is never
// stale relative to its raw records. Running it twice on the same document
// yields the same result.

// Rounding conventions: currency amounts to 2 decimal places, fund units
// and NAV to 4.
const (
	moneyPlaces = 2
	unitPlaces  = 4
)

var hundred = decimal.NewFromInt(100)

// valuation computes a position's current value and its return percentage.
// The return is 0 when nothing was invested, to avoid a division by zero.
func valuation(units, price, invested decimal.Decimal) (value decimal.Decimal, returns Percent) {
	value = units.Mul(price).Round(moneyPlaces)
	if invested.IsZero() {
		return value, 0
	}
	pct := value.Sub(invested).Div(invested).Mul(hundred)
	return value, Percent(pct.InexactFloat64())
}

// depositStatus derives the lifecycle status from the maturity date.
func depositStatus(maturity, today date.Date) string {
	if !maturity.IsZero() && today.After(maturity) {
		return StatusMatured
	}
	return StatusActive
}

func (r *BankAccount) computeDerived() {
	r.Balance = r.Balance.Round(moneyPlaces)
}

func (r *FixedDeposit) computeDerived(today date.Date) {
	r.Amount = r.Amount.Round(moneyPlaces)
	if !r.StartDate.IsZero() {
		r.MaturityDate = r.StartDate.AddMonths(r.TenureMonths)
	}
	r.Status = depositStatus(r.MaturityDate, today)
}

func (r *RecurringDeposit) computeDerived(today date.Date) {
	r.MonthlyAmount = r.MonthlyAmount.Round(moneyPlaces)
	r.TotalAmount = r.MonthlyAmount.Mul(decimal.NewFromInt(int64(r.TenureMonths))).Round(moneyPlaces)
	if !r.StartDate.IsZero() {
		r.MaturityDate = r.StartDate.AddMonths(r.TenureMonths)
	}
	r.Status = depositStatus(r.MaturityDate, today)
}

func (r *MutualFund) computeDerived() {
	r.Units = r.Units.Round(unitPlaces)
	r.NAV = r.NAV.Round(unitPlaces)
	r.InvestedAmount = r.InvestedAmount.Round(moneyPlaces)
	r.CurrentValue, r.Returns = valuation(r.Units, r.NAV, r.InvestedAmount)
}

func (r *GoldETF) computeDerived() {
	r.Units = r.Units.Round(unitPlaces)
	r.CurrentPrice = r.CurrentPrice.Round(unitPlaces)
	r.InvestedAmount = r.InvestedAmount.Round(moneyPlaces)
	r.CurrentValue, r.Returns = valuation(r.Units, r.CurrentPrice, r.InvestedAmount)
}

func (r *Stock) computeDerived() {
	r.Quantity = r.Quantity.Round(unitPlaces)
	r.CurrentPrice = r.CurrentPrice.Round(moneyPlaces)
	r.InvestedAmount = r.InvestedAmount.Round(moneyPlaces)
	r.CurrentValue, r.Returns = valuation(r.Quantity, r.CurrentPrice, r.InvestedAmount)
}

func (r *EquityETF) computeDerived() {
	r.Units = r.Units.Round(unitPlaces)
	r.NAV = r.NAV.Round(unitPlaces)
	r.InvestedAmount = r.InvestedAmount.Round(moneyPlaces)
	r.CurrentValue, r.Returns = valuation(r.Units, r.NAV, r.InvestedAmount)
}

func (r *PublicProvidentFund) computeDerived() {
	r.Balance = r.Balance.Round(moneyPlaces)
}

func (r *FloatingRateBond) computeDerived() {
	r.Amount = r.Amount.Round(moneyPlaces)
}

func (r *NationalPensionScheme) computeDerived() {
	r.InvestedAmount = r.InvestedAmount.Round(moneyPlaces)
	r.CurrentValue = r.CurrentValue.Round(moneyPlaces)
	if r.InvestedAmount.IsZero() {
		r.Returns = 0
		return
	}
	pct := r.CurrentValue.Sub(r.InvestedAmount).Div(r.InvestedAmount).Mul(hundred)
	r.Returns = Percent(pct.InexactFloat64())
}

// Recompute recalculates every derived field and the summary from the raw
// records. today drives deposit statuses.
func (d *AssetData) Recompute(today date.Date) {
	for i := range d.BankAccounts {
		d.BankAccounts[i].computeDerived()
	}
	for i := range d.FixedDeposits {
		d.FixedDeposits[i].computeDerived(today)
	}
	for i := range d.RecurringDeposits {
		d.RecurringDeposits[i].computeDerived(today)
	}
	for i := range d.MutualFunds {
		d.MutualFunds[i].computeDerived()
	}
	for i := range d.GoldETFs {
		d.GoldETFs[i].computeDerived()
	}
	for i := range d.Stocks {
		d.Stocks[i].computeDerived()
	}
	for i := range d.EquityETFs {
		d.EquityETFs[i].computeDerived()
	}
	for i := range d.PPF {
		d.PPF[i].computeDerived()
	}
	for i := range d.FRB {
		d.FRB[i].computeDerived()
	}
	for i := range d.NPS {
		d.NPS[i].computeDerived()
	}
	d.Summary = d.summarize()
}

// summarize computes the category subtotals and their grand total. Fixed and
// recurring deposits count only while still active; matured deposits are
// expected to be cashed out into an account.
func (d *AssetData) summarize() AssetSummary {
	sum := AssetSummary{
		// OtherAssets has no source collection; the stored value is carried over.
		OtherAssets: d.Summary.OtherAssets.Round(moneyPlaces),
	}
	for _, r := range d.BankAccounts {
		sum.Cash = sum.Cash.Add(r.Balance)
	}
	for _, r := range d.FixedDeposits {
		if r.Status == StatusActive {
			sum.FixedDeposits = sum.FixedDeposits.Add(r.Amount)
		}
	}
	for _, r := range d.RecurringDeposits {
		if r.Status == StatusActive {
			sum.RecurringDeposits = sum.RecurringDeposits.Add(r.TotalAmount)
		}
	}
	for _, r := range d.MutualFunds {
		sum.MutualFunds = sum.MutualFunds.Add(r.CurrentValue)
	}
	for _, r := range d.GoldETFs {
		sum.GoldETFs = sum.GoldETFs.Add(r.CurrentValue)
	}
	for _, r := range d.Stocks {
		sum.Stocks = sum.Stocks.Add(r.CurrentValue)
	}
	for _, r := range d.EquityETFs {
		sum.EquityETFs = sum.EquityETFs.Add(r.CurrentValue)
	}
	for _, r := range d.PPF {
		sum.PPF = sum.PPF.Add(r.Balance)
	}
	for _, r := range d.FRB {
		sum.FRB = sum.FRB.Add(r.Amount)
	}
	for _, r := range d.NPS {
		sum.NPS = sum.NPS.Add(r.CurrentValue)
	}

	sum.Cash = sum.Cash.Round(moneyPlaces)
	sum.FixedDeposits = sum.FixedDeposits.Round(moneyPlaces)
	sum.RecurringDeposits = sum.RecurringDeposits.Round(moneyPlaces)
	sum.MutualFunds = sum.MutualFunds.Round(moneyPlaces)
	sum.GoldETFs = sum.GoldETFs.Round(moneyPlaces)
	sum.Stocks = sum.Stocks.Round(moneyPlaces)
	sum.EquityETFs = sum.EquityETFs.Round(moneyPlaces)
	sum.PPF = sum.PPF.Round(moneyPlaces)
	sum.FRB = sum.FRB.Round(moneyPlaces)
	sum.NPS = sum.NPS.Round(moneyPlaces)

	sum.TotalAssets = sum.Cash.
		Add(sum.FixedDeposits).
		Add(sum.RecurringDeposits).
		Add(sum.MutualFunds).
		Add(sum.GoldETFs).
		Add(sum.Stocks).
		Add(sum.EquityETFs).
		Add(sum.PPF).
		Add(sum.FRB).
		Add(sum.NPS).
		Add(sum.OtherAssets)
	return sum
}
