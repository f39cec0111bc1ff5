package nivesh

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nivesh/nivesh/date"
)

// recordMeta carries the fields every asset record shares. The id is
// generated at creation (millisecond timestamp plus a random suffix) and is
// stable for the lifetime of the record.
type recordMeta struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (m *recordMeta) stamp(id string, now time.Time) { m.ID, m.CreatedAt = id, now }
func (m recordMeta) recordID() string                { return m.ID }

// newRecordID generates a collection-unique record id.
func newRecordID() string {
	return fmt.Sprintf("%d%06d", time.Now().UnixMilli(), rand.IntN(1_000_000))
}

// Deposit lifecycle statuses.
const (
	StatusActive  = "Active"
	StatusMatured = "Matured"
)

// BankAccount is a cash account; its balance counts toward the cash subtotal.
type BankAccount struct {
	recordMeta
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	AccountType   string          `json:"accountType,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// FixedDeposit is a fixed-term deposit. MaturityDate and Status are derived
// and never hand-edited.
type FixedDeposit struct {
	recordMeta
	BankName     string          `json:"bankName"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
	StartDate    date.Date       `json:"startDate"`
	TenureMonths int             `json:"tenureMonths"`
	MaturityDate date.Date       `json:"maturityDate"` // derived
	Status       string          `json:"status"`       // derived
}

// RecurringDeposit is a monthly deposit plan. TotalAmount, MaturityDate and
// Status are derived.
type RecurringDeposit struct {
	recordMeta
	BankName      string          `json:"bankName"`
	MonthlyAmount decimal.Decimal `json:"monthlyAmount"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	StartDate     date.Date       `json:"startDate"`
	TenureMonths  int             `json:"tenureMonths"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`  // derived
	MaturityDate  date.Date       `json:"maturityDate"` // derived
	Status        string          `json:"status"`       // derived
}

// MutualFund holds units valued at the latest NAV. CurrentValue and Returns
// are derived.
type MutualFund struct {
	recordMeta
	Name           string          `json:"name"`
	FolioNumber    string          `json:"folioNumber,omitempty"`
	Units          decimal.Decimal `json:"units"`
	NAV            decimal.Decimal `json:"nav"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // derived
	Returns        Percent         `json:"returns"`      // derived
}

// GoldETF holds exchange-traded gold units.
type GoldETF struct {
	recordMeta
	Name           string          `json:"name"`
	Units          decimal.Decimal `json:"units"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // derived
	Returns        Percent         `json:"returns"`      // derived
}

// Stock is a direct equity position.
type Stock struct {
	recordMeta
	Symbol         string          `json:"symbol"`
	Quantity       decimal.Decimal `json:"quantity"`
	CurrentPrice   decimal.Decimal `json:"currentPrice"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // derived
	Returns        Percent         `json:"returns"`      // derived
}

// EquityETF holds exchange-traded equity fund units.
type EquityETF struct {
	recordMeta
	Name           string          `json:"name"`
	Units          decimal.Decimal `json:"units"`
	NAV            decimal.Decimal `json:"nav"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"` // derived
	Returns        Percent         `json:"returns"`      // derived
}

// PublicProvidentFund is a long-term government savings account.
type PublicProvidentFund struct {
	recordMeta
	Institution   string          `json:"institution"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
}

// FloatingRateBond is a floating rate savings bond holding.
type FloatingRateBond struct {
	recordMeta
	Issuer       string          `json:"issuer"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate decimal.Decimal `json:"interestRate"`
}

// NationalPensionScheme is an NPS account identified by its PRAN.
type NationalPensionScheme struct {
	recordMeta
	PRAN           string          `json:"pran"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	CurrentValue   decimal.Decimal `json:"currentValue"`
	Returns        Percent         `json:"returns"` // derived
}

// AssetSummary is derived from the collections on every write and never
// hand-edited. TotalAssets always equals the sum of the category subtotals.
type AssetSummary struct {
	TotalAssets       decimal.Decimal `json:"totalAssets"`
	Cash              decimal.Decimal `json:"cash"`
	FixedDeposits     decimal.Decimal `json:"fixedDeposits"`
	RecurringDeposits decimal.Decimal `json:"recurringDeposits"`
	MutualFunds       decimal.Decimal `json:"mutualFunds"`
	GoldETFs          decimal.Decimal `json:"goldETFs"`
	Stocks            decimal.Decimal `json:"stocks"`
	EquityETFs        decimal.Decimal `json:"equityETFs"`
	PPF               decimal.Decimal `json:"ppf"`
	FRB               decimal.Decimal `json:"frb"`
	NPS               decimal.Decimal `json:"nps"`
	OtherAssets       decimal.Decimal `json:"otherAssets"`
}

// AssetData is the single per-user asset document: a derived summary plus
// ten independent record collections.
type AssetData struct {
	Summary           AssetSummary            `json:"summary"`
	BankAccounts      []BankAccount           `json:"bankAccounts"`
	FixedDeposits     []FixedDeposit          `json:"fixedDeposits"`
	RecurringDeposits []RecurringDeposit      `json:"recurringDeposits"`
	MutualFunds       []MutualFund            `json:"mutualFunds"`
	GoldETFs          []GoldETF               `json:"goldETFs"`
	Stocks            []Stock                 `json:"stocks"`
	EquityETFs        []EquityETF             `json:"equityETFs"`
	PPF               []PublicProvidentFund   `json:"ppf"`
	FRB               []FloatingRateBond      `json:"frb"`
	NPS               []NationalPensionScheme `json:"nps"`
}

// newAssetData returns the empty skeleton written on first access.
func newAssetData() AssetData {
	return AssetData{
		BankAccounts:      []BankAccount{},
		FixedDeposits:     []FixedDeposit{},
		RecurringDeposits: []RecurringDeposit{},
		MutualFunds:       []MutualFund{},
		GoldETFs:          []GoldETF{},
		Stocks:            []Stock{},
		EquityETFs:        []EquityETF{},
		PPF:               []PublicProvidentFund{},
		FRB:               []FloatingRateBond{},
		NPS:               []NationalPensionScheme{},
	}
}

// ReadAssets returns the user's asset document, recomputing derived fields
// so deposit statuses are current even when the file on disk is stale.
func ReadAssets(s *Store, userID string) (AssetData, error) {
	doc, err := readDocument(s, s.assetsPath(userID), newAssetData)
	if err != nil {
		return AssetData{}, err
	}
	doc.Recompute(date.Today())
	return doc, nil
}

// assetRecordPtr is the constraint shared by all asset record pointers,
// satisfied through the embedded recordMeta.
type assetRecordPtr[T any] interface {
	*T
	stamp(id string, now time.Time)
	recordID() string
}

// createAsset appends a stamped record to a collection, recomputes derived
// state, and persists the whole document. The stored record (with derived
// fields filled in) is returned.
func createAsset[T any, P assetRecordPtr[T]](s *Store, userID string, rec T, col func(*AssetData) *[]T) (T, error) {
	var zero T
	if userID == "" {
		return zero, fmt.Errorf("%w: missing user id", ErrValidation)
	}
	id := newRecordID()
	P(&rec).stamp(id, time.Now().UTC())
	doc, err := updateDocument(s, s.assetsPath(userID), newAssetData, func(d *AssetData) error {
		c := col(d)
		*c = append(*c, rec)
		d.Recompute(date.Today())
		return nil
	})
	if err != nil {
		return zero, err
	}
	for _, r := range *col(&doc) {
		if P(&r).recordID() == id {
			return r, nil
		}
	}
	return zero, fmt.Errorf("record %q: %w", id, ErrNotFound)
}

// updateAsset applies a partial patch to the record with the given id,
// recomputes derived state, and persists the whole document.
func updateAsset[T any, P assetRecordPtr[T]](s *Store, userID, id string, col func(*AssetData) *[]T, patch func(*T)) (T, error) {
	var out T
	_, err := updateDocument(s, s.assetsPath(userID), newAssetData, func(d *AssetData) error {
		c := col(d)
		for i := range *c {
			if P(&(*c)[i]).recordID() != id {
				continue
			}
			patch(&(*c)[i])
			d.Recompute(date.Today())
			out = (*c)[i]
			return nil
		}
		return fmt.Errorf("record %q: %w", id, ErrNotFound)
	})
	return out, err
}

// deleteAsset removes the record with the given id, recomputes derived
// state, and persists the whole document.
func deleteAsset[T any, P assetRecordPtr[T]](s *Store, userID, id string, col func(*AssetData) *[]T) error {
	_, err := updateDocument(s, s.assetsPath(userID), newAssetData, func(d *AssetData) error {
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
		d.Recompute(date.Today())
		return nil
	})
	return err
}

// Collection accessors used by the generic CRUD helpers.
func bankAccounts(d *AssetData) *[]BankAccount           { return &d.BankAccounts }
func fixedDeposits(d *AssetData) *[]FixedDeposit         { return &d.FixedDeposits }
func recurringDeposits(d *AssetData) *[]RecurringDeposit { return &d.RecurringDeposits }
func mutualFunds(d *AssetData) *[]MutualFund             { return &d.MutualFunds }
func goldETFs(d *AssetData) *[]GoldETF                   { return &d.GoldETFs }
func stocks(d *AssetData) *[]Stock                       { return &d.Stocks }
func equityETFs(d *AssetData) *[]EquityETF               { return &d.EquityETFs }
func ppfAccounts(d *AssetData) *[]PublicProvidentFund    { return &d.PPF }
func frbHoldings(d *AssetData) *[]FloatingRateBond       { return &d.FRB }
func npsAccounts(d *AssetData) *[]NationalPensionScheme  { return &d.NPS }

// CreateBankAccount adds a bank account to the user's asset document.
func CreateBankAccount(s *Store, userID string, r BankAccount) (BankAccount, error) {
	return createAsset(s, userID, r, bankAccounts)
}

// UpdateBankAccount patches the bank account with the given id.
func UpdateBankAccount(s *Store, userID, id string, patch func(*BankAccount)) (BankAccount, error) {
	return updateAsset(s, userID, id, bankAccounts, patch)
}

// DeleteBankAccount removes the bank account with the given id.
func DeleteBankAccount(s *Store, userID, id string) error {
	return deleteAsset[BankAccount](s, userID, id, bankAccounts)
}

func CreateFixedDeposit(s *Store, userID string, r FixedDeposit) (FixedDeposit, error) {
	return createAsset(s, userID, r, fixedDeposits)
}
func UpdateFixedDeposit(s *Store, userID, id string, patch func(*FixedDeposit)) (FixedDeposit, error) {
	return updateAsset(s, userID, id, fixedDeposits, patch)
}
func DeleteFixedDeposit(s *Store, userID, id string) error {
	return deleteAsset[FixedDeposit](s, userID, id, fixedDeposits)
}

func CreateRecurringDeposit(s *Store, userID string, r RecurringDeposit) (RecurringDeposit, error) {
	return createAsset(s, userID, r, recurringDeposits)
}
func UpdateRecurringDeposit(s *Store, userID, id string, patch func(*RecurringDeposit)) (RecurringDeposit, error) {
	return updateAsset(s, userID, id, recurringDeposits, patch)
}
func DeleteRecurringDeposit(s *Store, userID, id string) error {
	return deleteAsset[RecurringDeposit](s, userID, id, recurringDeposits)
}

func CreateMutualFund(s *Store, userID string, r MutualFund) (MutualFund, error) {
	return createAsset(s, userID, r, mutualFunds)
}
func UpdateMutualFund(s *Store, userID, id string, patch func(*MutualFund)) (MutualFund, error) {
	return updateAsset(s, userID, id, mutualFunds, patch)
}
func DeleteMutualFund(s *Store, userID, id string) error {
	return deleteAsset[MutualFund](s, userID, id, mutualFunds)
}

func CreateGoldETF(s *Store, userID string, r GoldETF) (GoldETF, error) {
	return createAsset(s, userID, r, goldETFs)
}
func UpdateGoldETF(s *Store, userID, id string, patch func(*GoldETF)) (GoldETF, error) {
	return updateAsset(s, userID, id, goldETFs, patch)
}
func DeleteGoldETF(s *Store, userID, id string) error {
	return deleteAsset[GoldETF](s, userID, id, goldETFs)
}

func CreateStock(s *Store, userID string, r Stock) (Stock, error) {
	return createAsset(s, userID, r, stocks)
}
func UpdateStock(s *Store, userID, id string, patch func(*Stock)) (Stock, error) {
	return updateAsset(s, userID, id, stocks, patch)
}
func DeleteStock(s *Store, userID, id string) error {
	return deleteAsset[Stock](s, userID, id, stocks)
}

func CreateEquityETF(s *Store, userID string, r EquityETF) (EquityETF, error) {
	return createAsset(s, userID, r, equityETFs)
}
func UpdateEquityETF(s *Store, userID, id string, patch func(*EquityETF)) (EquityETF, error) {
	return updateAsset(s, userID, id, equityETFs, patch)
}
func DeleteEquityETF(s *Store, userID, id string) error {
	return deleteAsset[EquityETF](s, userID, id, equityETFs)
}

func CreatePPF(s *Store, userID string, r PublicProvidentFund) (PublicProvidentFund, error) {
	return createAsset(s, userID, r, ppfAccounts)
}
func UpdatePPF(s *Store, userID, id string, patch func(*PublicProvidentFund)) (PublicProvidentFund, error) {
	return updateAsset(s, userID, id, ppfAccounts, patch)
}
func DeletePPF(s *Store, userID, id string) error {
	return deleteAsset[PublicProvidentFund](s, userID, id, ppfAccounts)
}

func CreateFRB(s *Store, userID string, r FloatingRateBond) (FloatingRateBond, error) {
	return createAsset(s, userID, r, frbHoldings)
}
func UpdateFRB(s *Store, userID, id string, patch func(*FloatingRateBond)) (FloatingRateBond, error) {
	return updateAsset(s, userID, id, frbHoldings, patch)
}
func DeleteFRB(s *Store, userID, id string) error {
	return deleteAsset[FloatingRateBond](s, userID, id, frbHoldings)
}

func CreateNPS(s *Store, userID string, r NationalPensionScheme) (NationalPensionScheme, error) {
	return createAsset(s, userID, r, npsAccounts)
}
func UpdateNPS(s *Store, userID, id string, patch func(*NationalPensionScheme)) (NationalPensionScheme, error) {
	return updateAsset(s, userID, id, npsAccounts, patch)
}
func DeleteNPS(s *Store, userID, id string) error {
	return deleteAsset[NationalPensionScheme](s, userID, id, npsAccounts)
}
