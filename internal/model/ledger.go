package model

import "github.com/shopspring/decimal"

// AccountKind classifies a ledger account in the fixed chart.
type AccountKind string

const (
	KindAsset     AccountKind = "asset"
	KindLiability AccountKind = "liability"
	KindPersonal  AccountKind = "personal"
	KindRevenue   AccountKind = "revenue"
)

// Transaction is one row in a ledger account. By convention exactly one
// of Debit/Credit is non-zero, but that is not enforced; balance
// recomputation simply sums both fields with fixed signs.
type Transaction struct {
	Date        string          `json:"date"` // ISO date, "2006-01-02"
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// FinancingTerms describes a loan behind a liability account. It is
// only used to derive an amortization schedule and is never mutated.
type FinancingTerms struct {
	Principal    decimal.Decimal            `json:"principal"`
	InterestRate decimal.Decimal            `json:"interest_rate"` // annual percent, e.g. 6.5
	TermYears    int                        `json:"term_years"`
	Breakdown    map[string]decimal.Decimal `json:"breakdown,omitempty"`
}

// LedgerAccount is one entry in the LLC's fixed chart of accounts,
// keyed by slug.
//
// For asset and liability accounts that are not externally sourced,
// Balance is derived from Transactions (asset: debits minus credits,
// liability: credits minus debits). Externally sourced accounts take
// their balance from the bank API; personal accounts carry no balance
// at all.
type LedgerAccount struct {
	Slug              string
	Name              string
	Subtitle          string
	Balance           decimal.Decimal
	Kind              AccountKind
	ExternallySourced bool
	Transactions      []Transaction
	FinancingTerms    *FinancingTerms
}

// DisplaysBalance reports whether the account has a meaningful balance
// to show on the dashboard.
func (a LedgerAccount) DisplaysBalance() bool {
	return a.Kind != KindPersonal
}
