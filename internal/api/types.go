package api

import (
	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// CachedTransaction is a mirrored bank transaction. Amounts are signed:
// negative for money out, positive for money in.
type CachedTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayeeAddress is a Zelle payee destination, type "email" or "phone".
type PayeeAddress struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Payee is a Zelle payee.
type Payee struct {
	ID      string       `json:"id,omitempty"`
	Name    string       `json:"name"`
	Address PayeeAddress `json:"address"`
}

// Payment is a Zelle payment request.
type Payment struct {
	PayeeID string          `json:"payee_id"`
	Amount  decimal.Decimal `json:"amount"`
	Memo    string          `json:"memo,omitempty"`
}

// TransactionRecord is the server-side shape of a ledger transaction.
// Older records use txn_date where newer ones use date.
type TransactionRecord struct {
	TxnDate     string          `json:"txn_date,omitempty"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// EffectiveDate returns txn_date when set, falling back to date.
func (r TransactionRecord) EffectiveDate() string {
	if r.TxnDate != "" {
		return r.TxnDate
	}
	return r.Date
}

// FinancingTermsRecord is the server-side shape of financing terms.
type FinancingTermsRecord struct {
	Principal    decimal.Decimal            `json:"principal"`
	InterestRate decimal.Decimal            `json:"interest_rate"`
	TermYears    int                        `json:"term_years"`
	Breakdown    map[string]decimal.Decimal `json:"breakdown,omitempty"`
}

// LedgerAccountRecord is one stored LLC ledger account as returned by
// GET /llc/accounts.
type LedgerAccountRecord struct {
	Slug           string                `json:"slug"`
	Name           string                `json:"name"`
	Subtitle       string                `json:"subtitle"`
	AccountType    string                `json:"account_type"`
	CurrentBalance decimal.Decimal       `json:"current_balance"`
	Transactions   []TransactionRecord   `json:"transactions"`
	FinancingTerms *FinancingTermsRecord `json:"financing_terms,omitempty"`
}

// SaveLedgerAccountRequest is the POST /llc/accounts payload. The
// transaction list replaces the stored one wholesale.
type SaveLedgerAccountRequest struct {
	Slug           string              `json:"slug"`
	Name           string              `json:"name"`
	Subtitle       string              `json:"subtitle"`
	AccountType    string              `json:"account_type"`
	CurrentBalance decimal.Decimal     `json:"current_balance"`
	Transactions   []model.Transaction `json:"transactions"`
}

// RentRecord is the GET /llc/rent/{month} response.
type RentRecord struct {
	BaseTenants      []model.Tenant       `json:"baseTenants"`
	TotalMonthlyRent decimal.Decimal      `json:"totalMonthlyRent"`
	CurrentRecord    *model.MonthlyRecord `json:"currentRecord,omitempty"`
}

// SaveRentRequest is the POST /llc/rent/{month} payload.
type SaveRentRequest struct {
	BaseTenants      []model.Tenant      `json:"baseTenants"`
	CurrentRecord    model.MonthlyRecord `json:"currentRecord"`
	TotalMonthlyRent decimal.Decimal     `json:"totalMonthlyRent"`
}
