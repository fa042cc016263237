package model

import "github.com/shopspring/decimal"

// Role is a semantic account category, distinct from the opaque
// remote account identifier.
type Role string

const (
	RoleChecking Role = "checking"
	RoleSavings  Role = "savings"
)

// Institution identifies the bank behind a remote account.
type Institution struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Account is a remote bank account as returned by the aggregation API.
// It is an immutable snapshot per fetch and is not persisted beyond
// role resolution.
type Account struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"` // "depository", "credit", ...
	Subtype     string      `json:"subtype"`
	Name        string      `json:"name"`
	Institution Institution `json:"institution"`
}

// Balance holds the available and ledger balances for one account.
// The same shape is served both live (from the provider) and cached
// (from the local mirror).
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Ledger    decimal.Decimal `json:"ledger"`
}

// RoleMapping maps semantic roles to remote account IDs. An empty ID
// means the role is unresolved.
type RoleMapping struct {
	CheckingID string `json:"checkingId"`
	SavingsID  string `json:"savingsId"`
}

// ID returns the account ID for a role.
func (m RoleMapping) ID(role Role) string {
	if role == RoleSavings {
		return m.SavingsID
	}
	return m.CheckingID
}

// Empty reports whether neither role is mapped.
func (m RoleMapping) Empty() bool {
	return m.CheckingID == "" && m.SavingsID == ""
}
