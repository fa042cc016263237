package model

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// RentAmount is a monthly rent figure that may still be undetermined.
// It marshals as a JSON number, or as the string "TBD" when unset.
type RentAmount struct {
	amount decimal.Decimal
	tbd    bool
}

// TBD is the undetermined rent amount.
var TBD = RentAmount{tbd: true}

// Rent returns a determined rent amount.
func Rent(amount decimal.Decimal) RentAmount {
	return RentAmount{amount: amount}
}

// IsTBD reports whether the amount is undetermined.
func (r RentAmount) IsTBD() bool { return r.tbd }

// Amount returns the rent value. An undetermined amount contributes
// zero to any total.
func (r RentAmount) Amount() decimal.Decimal {
	if r.tbd {
		return decimal.Zero
	}
	return r.amount
}

func (r RentAmount) String() string {
	if r.tbd {
		return "TBD"
	}
	return r.amount.String()
}

// MarshalJSON writes the amount as a number, or "TBD" when undetermined.
func (r RentAmount) MarshalJSON() ([]byte, error) {
	if r.tbd {
		return []byte(`"TBD"`), nil
	}
	return []byte(r.amount.String()), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, or "TBD".
// Anything non-numeric is treated as undetermined.
func (r *RentAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = TBD
		return nil
	}
	if data[0] == '"' {
		s := string(bytes.Trim(data, `"`))
		d, err := decimal.NewFromString(s)
		if err != nil {
			*r = TBD
			return nil
		}
		*r = Rent(d)
		return nil
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("parsing rent amount %q: %w", data, err)
	}
	*r = Rent(d)
	return nil
}

// Tenant is the slowly changing identity of one rental unit occupant.
type Tenant struct {
	ID     int    `json:"id"`
	Floor  string `json:"floor"`
	Renter string `json:"renter"`
}

// TenantMonth is one tenant's figures for a single month.
type TenantMonth struct {
	ID          int             `json:"id"`
	MonthlyRent RentAmount      `json:"monthlyRent"`
	Due         decimal.Decimal `json:"due"`
	Received    decimal.Decimal `json:"received"`
}

// MonthlyRecord holds all tenant figures for one calendar month.
// At most one record exists per month key.
type MonthlyRecord struct {
	Month   string        `json:"month"` // "YYYY-MM"
	Tenants []TenantMonth `json:"tenants"`
}

// RentRoll is the monthly rental income sub-ledger.
type RentRoll struct {
	TotalMonthlyRent decimal.Decimal `json:"totalMonthlyRent"`
	BaseTenants      []Tenant        `json:"baseTenants"`
	MonthlyRecords   []MonthlyRecord `json:"monthlyRecords"`
}
