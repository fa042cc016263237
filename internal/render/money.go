// Package render formats balances, ledgers, and the rent roll for the
// terminal.
package render

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// Unavailable is shown where a balance could not be read.
const Unavailable = "—"

// USD formats a decimal dollar amount as a currency string, e.g.
// "$1,344.00".
func USD(d decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	cents := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(cents)
}

// RentUSD formats a rent amount as currency, or "TBD" when the rent is
// not yet known.
func RentUSD(r model.RentAmount) string {
	if r.IsTBD() {
		return "TBD"
	}
	return USD(r.Amount())
}
