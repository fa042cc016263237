package render

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/reconcile"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,344.00", USD(dec("1344")))
	assert.Equal(t, "$0.50", USD(dec("0.5")))
	assert.Equal(t, "-$12.34", USD(dec("-12.34")))
	assert.Equal(t, "$1,183.33", USD(dec("1183.3333")))
}

func TestRentUSD(t *testing.T) {
	assert.Equal(t, "$1,000.00", RentUSD(model.Rent(dec("1000"))))
	assert.Equal(t, "TBD", RentUSD(model.TBD))
}

func TestBankBalancesSentinel(t *testing.T) {
	var buf bytes.Buffer
	BankBalances(&buf, map[model.Role]reconcile.RoleBalance{
		model.RoleChecking: {AccountID: "acc_1", Balance: model.Balance{Available: dec("100"), Ledger: dec("110")}},
		model.RoleSavings:  {AccountID: "acc_2", Unavailable: true},
	})

	out := buf.String()
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "$110.00")
	assert.Contains(t, out, Unavailable)
}

func TestDashboardSkipsPersonalBalances(t *testing.T) {
	var buf bytes.Buffer
	Dashboard(&buf, ledger.NewDefaultStore())

	out := buf.String()
	assert.Contains(t, out, "672 Elm St")
	assert.Contains(t, out, "$265,000.00")
	// Personal accounts list without a balance figure.
	assert.Contains(t, out, "personal")
}

func TestTransactionsOmitsZeroLegs(t *testing.T) {
	var buf bytes.Buffer
	Transactions(&buf, []model.Transaction{
		{Date: "2025-08-01", Description: "Rent deposit", Debit: dec("2500")},
		{Date: "2025-08-05", Description: "Mortgage payment", Credit: dec("1344")},
	})

	out := buf.String()
	assert.Contains(t, out, "Rent deposit")
	assert.Contains(t, out, "$2,500.00")
	assert.Contains(t, out, "$1,344.00")
}

func TestAmortizationEmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	Amortization(&buf, ledger.AmortizationSchedule{})
	assert.Contains(t, buf.String(), "No financing terms")
}

func TestRentRollGroupsByFloor(t *testing.T) {
	store := ledger.NewDefaultStore()
	record := store.RecordFor("2025-08")

	var buf bytes.Buffer
	RentRoll(&buf, store, *record)

	out := buf.String()
	assert.Contains(t, out, "August 2025")
	assert.Contains(t, out, "3rd Floor")
	assert.Contains(t, out, "Barn")
	assert.Contains(t, out, "TOTAL")
}
