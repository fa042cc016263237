package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

func TestAmortizeMortgage(t *testing.T) {
	schedule := Amortize(model.FinancingTerms{
		Principal:    dec("200000"),
		InterestRate: dec("7.1"),
		TermYears:    30,
	})

	require.Len(t, schedule.Rows, 360)

	payment := schedule.MonthlyPayment.InexactFloat64()
	assert.InDelta(t, 1344.0, payment, 1.0)

	// First month's interest dominates: 200000 * 7.1%/12.
	first := schedule.Rows[0]
	assert.InDelta(t, 1183.33, first.Interest.InexactFloat64(), 0.01)
	assert.InDelta(t, payment-1183.33, first.Principal.InexactFloat64(), 0.01)

	// The loan fully amortizes.
	last := schedule.Rows[359]
	assert.Less(t, last.Remaining.InexactFloat64(), 1.0)
}

func TestAmortizeZeroRate(t *testing.T) {
	schedule := Amortize(model.FinancingTerms{
		Principal: dec("1200"),
		TermYears: 1,
	})

	require.Len(t, schedule.Rows, 12)
	assert.True(t, schedule.MonthlyPayment.Equal(dec("100")))
	assert.True(t, schedule.Rows[0].Interest.IsZero())
	assert.True(t, schedule.Rows[11].Remaining.IsZero())
}

func TestAmortizeDegenerateTerms(t *testing.T) {
	assert.Empty(t, Amortize(model.FinancingTerms{}).Rows)
	assert.Empty(t, Amortize(model.FinancingTerms{Principal: dec("100")}).Rows)
	assert.Empty(t, Amortize(model.FinancingTerms{TermYears: 10}).Rows)
}
