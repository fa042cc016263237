package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// PaymentRow is one month in an amortization schedule.
type PaymentRow struct {
	Number    int
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Remaining decimal.Decimal
}

// AmortizationSchedule is the full payment plan derived from a loan's
// financing terms.
type AmortizationSchedule struct {
	MonthlyPayment decimal.Decimal
	Rows           []PaymentRow
}

var months = decimal.NewFromInt(12)

// Amortize derives the standard annuity schedule from financing terms:
// payment = P * r * (1+r)^n / ((1+r)^n - 1) with r the monthly rate and
// n the number of payments. A zero interest rate degrades to equal
// principal installments.
func Amortize(terms model.FinancingTerms) AmortizationSchedule {
	n := int64(terms.TermYears) * 12
	if n <= 0 || terms.Principal.IsZero() {
		return AmortizationSchedule{}
	}
	payments := decimal.NewFromInt(n)

	rate := terms.InterestRate.Div(decimal.NewFromInt(100)).Div(months)

	var payment decimal.Decimal
	if rate.IsZero() {
		payment = terms.Principal.Div(payments)
	} else {
		factor := rate.Add(decimal.NewFromInt(1)).Pow(payments)
		payment = terms.Principal.Mul(rate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
	}

	schedule := AmortizationSchedule{
		MonthlyPayment: payment,
		Rows:           make([]PaymentRow, 0, n),
	}

	remaining := terms.Principal
	for i := int64(1); i <= n; i++ {
		interest := remaining.Mul(rate)
		principal := payment.Sub(interest)
		remaining = remaining.Sub(principal)
		schedule.Rows = append(schedule.Rows, PaymentRow{
			Number:    int(i),
			Principal: principal,
			Interest:  interest,
			Remaining: remaining.Abs(),
		})
	}
	return schedule
}
