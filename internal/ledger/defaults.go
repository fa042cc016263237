package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// Slugs of the fixed chart, in dashboard order.
const (
	SlugJuliePersonal = "juliePersonalFinances"
	SlugDavidPersonal = "davidPersonalFinances"
	SlugLLCBank       = "llcBank"
	SlugLLCSavings    = "llcSavings"
	SlugHelocLoan     = "helocLoan"
	SlugMemberLoan    = "memberLoan"
	SlugMortgageLoan  = "mortgageLoan"
	SlugPropertyAsset = "propertyAsset"
)

func amt(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultChart returns the LLC's chart of accounts with its seed data.
// Accounts present in the backend response overwrite these defaults at
// load time; absent ones keep them.
func DefaultChart() []model.LedgerAccount {
	return []model.LedgerAccount{
		{
			Slug:     SlugJuliePersonal,
			Name:     "Julie's Finances",
			Subtitle: "Transactions related to the LLC.",
			Kind:     model.KindPersonal,
			Transactions: []model.Transaction{
				{Date: "2025-01-15", Description: "Loan to LLC (from HELOC)", Credit: amt(50000)},
				{Date: "2025-03-05", Description: "Loan to LLC (Roof Share)", Credit: amt(7500)},
				{Date: "2025-04-05", Description: "Distribution from LLC", Debit: amt(1000)},
				{Date: "2025-04-06", Description: "Payment to HELOC Lender", Credit: amt(500)},
				{Date: "2025-04-06", Description: "Share of Mortgage Payment", Credit: amt(750)},
			},
		},
		{
			Slug:     SlugDavidPersonal,
			Name:     "David's Finances",
			Subtitle: "Transactions related to the LLC.",
			Kind:     model.KindPersonal,
			Transactions: []model.Transaction{
				{Date: "2025-03-05", Description: "Loan to LLC (Roof Share)", Credit: amt(7500)},
				{Date: "2025-04-05", Description: "Distribution from LLC", Debit: amt(1000)},
				{Date: "2025-04-06", Description: "Share of Mortgage Payment", Credit: amt(750)},
			},
		},
		{
			Slug:              SlugLLCBank,
			Name:              "LLC Checking",
			Subtitle:          "Central hub for all business income and expenses.",
			Kind:              model.KindAsset,
			ExternallySourced: true,
		},
		{
			Slug:              SlugLLCSavings,
			Name:              "LLC Savings",
			Subtitle:          "Reserve funds for future capital expenditures.",
			Kind:              model.KindAsset,
			ExternallySourced: true,
		},
		{
			Slug:     SlugHelocLoan,
			Name:     "HELOC Loan",
			Subtitle: "Liability from Julie's HELOC for the down payment.",
			Balance:  amt(50000),
			Kind:     model.KindLiability,
			Transactions: []model.Transaction{
				{Date: "2025-01-15", Description: "Loan from Julie", Credit: amt(50000)},
			},
			FinancingTerms: &model.FinancingTerms{
				Principal:    amt(50000),
				InterestRate: decimal.NewFromFloat(6.5),
				TermYears:    15,
				Breakdown: map[string]decimal.Decimal{
					"Total": amt(50000),
					"Julie": amt(50000),
					"David": amt(0),
				},
			},
		},
		{
			Slug:     SlugMemberLoan,
			Name:     "Member Loan (Roof)",
			Subtitle: "A formal liability owed by the LLC to its members.",
			Balance:  amt(15000),
			Kind:     model.KindLiability,
			Transactions: []model.Transaction{
				{Date: "2025-03-05", Description: "Loan proceeds for roof", Credit: amt(15000)},
			},
			FinancingTerms: &model.FinancingTerms{
				Principal:    amt(15000),
				InterestRate: decimal.NewFromFloat(5.0),
				TermYears:    10,
				Breakdown: map[string]decimal.Decimal{
					"Total": amt(15000),
					"Julie": amt(7500),
					"David": amt(7500),
				},
			},
		},
		{
			Slug:     SlugMortgageLoan,
			Name:     "672 Elm St. Mortgage",
			Subtitle: "Primary mortgage for the investment property.",
			Balance:  amt(200000),
			Kind:     model.KindLiability,
			Transactions: []model.Transaction{
				{Date: "2025-01-20", Description: "Initial Mortgage Loan", Credit: amt(200000)},
			},
			FinancingTerms: &model.FinancingTerms{
				Principal:    amt(200000),
				InterestRate: decimal.NewFromFloat(7.1),
				TermYears:    30,
			},
		},
		{
			Slug:     SlugPropertyAsset,
			Name:     "672 Elm St",
			Subtitle: "The capitalized value of the building and improvements.",
			Balance:  amt(265000),
			Kind:     model.KindAsset,
			Transactions: []model.Transaction{
				{Date: "2025-01-20", Description: "Property Acquisition (Building Value)", Debit: amt(250000)},
				{Date: "2025-03-10", Description: "Capital Improvement (New Roof)", Debit: amt(15000)},
			},
		},
	}
}

// DefaultRentRoll returns the rent roll seed data.
func DefaultRentRoll() model.RentRoll {
	return model.RentRoll{
		TotalMonthlyRent: amt(5000),
		BaseTenants: []model.Tenant{
			{ID: 0, Floor: "1st Floor", Renter: "NA"},
			{ID: 1, Floor: "2nd Floor", Renter: "Gina"},
			{ID: 2, Floor: "2nd Floor", Renter: "ECC"},
			{ID: 3, Floor: "3rd Floor", Renter: "Timoth"},
			{ID: 4, Floor: "3rd Floor", Renter: "Angua"},
			{ID: 5, Floor: "Barn", Renter: "Steve"},
		},
		MonthlyRecords: []model.MonthlyRecord{
			{
				Month: "2025-08",
				Tenants: []model.TenantMonth{
					{ID: 0, MonthlyRent: model.TBD},
					{ID: 1, MonthlyRent: model.Rent(amt(1300)), Due: amt(1300), Received: amt(1300)},
					{ID: 2, MonthlyRent: model.Rent(amt(1250)), Due: amt(1250), Received: amt(1250)},
					{ID: 3, MonthlyRent: model.Rent(amt(1200)), Due: amt(1200)},
					{ID: 4, MonthlyRent: model.Rent(amt(0))},
					{ID: 5, MonthlyRent: model.Rent(amt(1250)), Due: amt(1250), Received: amt(1250)},
				},
			},
		},
	}
}

// Floors in rent-roll display order.
var Floors = []string{"3rd Floor", "2nd Floor", "1st Floor", "Barn"}
