package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

type fakeBackend struct {
	records    []api.LedgerAccountRecord
	recordsErr error
	rent       api.RentRecord
	rentErr    error
}

func (f *fakeBackend) LoadLedgerAccounts(context.Context) ([]api.LedgerAccountRecord, error) {
	return f.records, f.recordsErr
}

func (f *fakeBackend) LoadRent(_ context.Context, _ string) (api.RentRecord, error) {
	return f.rent, f.rentErr
}

func TestLoadOverwritesPresentSlugs(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		records: []api.LedgerAccountRecord{
			{
				Slug:           SlugHelocLoan,
				CurrentBalance: dec("48000"),
				Transactions: []api.TransactionRecord{
					{TxnDate: "2025-01-15", Description: "Loan from Julie", Credit: dec("50000")},
					{Date: "2025-06-01", Description: "Paydown", Debit: dec("2000")},
				},
				FinancingTerms: &api.FinancingTermsRecord{
					Principal:    dec("50000"),
					InterestRate: dec("6.25"),
					TermYears:    15,
				},
			},
		},
	}

	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-09"))

	heloc, _ := s.Get(SlugHelocLoan)
	assert.True(t, heloc.Balance.Equal(dec("48000")))
	require.Len(t, heloc.Transactions, 2)
	assert.Equal(t, "2025-01-15", heloc.Transactions[0].Date)
	assert.Equal(t, "2025-06-01", heloc.Transactions[1].Date)
	assert.True(t, heloc.FinancingTerms.InterestRate.Equal(dec("6.25")))

	// Slugs absent from the response keep their defaults.
	mortgage, _ := s.Get(SlugMortgageLoan)
	assert.True(t, mortgage.Balance.Equal(dec("200000")))
	require.Len(t, mortgage.Transactions, 1)
}

func TestLoadKeepsDefaultTransactionsWhenServerHasNone(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		records: []api.LedgerAccountRecord{
			{Slug: SlugPropertyAsset, CurrentBalance: dec("270000")},
		},
	}

	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-09"))

	prop, _ := s.Get(SlugPropertyAsset)
	assert.True(t, prop.Balance.Equal(dec("270000")))
	assert.Len(t, prop.Transactions, 2, "empty server list keeps seed transactions")
}

func TestLoadIgnoresUnknownSlugs(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		records: []api.LedgerAccountRecord{
			{Slug: "mysterySlug", CurrentBalance: dec("1")},
		},
	}
	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-09"))
}

func TestLoadAccountsErrorIsReturned(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{recordsErr: errors.New("boom")}
	err := s.LoadFromBackend(context.Background(), backend, "2025-09")
	require.Error(t, err)

	// Defaults intact.
	heloc, _ := s.Get(SlugHelocLoan)
	assert.True(t, heloc.Balance.Equal(dec("50000")))
}

func TestLoadMergesRentForExistingMonth(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		rent: api.RentRecord{
			BaseTenants:      []model.Tenant{{ID: 1, Floor: "2nd Floor", Renter: "Gina"}},
			TotalMonthlyRent: dec("1300"),
			CurrentRecord: &model.MonthlyRecord{
				Tenants: []model.TenantMonth{{ID: 1, MonthlyRent: model.Rent(dec("1300")), Due: dec("1300")}},
			},
		},
	}

	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-08"))

	rent := s.Rent()
	assert.Len(t, rent.BaseTenants, 1)
	assert.True(t, rent.TotalMonthlyRent.Equal(dec("1300")))

	aug := s.RecordFor("2025-08")
	require.Len(t, aug.Tenants, 1, "matching month's tenant list is replaced")
	assert.True(t, aug.Tenants[0].Due.Equal(dec("1300")))
}

func TestLoadAppendsRentForNewMonth(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		rent: api.RentRecord{
			BaseTenants: []model.Tenant{{ID: 1, Floor: "2nd Floor", Renter: "Gina"}},
			CurrentRecord: &model.MonthlyRecord{
				Tenants: []model.TenantMonth{{ID: 1, MonthlyRent: model.Rent(dec("1350"))}},
			},
		},
	}

	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-09"))

	require.Len(t, s.Rent().MonthlyRecords, 2)
	assert.Equal(t, "2025-09", s.Rent().MonthlyRecords[1].Month)
}

func TestLoadRentFailureKeepsAccountLoads(t *testing.T) {
	s := NewDefaultStore()
	backend := &fakeBackend{
		records: []api.LedgerAccountRecord{
			{Slug: SlugPropertyAsset, CurrentBalance: dec("300000")},
		},
		rentErr: errors.New("rent endpoint down"),
	}

	require.NoError(t, s.LoadFromBackend(context.Background(), backend, "2025-09"))

	prop, _ := s.Get(SlugPropertyAsset)
	assert.True(t, prop.Balance.Equal(dec("300000")))
	assert.Len(t, s.Rent().MonthlyRecords, 1, "rent roll untouched on rent failure")
}
