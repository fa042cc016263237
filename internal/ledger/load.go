package ledger

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// BackendAPI is the slice of the aggregation client the load path needs.
type BackendAPI interface {
	LoadLedgerAccounts(ctx context.Context) ([]api.LedgerAccountRecord, error)
	LoadRent(ctx context.Context, monthKey string) (api.RentRecord, error)
}

// LoadFromBackend overwrites local state with server-side state: each
// account slug present in the response has its balance, transactions
// and financing terms replaced as a whole unit; slugs absent from the
// response keep their in-memory defaults. Afterwards the given month's
// rent record is merged into the rent roll. A rent fetch failure is
// logged and skipped so it cannot undo the account loads.
func (s *Store) LoadFromBackend(ctx context.Context, backend BackendAPI, monthKey string) error {
	records, err := backend.LoadLedgerAccounts(ctx)
	if err != nil {
		return fmt.Errorf("loading ledger accounts: %w", err)
	}

	for _, rec := range records {
		a, ok := s.bySlug[rec.Slug]
		if !ok {
			continue
		}
		applyRecord(a, rec)
	}

	rent, err := backend.LoadRent(ctx, monthKey)
	if err != nil {
		log.Printf("loading rent for %s failed: %v", monthKey, err)
		return nil
	}
	s.mergeRent(monthKey, rent)
	return nil
}

// applyRecord replaces one account's fields as a unit. The converted
// values are fully built before anything is assigned, so a half-applied
// account can never be observed.
func applyRecord(a *model.LedgerAccount, rec api.LedgerAccountRecord) {
	txs := make([]model.Transaction, 0, len(rec.Transactions))
	for _, tr := range rec.Transactions {
		txs = append(txs, model.Transaction{
			Date:        tr.EffectiveDate(),
			Description: tr.Description,
			Debit:       tr.Debit,
			Credit:      tr.Credit,
		})
	}

	var terms *model.FinancingTerms
	if rec.FinancingTerms != nil {
		terms = &model.FinancingTerms{
			Principal:    rec.FinancingTerms.Principal,
			InterestRate: rec.FinancingTerms.InterestRate,
			TermYears:    rec.FinancingTerms.TermYears,
			Breakdown:    rec.FinancingTerms.Breakdown,
		}
	}

	a.Balance = rec.CurrentBalance
	if len(txs) > 0 {
		a.Transactions = txs
	}
	if terms != nil {
		a.FinancingTerms = terms
	}
}

// mergeRent adopts the backend's rent state for one month: the base
// tenant list and total replace the local ones when present, and the
// month's tenant figures replace the matching record's, or append a new
// record when the month is unseen.
func (s *Store) mergeRent(monthKey string, rent api.RentRecord) {
	if len(rent.BaseTenants) == 0 {
		return
	}
	s.rent.BaseTenants = rent.BaseTenants
	if !rent.TotalMonthlyRent.IsZero() {
		s.rent.TotalMonthlyRent = rent.TotalMonthlyRent
	}
	if rent.CurrentRecord == nil {
		return
	}

	for i := range s.rent.MonthlyRecords {
		if s.rent.MonthlyRecords[i].Month == monthKey {
			s.rent.MonthlyRecords[i].Tenants = rent.CurrentRecord.Tenants
			return
		}
	}
	s.rent.MonthlyRecords = append(s.rent.MonthlyRecords, model.MonthlyRecord{
		Month:   monthKey,
		Tenants: rent.CurrentRecord.Tenants,
	})
	sort.Slice(s.rent.MonthlyRecords, func(i, j int) bool {
		return s.rent.MonthlyRecords[i].Month < s.rent.MonthlyRecords[j].Month
	})
}
