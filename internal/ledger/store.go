// Package ledger holds the LLC's bookkeeping state: the fixed chart of
// accounts with their transaction lists and derived balances, plus the
// monthly rent-roll sub-ledger. The store is an explicitly owned object
// handed to whoever needs it; there are no package-level globals.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// Store is the in-memory bookkeeping state. It is loaded once at
// startup, mutated by edit sessions, and pushed back to the remote
// persistence API on explicit save.
type Store struct {
	bySlug map[string]*model.LedgerAccount
	order  []string
	rent   model.RentRoll
}

// NewStore creates a Store from a chart and a rent roll.
func NewStore(chart []model.LedgerAccount, rent model.RentRoll) *Store {
	s := &Store{bySlug: make(map[string]*model.LedgerAccount, len(chart)), rent: rent}
	for i := range chart {
		a := chart[i]
		s.bySlug[a.Slug] = &a
		s.order = append(s.order, a.Slug)
	}
	return s
}

// NewDefaultStore creates a Store seeded with the default chart and
// rent roll.
func NewDefaultStore() *Store {
	return NewStore(DefaultChart(), DefaultRentRoll())
}

// Get returns the account for a slug.
func (s *Store) Get(slug string) (*model.LedgerAccount, bool) {
	a, ok := s.bySlug[slug]
	return a, ok
}

// Slugs returns the chart's slugs in dashboard order.
func (s *Store) Slugs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the accounts in dashboard order.
func (s *Store) All() []*model.LedgerAccount {
	out := make([]*model.LedgerAccount, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.bySlug[slug])
	}
	return out
}

// Rent returns the rent-roll sub-ledger.
func (s *Store) Rent() *model.RentRoll {
	return &s.rent
}

// Recalculate recomputes an account's balance from its transactions and
// overwrites it in place: assets sum debit minus credit, liabilities
// credit minus debit. Personal and externally sourced accounts are
// exempt (their balance is informational or comes from the bank API).
// Calling it twice without edits yields the same balance.
func (s *Store) Recalculate(slug string) {
	a, ok := s.bySlug[slug]
	if !ok || a.Kind == model.KindPersonal || a.ExternallySourced {
		return
	}

	balance := decimal.Zero
	for _, tx := range a.Transactions {
		switch a.Kind {
		case model.KindAsset:
			balance = balance.Add(tx.Debit).Sub(tx.Credit)
		case model.KindLiability:
			balance = balance.Add(tx.Credit).Sub(tx.Debit)
		}
	}
	a.Balance = balance
}

// TotalEquity returns total assets minus total liabilities. It is
// recomputed on every call, never cached.
func (s *Store) TotalEquity() decimal.Decimal {
	equity := decimal.Zero
	for _, slug := range s.order {
		a := s.bySlug[slug]
		switch a.Kind {
		case model.KindAsset:
			equity = equity.Add(a.Balance)
		case model.KindLiability:
			equity = equity.Sub(a.Balance)
		}
	}
	return equity
}

// TotalAssets returns the sum of asset balances.
func (s *Store) TotalAssets() decimal.Decimal {
	total := decimal.Zero
	for _, slug := range s.order {
		if a := s.bySlug[slug]; a.Kind == model.KindAsset {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// TotalLiabilities returns the sum of liability balances.
func (s *Store) TotalLiabilities() decimal.Decimal {
	total := decimal.Zero
	for _, slug := range s.order {
		if a := s.bySlug[slug]; a.Kind == model.KindLiability {
			total = total.Add(a.Balance)
		}
	}
	return total
}
