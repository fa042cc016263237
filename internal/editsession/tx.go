package editsession

import (
	"context"
	"fmt"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// AccountSaver pushes one ledger account's state to the backend.
type AccountSaver interface {
	SaveLedgerAccount(ctx context.Context, req api.SaveLedgerAccountRequest) error
}

// TxSession edits one account's transaction table. Rows are a working
// copy; the account's authoritative list is replaced wholesale on save,
// not patched row by row.
type TxSession struct {
	store *ledger.Store
	saver AccountSaver
	slug  string
	state State
	rows  []model.Transaction
}

// NewTxSession creates a session for a chart slug, starting in the
// viewing state.
func NewTxSession(store *ledger.Store, saver AccountSaver, slug string) (*TxSession, error) {
	if _, ok := store.Get(slug); !ok {
		return nil, fmt.Errorf("unknown ledger account %q", slug)
	}
	return &TxSession{store: store, saver: saver, slug: slug, state: StateViewing}, nil
}

// State returns the session's current state.
func (s *TxSession) State() State { return s.state }

// Begin copies the account's transactions into the working set and
// enters the editing state.
func (s *TxSession) Begin() {
	if s.state != StateViewing {
		return
	}
	account, _ := s.store.Get(s.slug)
	s.rows = make([]model.Transaction, len(account.Transactions))
	copy(s.rows, account.Transactions)
	s.state = StateEditing
}

// Rows returns a copy of the working set.
func (s *TxSession) Rows() []model.Transaction {
	out := make([]model.Transaction, len(s.rows))
	copy(out, s.rows)
	return out
}

// AddRow appends a transaction to the working set.
func (s *TxSession) AddRow(tx model.Transaction) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.rows = append(s.rows, tx)
	return nil
}

// UpdateRow replaces the i-th working row.
func (s *TxSession) UpdateRow(i int, tx model.Transaction) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("no transaction row %d", i)
	}
	s.rows[i] = tx
	return nil
}

// DeleteRow removes the i-th working row. Only the working set is
// touched; the server learns about the removal on save.
func (s *TxSession) DeleteRow(i int) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("no transaction row %d", i)
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// Save replaces the account's transactions with the working set,
// recalculates its balance, and pushes the whole account to the
// backend. On push failure the session drops back to editing with the
// working set and the recalculated in-memory balance intact; only a
// successful push closes the session.
func (s *TxSession) Save(ctx context.Context) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.state = StateSaving

	account, _ := s.store.Get(s.slug)
	account.Transactions = s.Rows()
	s.store.Recalculate(s.slug)

	err := s.saver.SaveLedgerAccount(ctx, api.SaveLedgerAccountRequest{
		Slug:           s.slug,
		Name:           account.Name,
		Subtitle:       account.Subtitle,
		AccountType:    string(account.Kind),
		CurrentBalance: account.Balance,
		Transactions:   account.Transactions,
	})
	if err != nil {
		s.state = StateEditing
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.state = StateViewing
	return nil
}
