package editsession

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeSaver struct {
	accountErr error
	rentErr    error
	accounts   []api.SaveLedgerAccountRequest
	rents      []api.SaveRentRequest
}

func (f *fakeSaver) SaveLedgerAccount(_ context.Context, req api.SaveLedgerAccountRequest) error {
	if f.accountErr != nil {
		return f.accountErr
	}
	f.accounts = append(f.accounts, req)
	return nil
}

func (f *fakeSaver) SaveRent(_ context.Context, _ string, req api.SaveRentRequest) error {
	if f.rentErr != nil {
		return f.rentErr
	}
	f.rents = append(f.rents, req)
	return nil
}

func newAssetStore() *ledger.Store {
	return ledger.NewStore([]model.LedgerAccount{
		{Slug: "propertyAsset", Name: "672 Elm St", Kind: model.KindAsset},
	}, model.RentRoll{})
}

func TestTxSessionUnknownSlug(t *testing.T) {
	_, err := NewTxSession(newAssetStore(), &fakeSaver{}, "nope")
	require.Error(t, err)
}

func TestTxSessionLifecycle(t *testing.T) {
	store := newAssetStore()
	saver := &fakeSaver{}
	session, err := NewTxSession(store, saver, "propertyAsset")
	require.NoError(t, err)
	assert.Equal(t, StateViewing, session.State())

	// Mutations outside editing are rejected.
	require.ErrorIs(t, session.AddRow(model.Transaction{}), ErrNotEditing)

	session.Begin()
	assert.Equal(t, StateEditing, session.State())

	require.NoError(t, session.AddRow(model.Transaction{Date: "2025-05-01", Description: "Repair", Debit: dec("100")}))
	require.NoError(t, session.Save(context.Background()))
	assert.Equal(t, StateViewing, session.State())

	account, _ := store.Get("propertyAsset")
	assert.True(t, account.Balance.Equal(dec("100")))
	require.Len(t, saver.accounts, 1)
	assert.Equal(t, "propertyAsset", saver.accounts[0].Slug)
	assert.Equal(t, "asset", saver.accounts[0].AccountType)
	assert.True(t, saver.accounts[0].CurrentBalance.Equal(dec("100")))
}

func TestTxSessionFailedPushKeepsEdits(t *testing.T) {
	store := newAssetStore()
	saver := &fakeSaver{accountErr: errors.New("503")}
	session, err := NewTxSession(store, saver, "propertyAsset")
	require.NoError(t, err)

	session.Begin()
	require.NoError(t, session.AddRow(model.Transaction{Debit: dec("100")}))

	err = session.Save(context.Background())
	require.ErrorIs(t, err, ErrSaveFailed)

	// Session stays open for another attempt, edits and balance intact.
	assert.Equal(t, StateEditing, session.State())
	require.Len(t, session.Rows(), 1)
	account, _ := store.Get("propertyAsset")
	assert.True(t, account.Balance.Equal(dec("100")), "recalculated balance survives the failed push")

	// A retry after the server recovers succeeds.
	saver.accountErr = nil
	require.NoError(t, session.Save(context.Background()))
	assert.Equal(t, StateViewing, session.State())
}

func TestTxSessionDeleteRow(t *testing.T) {
	store := newAssetStore()
	account, _ := store.Get("propertyAsset")
	account.Transactions = []model.Transaction{
		{Description: "keep", Debit: dec("1")},
		{Description: "drop", Debit: dec("2")},
	}
	saver := &fakeSaver{}
	session, err := NewTxSession(store, saver, "propertyAsset")
	require.NoError(t, err)
	session.Begin()

	require.NoError(t, session.DeleteRow(1))
	require.Len(t, session.Rows(), 1)

	// Deleting only touches the working set until save.
	assert.Len(t, account.Transactions, 2)

	require.NoError(t, session.Save(context.Background()))
	assert.Len(t, account.Transactions, 1)
	assert.Equal(t, "keep", account.Transactions[0].Description)
	require.Len(t, saver.accounts, 1)
	assert.Len(t, saver.accounts[0].Transactions, 1, "authoritative list replaced wholesale")
}

func TestTxSessionRowBounds(t *testing.T) {
	session, err := NewTxSession(newAssetStore(), &fakeSaver{}, "propertyAsset")
	require.NoError(t, err)
	session.Begin()

	require.Error(t, session.DeleteRow(0))
	require.Error(t, session.UpdateRow(-1, model.Transaction{}))
}

func TestTxSessionUpdateRow(t *testing.T) {
	store := newAssetStore()
	account, _ := store.Get("propertyAsset")
	account.Transactions = []model.Transaction{{Description: "old", Debit: dec("1")}}
	session, err := NewTxSession(store, &fakeSaver{}, "propertyAsset")
	require.NoError(t, err)
	session.Begin()

	require.NoError(t, session.UpdateRow(0, model.Transaction{Description: "new", Credit: dec("3")}))
	assert.Equal(t, "new", session.Rows()[0].Description)
	assert.Equal(t, "old", account.Transactions[0].Description, "account untouched before save")
}
