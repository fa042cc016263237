package connect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickbooks-dev/brickbooks/internal/credstore"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/resolve"
)

type fakeDirectory struct {
	accounts []model.Account
	err      error
}

func (f *fakeDirectory) ListAccounts(context.Context) ([]model.Account, error) {
	return f.accounts, f.err
}

func TestSimulatedConnector(t *testing.T) {
	sim := &Simulated{Now: func() time.Time { return time.UnixMilli(1700000000000) }}
	enrollment, err := sim.Connect(context.Background(), Params{})
	require.NoError(t, err)

	assert.Equal(t, "test_token_1700000000000", enrollment.Credential.AccessToken)
	require.Len(t, enrollment.Accounts, 2)
	assert.Equal(t, "checking", enrollment.Accounts[0].Subtype)
	assert.Equal(t, "savings", enrollment.Accounts[1].Subtype)
}

func TestLinkStoresCredentialAndMapping(t *testing.T) {
	store := credstore.New(t.TempDir())
	dir := &fakeDirectory{accounts: []model.Account{
		{ID: "a1", Type: "depository", Subtype: "checking"},
		{ID: "a2", Type: "depository", Subtype: "savings"},
	}}
	connector := &Static{Enrollment: Enrollment{
		Credential: model.Credential{AccessToken: "tok", User: model.User{ID: "u1"}},
	}}

	mapping, err := Link(context.Background(), connector, Params{}, store, dir)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMapping{CheckingID: "a1", SavingsID: "a2"}, mapping)

	cred, ok, err := store.Credential()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok", cred.AccessToken)

	persisted, ok, err := store.RoleMapping()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mapping, persisted)
}

func TestLinkMergesWithPersistedMapping(t *testing.T) {
	store := credstore.New(t.TempDir())
	require.NoError(t, store.PutRoleMapping(model.RoleMapping{CheckingID: "old_c", SavingsID: "old_s"}))

	// New enrollment only surfaces a savings account.
	dir := &fakeDirectory{accounts: []model.Account{
		{ID: "new_s", Type: "depository", Subtype: "savings"},
	}}
	connector := &Static{Enrollment: Enrollment{Credential: model.Credential{AccessToken: "tok"}}}

	mapping, err := Link(context.Background(), connector, Params{}, store, dir)
	require.NoError(t, err)
	assert.Equal(t, model.RoleMapping{CheckingID: "old_c", SavingsID: "new_s"}, mapping,
		"known checking ID must not regress")
}

func TestLinkResolutionFailureIsFatal(t *testing.T) {
	store := credstore.New(t.TempDir())
	dir := &fakeDirectory{accounts: []model.Account{
		{ID: "c1", Type: "credit", Subtype: "card", Name: "Rewards"},
	}}
	connector := &Static{Enrollment: Enrollment{Credential: model.Credential{AccessToken: "tok"}}}

	_, err := Link(context.Background(), connector, Params{}, store, dir)
	require.ErrorIs(t, err, resolve.ErrNoAccountsResolved)

	// The credential was stored before resolution; the mapping was not.
	_, ok, _ := store.RoleMapping()
	assert.False(t, ok)
}

func TestLinkRejectsEmptyCredential(t *testing.T) {
	store := credstore.New(t.TempDir())
	dir := &fakeDirectory{}
	connector := &Static{}

	_, err := Link(context.Background(), connector, Params{}, store, dir)
	require.Error(t, err)

	_, ok, _ := store.Credential()
	assert.False(t, ok)
}

func TestLinkDirectoryErrorPropagates(t *testing.T) {
	store := credstore.New(t.TempDir())
	dir := &fakeDirectory{err: errors.New("401")}
	connector := &Static{Enrollment: Enrollment{Credential: model.Credential{AccessToken: "tok"}}}

	_, err := Link(context.Background(), connector, Params{}, store, dir)
	require.Error(t, err)
}
