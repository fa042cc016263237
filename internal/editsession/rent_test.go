package editsession

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

func TestRentSessionInvalidMonth(t *testing.T) {
	_, err := NewRentSession(ledger.NewDefaultStore(), &fakeSaver{}, "August 2025")
	require.Error(t, err)
}

func TestRentSessionCreatesRecordOnFirstView(t *testing.T) {
	store := ledger.NewDefaultStore()
	session, err := NewRentSession(store, &fakeSaver{}, "2025-09")
	require.NoError(t, err)

	record := session.Record()
	require.NotNil(t, record)
	assert.Equal(t, "2025-09", record.Month)

	timoth := ledger.TenantMonthFor(*record, 3)
	assert.True(t, timoth.MonthlyRent.Amount().Equal(dec("1200")))
	assert.True(t, timoth.Due.IsZero())
	assert.True(t, timoth.Received.IsZero())
}

func TestRentSessionMonthNavigation(t *testing.T) {
	store := ledger.NewDefaultStore()
	session, err := NewRentSession(store, &fakeSaver{}, "2025-08")
	require.NoError(t, err)

	require.NoError(t, session.Next())
	assert.Equal(t, "2025-09", session.Month())
	require.NoError(t, session.Prev())
	require.NoError(t, session.Prev())
	assert.Equal(t, "2025-07", session.Month())

	// Every visited month has exactly one record.
	var months []string
	for _, r := range store.Rent().MonthlyRecords {
		months = append(months, r.Month)
	}
	assert.Equal(t, []string{"2025-07", "2025-08", "2025-09"}, months)
}

func TestRentSessionSaveRecomputesTotal(t *testing.T) {
	store := ledger.NewDefaultStore()
	saver := &fakeSaver{}
	session, err := NewRentSession(store, saver, "2025-08")
	require.NoError(t, err)

	require.NoError(t, session.SetTenantMonth(model.TenantMonth{
		ID: 0, MonthlyRent: model.Rent(dec("900")), Due: dec("900"),
	}))
	require.NoError(t, session.Save(context.Background()))

	// 900 + 1300 + 1250 + 1200 + 0 + 1250; TBD became 900.
	assert.True(t, store.Rent().TotalMonthlyRent.Equal(dec("5900")))
	require.Len(t, saver.rents, 1)
	assert.True(t, saver.rents[0].TotalMonthlyRent.Equal(dec("5900")))
	assert.Equal(t, "2025-08", saver.rents[0].CurrentRecord.Month)
	assert.Len(t, saver.rents[0].BaseTenants, 6)
	assert.Equal(t, StateViewing, session.State())
}

func TestRentSessionFailedSaveKeepsEdits(t *testing.T) {
	store := ledger.NewDefaultStore()
	saver := &fakeSaver{rentErr: errors.New("500")}
	session, err := NewRentSession(store, saver, "2025-08")
	require.NoError(t, err)

	require.NoError(t, session.SetRenter(3, "Timothy"))
	require.NoError(t, session.SetTenantMonth(model.TenantMonth{
		ID: 3, MonthlyRent: model.Rent(dec("1250")), Due: dec("1250"), Received: dec("1250"),
	}))

	err = session.Save(context.Background())
	require.ErrorIs(t, err, ErrSaveFailed)
	assert.Equal(t, StateEditing, session.State())

	// Edits survive for a retry.
	tm := ledger.TenantMonthFor(*session.Record(), 3)
	assert.True(t, tm.MonthlyRent.Amount().Equal(dec("1250")))
	assert.Equal(t, "Timothy", store.Rent().BaseTenants[3].Renter)
}

func TestRentSessionSetUnknownTenant(t *testing.T) {
	session, err := NewRentSession(ledger.NewDefaultStore(), &fakeSaver{}, "2025-08")
	require.NoError(t, err)

	require.Error(t, session.SetRenter(99, "Nobody"))
	require.Error(t, session.SetTenantMonth(model.TenantMonth{ID: 99}))
}
