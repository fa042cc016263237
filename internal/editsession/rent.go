package editsession

import (
	"context"
	"fmt"

	"github.com/brickbooks-dev/brickbooks/internal/api"
	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/month"
)

// RentSaver pushes one month's rent record to the backend.
type RentSaver interface {
	SaveRent(ctx context.Context, monthKey string, req api.SaveRentRequest) error
}

// RentSession edits the rent roll for one displayed month. Month
// navigation re-targets the session, creating records on first view via
// the clone-from-latest rule; each month's record is mutable
// independent of the others.
type RentSession struct {
	store    *ledger.Store
	saver    RentSaver
	monthKey string
	state    State
}

// NewRentSession creates a session showing the given "YYYY-MM" month.
func NewRentSession(store *ledger.Store, saver RentSaver, monthKey string) (*RentSession, error) {
	if _, err := month.Parse(monthKey); err != nil {
		return nil, err
	}
	s := &RentSession{store: store, saver: saver, monthKey: monthKey, state: StateEditing}
	s.store.RecordFor(monthKey)
	return s, nil
}

// Month returns the displayed month key.
func (s *RentSession) Month() string { return s.monthKey }

// State returns the session's current state.
func (s *RentSession) State() State { return s.state }

// Record returns the displayed month's record, creating it if needed.
func (s *RentSession) Record() *model.MonthlyRecord {
	return s.store.RecordFor(s.monthKey)
}

// Prev moves the displayed month one back.
func (s *RentSession) Prev() error { return s.shift(-1) }

// Next moves the displayed month one forward.
func (s *RentSession) Next() error { return s.shift(1) }

func (s *RentSession) shift(n int) error {
	key, err := month.Add(s.monthKey, n)
	if err != nil {
		return err
	}
	s.monthKey = key
	s.store.RecordFor(key)
	return nil
}

// SetRenter renames the occupant of a base tenant slot.
func (s *RentSession) SetRenter(tenantID int, renter string) error {
	tenants := s.store.Rent().BaseTenants
	for i := range tenants {
		if tenants[i].ID == tenantID {
			tenants[i].Renter = renter
			return nil
		}
	}
	return fmt.Errorf("unknown tenant %d", tenantID)
}

// SetTenantMonth replaces a tenant's figures for the displayed month.
func (s *RentSession) SetTenantMonth(tm model.TenantMonth) error {
	record := s.Record()
	for i := range record.Tenants {
		if record.Tenants[i].ID == tm.ID {
			record.Tenants[i] = tm
			return nil
		}
	}
	return fmt.Errorf("tenant %d has no entry for %s", tm.ID, s.monthKey)
}

// Save recomputes the total monthly rent over determined values,
// stores it, and pushes the base tenants plus the displayed month's
// record. On failure the in-memory edits stay as they are and the
// session remains open.
func (s *RentSession) Save(ctx context.Context) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.state = StateSaving

	record := s.Record()
	total := ledger.RentTotal(*record)
	s.store.Rent().TotalMonthlyRent = total

	err := s.saver.SaveRent(ctx, s.monthKey, api.SaveRentRequest{
		BaseTenants:      s.store.Rent().BaseTenants,
		CurrentRecord:    *record,
		TotalMonthlyRent: total,
	})
	if err != nil {
		s.state = StateEditing
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	s.state = StateViewing
	return nil
}
