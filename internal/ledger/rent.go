package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// RecordFor returns the rent record for a "YYYY-MM" key, creating one
// on first view of that month: the most recent existing record's tenant
// list is cloned with due/received reset to zero while the rent amounts
// carry over. Records stay unique per month and sorted by month key.
func (s *Store) RecordFor(monthKey string) *model.MonthlyRecord {
	for i := range s.rent.MonthlyRecords {
		if s.rent.MonthlyRecords[i].Month == monthKey {
			return &s.rent.MonthlyRecords[i]
		}
	}

	record := model.MonthlyRecord{Month: monthKey}
	if n := len(s.rent.MonthlyRecords); n > 0 {
		latest := s.rent.MonthlyRecords[n-1]
		record.Tenants = make([]model.TenantMonth, len(latest.Tenants))
		for i, tm := range latest.Tenants {
			record.Tenants[i] = model.TenantMonth{ID: tm.ID, MonthlyRent: tm.MonthlyRent}
		}
	}

	s.rent.MonthlyRecords = append(s.rent.MonthlyRecords, record)
	sort.Slice(s.rent.MonthlyRecords, func(i, j int) bool {
		return s.rent.MonthlyRecords[i].Month < s.rent.MonthlyRecords[j].Month
	})
	return s.RecordFor(monthKey)
}

// RentTotal sums the determined monthly rents of a record; TBD entries
// contribute zero.
func RentTotal(record model.MonthlyRecord) decimal.Decimal {
	total := decimal.Zero
	for _, tm := range record.Tenants {
		total = total.Add(tm.MonthlyRent.Amount())
	}
	return total
}

// TenantsOnFloor returns the base tenants assigned to a floor, in chart
// order.
func (s *Store) TenantsOnFloor(floor string) []model.Tenant {
	var out []model.Tenant
	for _, t := range s.rent.BaseTenants {
		if t.Floor == floor {
			out = append(out, t)
		}
	}
	return out
}

// TenantMonthFor returns the month figures for a tenant ID within a
// record, defaulting to a TBD entry when the tenant has none yet.
func TenantMonthFor(record model.MonthlyRecord, tenantID int) model.TenantMonth {
	for _, tm := range record.Tenants {
		if tm.ID == tenantID {
			return tm
		}
	}
	return model.TenantMonth{ID: tenantID, MonthlyRent: model.TBD}
}
