// Package reconcile refreshes and reads balances for the resolved
// checking/savings roles. The flow per role is "poke then read": a
// best-effort live refresh followed by an unconditional cached read, so
// a slow or rate-limited provider still leaves the user with a recent,
// at worst one-refresh-stale number.
package reconcile

import (
	"context"
	"log"
	"sync"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// BalanceAPI is the slice of the aggregation client this package needs.
type BalanceAPI interface {
	GetLiveBalances(ctx context.Context, accountID string) (model.Balance, error)
	GetCachedBalances(ctx context.Context, accountID string) (model.Balance, error)
}

// RoleBalance is the reconciled balance for one role. Unavailable is
// set when even the cached read failed; the balance is then meaningless
// and callers render a sentinel instead.
type RoleBalance struct {
	AccountID   string
	Balance     model.Balance
	Unavailable bool
}

// Reconciler fetches balances for each mapped role.
type Reconciler struct {
	api BalanceAPI
}

// New creates a Reconciler.
func New(api BalanceAPI) *Reconciler {
	return &Reconciler{api: api}
}

// Reconcile processes every role with a mapped account ID and returns
// one RoleBalance per processed role. Roles are handled independently
// and concurrently; one role's failure never affects the other. No
// error is returned: refresh failures are logged and swallowed, cache
// failures degrade to an Unavailable sentinel.
func (r *Reconciler) Reconcile(ctx context.Context, mapping model.RoleMapping) map[model.Role]RoleBalance {
	roles := []model.Role{model.RoleChecking, model.RoleSavings}

	results := make(map[model.Role]RoleBalance, len(roles))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, role := range roles {
		id := mapping.ID(role)
		if id == "" {
			continue
		}
		wg.Add(1)
		go func(role model.Role, id string) {
			defer wg.Done()
			rb := r.reconcileRole(ctx, role, id)
			mu.Lock()
			results[role] = rb
			mu.Unlock()
		}(role, id)
	}
	wg.Wait()

	return results
}

// reconcileRole runs the two-step flow for one account. The cached read
// strictly follows the refresh attempt, whatever its outcome.
func (r *Reconciler) reconcileRole(ctx context.Context, role model.Role, id string) RoleBalance {
	if _, err := r.api.GetLiveBalances(ctx, id); err != nil {
		log.Printf("live balance refresh for %s failed: %v", role, err)
	}

	cached, err := r.api.GetCachedBalances(ctx, id)
	if err != nil {
		log.Printf("cached balance read for %s failed: %v", role, err)
		return RoleBalance{AccountID: id, Unavailable: true}
	}
	return RoleBalance{AccountID: id, Balance: cached}
}
