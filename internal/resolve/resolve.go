// Package resolve maps a raw remote account list to the semantic
// checking/savings roles and merges new mappings with persisted ones.
package resolve

import (
	"errors"
	"strings"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// ErrNoAccountsResolved means neither role matched any account.
var ErrNoAccountsResolved = errors.New("could not resolve any checking or savings account")

// Resolve picks the checking and savings accounts out of a raw account
// list. For each role, an exact type/subtype match wins; otherwise the
// first account whose display name contains the role name
// (case-insensitive) is taken. Resolution fails only when both roles
// come up empty.
func Resolve(accounts []model.Account) (model.RoleMapping, error) {
	mapping := model.RoleMapping{
		CheckingID: resolveRole(accounts, model.RoleChecking),
		SavingsID:  resolveRole(accounts, model.RoleSavings),
	}
	if mapping.Empty() {
		return model.RoleMapping{}, ErrNoAccountsResolved
	}
	return mapping, nil
}

func resolveRole(accounts []model.Account, role model.Role) string {
	for _, a := range accounts {
		if a.Type == "depository" && a.Subtype == string(role) {
			return a.ID
		}
	}
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.Name), string(role)) {
			return a.ID
		}
	}
	return ""
}

// Merge combines a previously persisted mapping with a newly resolved
// one. A new non-empty ID replaces the old one; an empty new ID keeps
// the old value, so a known account is never regressed to unresolved.
func Merge(old, new model.RoleMapping) model.RoleMapping {
	merged := old
	if new.CheckingID != "" {
		merged.CheckingID = new.CheckingID
	}
	if new.SavingsID != "" {
		merged.SavingsID = new.SavingsID
	}
	return merged
}
