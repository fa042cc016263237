package connect

import (
	"context"
	"fmt"

	"github.com/brickbooks-dev/brickbooks/internal/model"
	"github.com/brickbooks-dev/brickbooks/internal/resolve"
)

// CredentialStore is the slice of the credential store the link flow
// needs.
type CredentialStore interface {
	PutCredential(model.Credential) error
	RoleMapping() (model.RoleMapping, bool, error)
	PutRoleMapping(model.RoleMapping) error
}

// Directory lists remote accounts.
type Directory interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
}

// Link runs the post-enrollment flow: store the new credential, resolve
// the remote account list into roles, merge with whatever mapping was
// persisted before (known IDs are never regressed), and persist the
// merged result.
func Link(ctx context.Context, connector Connector, params Params, store CredentialStore, dir Directory) (model.RoleMapping, error) {
	enrollment, err := connector.Connect(ctx, params)
	if err != nil {
		return model.RoleMapping{}, fmt.Errorf("bank link failed: %w", err)
	}
	if !enrollment.Credential.Valid() {
		return model.RoleMapping{}, fmt.Errorf("enrollment returned no access token")
	}
	if err := store.PutCredential(enrollment.Credential); err != nil {
		return model.RoleMapping{}, fmt.Errorf("storing credential: %w", err)
	}

	accounts, err := dir.ListAccounts(ctx)
	if err != nil {
		return model.RoleMapping{}, err
	}
	mapping, err := resolve.Resolve(accounts)
	if err != nil {
		return model.RoleMapping{}, err
	}

	old, _, err := store.RoleMapping()
	if err != nil {
		return model.RoleMapping{}, err
	}
	merged := resolve.Merge(old, mapping)
	if err := store.PutRoleMapping(merged); err != nil {
		return model.RoleMapping{}, fmt.Errorf("persisting account mapping: %w", err)
	}
	return merged, nil
}
