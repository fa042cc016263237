// Package credstore persists the bank enrollment credential and the
// resolved role-to-account-id mapping across sessions.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

const (
	credentialFile  = "enrollment.json"
	roleMappingFile = "account-ids.json"
)

// Store is a small file-backed key-value store scoped to its own
// directory. Clear removes only files the store owns, never the whole
// persistence medium.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first
// write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Credential returns the stored enrollment credential. The second
// return is false when none has been stored.
func (s *Store) Credential() (model.Credential, bool, error) {
	var cred model.Credential
	ok, err := s.get(credentialFile, &cred)
	return cred, ok, err
}

// PutCredential stores the enrollment credential, replacing any
// previous one.
func (s *Store) PutCredential(cred model.Credential) error {
	return s.put(credentialFile, cred)
}

// RoleMapping returns the persisted role-to-account-id mapping.
func (s *Store) RoleMapping() (model.RoleMapping, bool, error) {
	var mapping model.RoleMapping
	ok, err := s.get(roleMappingFile, &mapping)
	return mapping, ok, err
}

// PutRoleMapping stores the role mapping, replacing any previous one.
func (s *Store) PutRoleMapping(mapping model.RoleMapping) error {
	return s.put(roleMappingFile, mapping)
}

// Clear removes every key this store owns. Unrelated files in the
// directory are left alone.
func (s *Store) Clear() error {
	for _, name := range []string{credentialFile, roleMappingFile} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", name, err)
		}
	}
	return nil
}

// Token returns the stored access token, or "" when no credential is
// stored. It satisfies the API client's token source; absence of a
// token is not an error here.
func (s *Store) Token() string {
	cred, ok, err := s.Credential()
	if err != nil || !ok {
		return ""
	}
	return cred.AccessToken
}

func (s *Store) get(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parsing %s: %w", name, err)
	}
	return true, nil
}

func (s *Store) put(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
