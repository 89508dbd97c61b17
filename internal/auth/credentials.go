package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/markline-io/markline/internal/constants"
)

// Credentials is the entire durable footprint of a session: the bearer
// token, the display name of the account, and the account's unique id.
type Credentials struct {
	Token    string `yaml:"token,omitempty"`
	User     string `yaml:"user,omitempty"`
	UniqueID string `yaml:"uniqueId,omitempty"`
}

// CredentialStore persists Credentials to a file. Every Save and Clear
// writes through immediately; there is no batching. Construct one per
// process and inject it where needed rather than sharing a package-level
// instance.
type CredentialStore struct {
	mu    sync.Mutex
	path  string
	creds Credentials
}

// NewCredentialStore loads the credentials at path, if any. A missing file
// yields an empty, unauthenticated store.
func NewCredentialStore(path string) (*CredentialStore, error) {
	store := &CredentialStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}

		return nil, fmt.Errorf("reading credentials file: %w", err)
	}

	err = yaml.Unmarshal(data, &store.creds)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials file: %w", err)
	}

	return store, nil
}

// Save replaces the stored credentials and persists them immediately.
func (s *CredentialStore) Save(token, user, uniqueID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{
		Token:    token,
		User:     user,
		UniqueID: uniqueID,
	}

	return s.persist()
}

// Clear removes all credentials and persists the empty state immediately.
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = Credentials{}

	return s.persist()
}

// IsAuthenticated reports whether a token is present. The token is not
// inspected or validated.
func (s *CredentialStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds.Token != ""
}

// Token returns the stored bearer token, which may be empty.
func (s *CredentialStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds.Token
}

// User returns the stored account name.
func (s *CredentialStore) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds.User
}

// UniqueID returns the stored account unique id.
func (s *CredentialStore) UniqueID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds.UniqueID
}

// persist writes the current credentials to disk. Callers must hold the lock.
func (s *CredentialStore) persist() error {
	dir := filepath.Dir(s.path)

	err := os.MkdirAll(dir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := yaml.Marshal(&s.creds)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	err = os.WriteFile(s.path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}

	return nil
}
