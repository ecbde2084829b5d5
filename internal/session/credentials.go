package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

// credentialFile is the on-disk shape of a saved sign-in.
type credentialFile struct {
	Token    string       `json:"token"`
	Identity *domain.User `json:"identity,omitempty"`
	SavedAt  time.Time    `json:"saved_at"`
}

// CredentialStore persists the bearer token and cached identity to a JSON
// file under the data directory. It satisfies api.Credentials so the HTTP
// client can read the token and erase it on a 401.
type CredentialStore struct {
	mu       sync.RWMutex
	path     string
	token    string
	identity *domain.User
}

// NewCredentialStore loads any previously saved credential from dataDir.
// A missing or unreadable file yields an empty (anonymous) store, not an
// error; corruption is logged and treated as signed out.
func NewCredentialStore(dataDir string) (*CredentialStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".poultry360")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &CredentialStore{path: filepath.Join(dataDir, "credentials.json")}
	s.load()
	return s, nil
}

func (s *CredentialStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logging.SessionWarn("failed to read credential file: %v", err)
		}
		return
	}

	var f credentialFile
	if err := json.Unmarshal(data, &f); err != nil {
		logging.SessionWarn("credential file corrupt, treating as signed out: %v", err)
		return
	}
	s.token = f.Token
	s.identity = f.Identity
}

// Token returns the saved bearer token, or "" when anonymous.
func (s *CredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Identity returns the cached identity saved at sign-in, if any.
func (s *CredentialStore) Identity() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Save writes the token and identity to disk with owner-only permissions.
func (s *CredentialStore) Save(token string, identity *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(credentialFile{
		Token:    token,
		Identity: identity,
		SavedAt:  time.Now(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}

	s.token = token
	s.identity = identity
	logging.Session("credential saved for user %s", userLabel(identity))
	return nil
}

// Clear erases the saved credential from memory and disk. Called both by
// an explicit sign-out and by the HTTP client when the server rejects the
// token.
func (s *CredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.identity = nil

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}
	logging.Session("credential cleared")
	return nil
}

func userLabel(u *domain.User) string {
	if u == nil {
		return "(unknown)"
	}
	return u.Username
}
