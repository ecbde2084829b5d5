package session

import (
	"context"
	"sync"

	"poultry360/internal/api"
	"poultry360/internal/domain"
	"poultry360/internal/logging"
)

// State is the lifecycle phase of the current session.
type State int

const (
	// StateAnonymous means no credential is held.
	StateAnonymous State = iota
	// StateLoading means a sign-in or verification is in flight.
	StateLoading
	// StateAuthenticated means a verified identity is held.
	StateAuthenticated
	// StateError means the last sign-in attempt failed. The previous
	// identity, if any, has been discarded.
	StateError
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// AuthAPI is the slice of the HTTP client the session manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, username, password, orgSlug string) (*domain.AuthResponse, error)
	VerifyToken(ctx context.Context) (*domain.VerifyResponse, error)
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, params domain.UserParams) (*domain.User, error)
}

// Snapshot is an immutable view of the session handed to listeners.
type Snapshot struct {
	State    State
	Identity *domain.User
	Err      error
}

// Manager owns the session state machine. All transitions run under the
// mutex; listeners are invoked after the lock is released, in registration
// order, with the snapshot taken at transition time.
type Manager struct {
	mu        sync.Mutex
	api       AuthAPI
	creds     *CredentialStore
	state     State
	identity  *domain.User
	err       error
	listeners []func(Snapshot)
}

// NewManager builds a manager in the anonymous state. Call Bootstrap to
// resume a persisted session.
func NewManager(authAPI AuthAPI, creds *CredentialStore) *Manager {
	return &Manager{api: authAPI, creds: creds, state: StateAnonymous}
}

// OnChange registers a listener called after every state transition.
func (m *Manager) OnChange(fn func(Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Identity: m.identity, Err: m.err}
}

// Authenticated reports whether a verified identity is held.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateAuthenticated
}

// Identity returns the current identity, or nil when not authenticated.
func (m *Manager) Identity() *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

func (m *Manager) transition(state State, identity *domain.User, err error) {
	m.mu.Lock()
	m.state = state
	m.identity = identity
	m.err = err
	snap := Snapshot{State: state, Identity: identity, Err: err}
	listeners := make([]func(Snapshot), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

// Bootstrap resumes a persisted session. With no saved token it settles in
// the anonymous state. With a token it verifies against the server; an
// invalid or expired token clears the credential and lands anonymous
// rather than in error, since the user never acted.
func (m *Manager) Bootstrap(ctx context.Context) Snapshot {
	token := m.creds.Token()
	if token == "" {
		m.transition(StateAnonymous, nil, nil)
		return m.Snapshot()
	}

	m.transition(StateLoading, nil, nil)
	resp, err := m.api.VerifyToken(ctx)
	if err != nil || resp == nil || !resp.Valid {
		logging.SessionWarn("saved token rejected, signing out: %v", err)
		_ = m.creds.Clear()
		m.transition(StateAnonymous, nil, nil)
		return m.Snapshot()
	}

	identity := resp.User
	if identity == nil {
		identity = m.creds.Identity()
	}
	logging.Session("session resumed for %s", userLabel(identity))
	m.transition(StateAuthenticated, identity, nil)
	return m.Snapshot()
}

// Login signs in, persists the credential via the HTTP client, and moves
// to the authenticated state. On failure any previous identity is dropped
// and the error is both recorded and returned.
func (m *Manager) Login(ctx context.Context, username, password, orgSlug string) error {
	m.transition(StateLoading, nil, nil)

	resp, err := m.api.Login(ctx, username, password, orgSlug)
	if err != nil {
		m.transition(StateError, nil, err)
		return err
	}

	logging.Session("signed in as %s", userLabel(resp.User))
	m.transition(StateAuthenticated, resp.User, nil)
	return nil
}

// Logout erases the credential and returns to the anonymous state. It
// never fails the sign-out itself; a file-removal error is reported but
// the in-memory session is gone regardless.
func (m *Manager) Logout() error {
	err := m.creds.Clear()
	m.transition(StateAnonymous, nil, nil)
	return err
}

// RefreshIdentity re-reads the profile from the server. A failure here
// means the session can no longer be trusted, so the credential is erased
// and the session ends.
func (m *Manager) RefreshIdentity(ctx context.Context) error {
	user, err := m.api.GetProfile(ctx)
	if err != nil {
		logging.SessionWarn("identity refresh failed, ending session: %v", err)
		_ = m.creds.Clear()
		m.transition(StateAnonymous, nil, nil)
		return err
	}

	m.transition(StateAuthenticated, user, nil)
	return nil
}

// UpdateProfile submits profile edits and, on success, re-persists the
// credential with the updated identity so the next start shows it.
func (m *Manager) UpdateProfile(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	user, err := m.api.UpdateProfile(ctx, params)
	if err != nil {
		return nil, err
	}

	if token := m.creds.Token(); token != "" {
		if err := m.creds.Save(token, user); err != nil {
			logging.SessionWarn("failed to persist updated identity: %v", err)
		}
	}
	m.transition(StateAuthenticated, user, nil)
	return user, nil
}

// HandleUnauthorized is wired as the HTTP client's OnUnauthorized hook.
// The client has already erased the credential; this drops the in-memory
// session so listeners can route back to sign-in.
func (m *Manager) HandleUnauthorized() {
	logging.SessionWarn("server rejected credential, session ended")
	m.transition(StateAnonymous, nil, nil)
}

var _ api.Credentials = (*CredentialStore)(nil)
