package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"poultry360/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeAuth scripts the four auth endpoints for manager tests.
type fakeAuth struct {
	loginResp   *domain.AuthResponse
	loginErr    error
	verifyResp  *domain.VerifyResponse
	verifyErr   error
	profileResp *domain.User
	profileErr  error
	updateResp  *domain.User
	updateErr   error
}

func (f *fakeAuth) Login(ctx context.Context, username, password, orgSlug string) (*domain.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) VerifyToken(ctx context.Context) (*domain.VerifyResponse, error) {
	return f.verifyResp, f.verifyErr
}

func (f *fakeAuth) GetProfile(ctx context.Context) (*domain.User, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, params domain.UserParams) (*domain.User, error) {
	return f.updateResp, f.updateErr
}

func newTestManager(t *testing.T, auth *fakeAuth) (*Manager, *CredentialStore) {
	t.Helper()
	creds, err := NewCredentialStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(auth, creds), creds
}

func TestManager_LoginSuccess(t *testing.T) {
	user := &domain.User{ID: 1, Username: "demo", Role: "admin"}
	m, _ := newTestManager(t, &fakeAuth{
		loginResp: &domain.AuthResponse{Token: "tok", User: user},
	})

	var states []State
	m.OnChange(func(s Snapshot) { states = append(states, s.State) })

	require.NoError(t, m.Login(context.Background(), "demo", "pw", ""))

	assert.Equal(t, []State{StateLoading, StateAuthenticated}, states)
	assert.True(t, m.Authenticated())
	assert.Equal(t, "demo", m.Identity().Username)
	assert.NoError(t, m.Snapshot().Err)
}

func TestManager_LoginFailureRecordsError(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	m, _ := newTestManager(t, &fakeAuth{loginErr: wantErr})

	err := m.Login(context.Background(), "demo", "wrong", "")
	require.ErrorIs(t, err, wantErr)

	snap := m.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Nil(t, snap.Identity, "failed attempt drops any previous identity")
	assert.ErrorIs(t, snap.Err, wantErr)
}

func TestManager_BootstrapWithoutToken(t *testing.T) {
	m, _ := newTestManager(t, &fakeAuth{})

	snap := m.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, snap.State)
}

func TestManager_BootstrapResumesValidSession(t *testing.T) {
	user := &domain.User{ID: 4, Username: "saved"}
	auth := &fakeAuth{verifyResp: &domain.VerifyResponse{Valid: true, User: user}}
	m, creds := newTestManager(t, auth)
	require.NoError(t, creds.Save("tok", user))

	snap := m.Bootstrap(context.Background())
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, "saved", snap.Identity.Username)
}

func TestManager_BootstrapRejectedTokenLandsAnonymous(t *testing.T) {
	auth := &fakeAuth{verifyErr: errors.New("401")}
	m, creds := newTestManager(t, auth)
	require.NoError(t, creds.Save("expired", nil))

	snap := m.Bootstrap(context.Background())
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Empty(t, creds.Token(), "rejected token must be erased")
}

func TestManager_Logout(t *testing.T) {
	user := &domain.User{ID: 1, Username: "demo"}
	m, creds := newTestManager(t, &fakeAuth{
		loginResp: &domain.AuthResponse{Token: "tok", User: user},
	})
	require.NoError(t, m.Login(context.Background(), "demo", "pw", ""))
	require.NoError(t, creds.Save("tok", user))

	require.NoError(t, m.Logout())
	assert.Equal(t, StateAnonymous, m.Snapshot().State)
	assert.Empty(t, creds.Token())
}

func TestManager_RefreshIdentityFailureEndsSession(t *testing.T) {
	user := &domain.User{ID: 1, Username: "demo"}
	auth := &fakeAuth{
		loginResp:  &domain.AuthResponse{Token: "tok", User: user},
		profileErr: errors.New("token revoked"),
	}
	m, creds := newTestManager(t, auth)
	require.NoError(t, m.Login(context.Background(), "demo", "pw", ""))
	require.NoError(t, creds.Save("tok", user))

	err := m.RefreshIdentity(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateAnonymous, m.Snapshot().State)
	assert.Empty(t, creds.Token(), "untrusted session must not survive")
}

func TestManager_RefreshIdentitySuccess(t *testing.T) {
	updated := &domain.User{ID: 1, Username: "demo", FirstName: "New"}
	auth := &fakeAuth{
		loginResp:   &domain.AuthResponse{Token: "tok", User: &domain.User{ID: 1, Username: "demo"}},
		profileResp: updated,
	}
	m, _ := newTestManager(t, auth)
	require.NoError(t, m.Login(context.Background(), "demo", "pw", ""))

	require.NoError(t, m.RefreshIdentity(context.Background()))
	assert.Equal(t, "New", m.Identity().FirstName)
}

func TestManager_UpdateProfilePersistsIdentity(t *testing.T) {
	updated := &domain.User{ID: 1, Username: "demo", Email: "new@example.com"}
	auth := &fakeAuth{updateResp: updated}
	m, creds := newTestManager(t, auth)
	require.NoError(t, creds.Save("tok", &domain.User{ID: 1, Username: "demo"}))

	user, err := m.UpdateProfile(context.Background(), domain.UserParams{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "new@example.com", creds.Identity().Email)
}

func TestManager_HandleUnauthorized(t *testing.T) {
	user := &domain.User{ID: 1, Username: "demo"}
	m, _ := newTestManager(t, &fakeAuth{
		loginResp: &domain.AuthResponse{Token: "tok", User: user},
	})
	require.NoError(t, m.Login(context.Background(), "demo", "pw", ""))

	var last Snapshot
	m.OnChange(func(s Snapshot) { last = s })

	m.HandleUnauthorized()
	assert.Equal(t, StateAnonymous, last.State)
	assert.False(t, m.Authenticated())
}
