package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/store"
)

// MockAuthenticator mocks the domain.Authenticator interface
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthenticator) Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error) {
	args := m.Called(username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func memStore(t *testing.T) *store.StateStore {
	t.Helper()
	s, err := store.New("")
	require.NoError(t, err)
	return s
}

func demoResult() *domain.AuthResult {
	return &domain.AuthResult{
		User:  domain.User{ID: "1", Username: "user", Email: "user@example.com"},
		Token: "tok-abc",
	}
}

func TestLoginSuccess(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Login", "user@example.com", "password").Return(demoResult(), nil)

	storage := memStore(t)
	s := NewStore(auth, storage, nil)

	err := s.Login(context.Background(), "user@example.com", "password")
	require.NoError(t, err)

	state := s.Snapshot()
	assert.Equal(t, domain.StatusSuccess, state.Status)
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "tok-abc", state.Token)
	require.NotNil(t, state.User)
	assert.Equal(t, "user", state.User.Username)

	// Token and profile are written through to durable storage.
	var token string
	require.True(t, storage.Read(store.BucketSession, store.KeySessionToken, &token))
	assert.Equal(t, "tok-abc", token)
}

func TestLoginFailurePreservesExistingSession(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Login", "user@example.com", "password").Return(demoResult(), nil)
	auth.On("Login", "user@example.com", "wrong").Return(nil, domain.ErrInvalidCredentials)

	s := NewStore(auth, memStore(t), nil)
	require.NoError(t, s.Login(context.Background(), "user@example.com", "password"))

	err := s.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	state := s.Snapshot()
	assert.Equal(t, domain.StatusError, state.Status)
	assert.Equal(t, "Invalid email or password", state.Err)
	// A failed login does not log out the existing session.
	assert.True(t, state.IsAuthenticated)
	assert.Equal(t, "tok-abc", state.Token)
}

func TestRegisterPersistsSession(t *testing.T) {
	result := &domain.AuthResult{
		User:  domain.User{ID: "2", Username: "newuser", Email: "new@example.com"},
		Token: "tok-new",
	}
	auth := new(MockAuthenticator)
	auth.On("Register", "newuser", "new@example.com", "secret").Return(result, nil)

	storage := memStore(t)
	s := NewStore(auth, storage, nil)

	require.NoError(t, s.Register(context.Background(), "newuser", "new@example.com", "secret"))
	assert.True(t, s.IsAuthenticated())

	var user domain.User
	require.True(t, storage.Read(store.BucketSession, store.KeySessionUser, &user))
	assert.Equal(t, "newuser", user.Username)
}

func TestLogoutClearsStateAndStorage(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Login", mock.Anything, mock.Anything).Return(demoResult(), nil)

	storage := memStore(t)
	s := NewStore(auth, storage, nil)
	require.NoError(t, s.Login(context.Background(), "user@example.com", "password"))

	s.Logout()

	state := s.Snapshot()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)

	var token string
	assert.False(t, storage.Read(store.BucketSession, store.KeySessionToken, &token))
}

func TestRehydrationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storage, err := store.New(dir)
	require.NoError(t, err)

	auth := new(MockAuthenticator)
	auth.On("Login", "user@example.com", "password").Return(demoResult(), nil)

	s := NewStore(auth, storage, nil)
	require.NoError(t, s.Login(context.Background(), "user@example.com", "password"))
	require.NoError(t, storage.Close())

	// A fresh store against the same durable storage reports the session
	// without any new login call.
	storage, err = store.New(dir)
	require.NoError(t, err)
	defer storage.Close()

	fresh := NewStore(new(MockAuthenticator), storage, nil)
	state := fresh.Snapshot()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "1", state.User.ID)
}

func TestRehydrationWithCorruptUserProfile(t *testing.T) {
	storage := memStore(t)
	require.NoError(t, storage.Write(store.BucketSession, store.KeySessionToken, "tok"))
	require.NoError(t, storage.Write(store.BucketSession, store.KeySessionUser, 42)) // wrong shape

	s := NewStore(new(MockAuthenticator), storage, nil)
	state := s.Snapshot()

	// Token alone still authenticates; the corrupt profile is dropped.
	assert.True(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.False(t, storage.Has(store.BucketSession, store.KeySessionUser))
}

func TestClearError(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	s := NewStore(auth, memStore(t), nil)
	_ = s.Login(context.Background(), "user@example.com", "nope")
	require.NotEmpty(t, s.Snapshot().Err)

	s.ClearError()

	state := s.Snapshot()
	assert.Empty(t, state.Err)
	// Status is untouched; only the surfaced message is dismissed.
	assert.Equal(t, domain.StatusError, state.Status)
}
