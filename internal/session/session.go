// Package session maintains the authentication state machine and its
// persistence. The session is rehydrated synchronously at construction so
// callers see the correct authentication state from the first read, without
// a loading flash.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/drake/reel/internal/domain"
	"github.com/drake/reel/internal/store"
)

// State is an immutable snapshot of the session slice.
type State struct {
	User            *domain.User
	Token           string
	IsAuthenticated bool
	Status          domain.Status
	Err             string
}

// Store owns the session state. Methods are safe for concurrent use; the
// async operations are expected to run on background goroutines (Bubble Tea
// commands) while the UI reads snapshots.
type Store struct {
	mu    sync.RWMutex
	state State

	auth    domain.Authenticator
	storage domain.StateStore
	logger  *slog.Logger
}

// NewStore creates the session store and rehydrates any persisted session
// from durable storage.
func NewStore(auth domain.Authenticator, storage domain.StateStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		auth:    auth,
		storage: storage,
		logger:  logger,
	}
	s.rehydrate()
	return s
}

// rehydrate reconstructs the session from durable storage. A token without a
// readable user profile still authenticates; a corrupt profile entry is
// dropped by the store on read.
func (s *Store) rehydrate() {
	var token string
	if !s.storage.Read(store.BucketSession, store.KeySessionToken, &token) || token == "" {
		return
	}

	var user domain.User
	state := State{Token: token, IsAuthenticated: true}
	if s.storage.Read(store.BucketSession, store.KeySessionUser, &user) {
		state.User = &user
	}

	s.state = state
	s.logger.Debug("session rehydrated", "user", user.Username)
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a session token is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// Login authenticates with email and password. On success the user and
// token are stored and persisted. A failed attempt records the error but
// leaves any existing session untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.setLoading()

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.setError(loginErrorMessage(err))
		return err
	}

	s.commit(result)
	s.logger.Info("logged in", "user", result.User.Username)
	return nil
}

// Register creates an account and starts a session with it. The persistence
// contract matches Login.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	s.setLoading()

	result, err := s.auth.Register(ctx, username, email, password)
	if err != nil {
		s.setError("Registration failed")
		return err
	}

	s.commit(result)
	s.logger.Info("registered", "user", result.User.Username)
	return nil
}

// Logout clears the session and removes the persisted entries. It always
// succeeds.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = State{Status: domain.StatusSuccess}
	s.mu.Unlock()

	s.storage.Remove(store.BucketSession, store.KeySessionToken)
	s.storage.Remove(store.BucketSession, store.KeySessionUser)
	s.logger.Info("logged out")
}

// ClearError dismisses a surfaced error message without otherwise changing
// the session, used when the user starts correcting input.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

func (s *Store) setLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = domain.StatusLoading
	s.state.Err = ""
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = domain.StatusError
	s.state.Err = msg
}

// commit installs a successful auth result and persists it. No partial
// writes happen before the operation settles.
func (s *Store) commit(result *domain.AuthResult) {
	user := result.User

	s.mu.Lock()
	s.state = State{
		User:            &user,
		Token:           result.Token,
		IsAuthenticated: true,
		Status:          domain.StatusSuccess,
	}
	s.mu.Unlock()

	if err := s.storage.Write(store.BucketSession, store.KeySessionToken, result.Token); err != nil {
		s.logger.Warn("failed to persist session token", "error", err)
	}
	if err := s.storage.Write(store.BucketSession, store.KeySessionUser, user); err != nil {
		s.logger.Warn("failed to persist session user", "error", err)
	}
}

func loginErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return "Invalid email or password"
	}
	return "Login failed"
}
