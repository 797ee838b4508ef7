// Package auth provides the credential-check boundary. The shipped
// implementation is a mock that accepts a single demo credential pair and
// mints real signed tokens, so swapping in a networked credential service
// changes nothing above the domain.Authenticator interface.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/drake/reel/internal/domain"
)

// Demo credentials accepted by the mock login.
const (
	DemoEmail    = "user@example.com"
	DemoPassword = "password"
)

const tokenTTL = 7 * 24 * time.Hour

// MockAuthenticator implements domain.Authenticator without a backend.
// Login validates against the fixed demo pair; Register always succeeds.
type MockAuthenticator struct {
	secret []byte
	logger *slog.Logger
}

// NewMock creates a mock authenticator signing tokens with the given secret.
func NewMock(secret string, logger *slog.Logger) *MockAuthenticator {
	if logger == nil {
		logger = slog.Default()
	}
	return &MockAuthenticator{
		secret: []byte(secret),
		logger: logger,
	}
}

// Login authenticates the demo user. Any other credential pair fails with
// domain.ErrInvalidCredentials.
func (a *MockAuthenticator) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if email != DemoEmail || password != DemoPassword {
		a.logger.Debug("login rejected", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	user := domain.User{
		ID:       "1",
		Username: "user",
		Email:    DemoEmail,
	}

	token, err := a.mintToken(user)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

// Register creates an account unconditionally: identity creation is
// delegated to the external collaborator this mock stands in for.
func (a *MockAuthenticator) Register(ctx context.Context, username, email, password string) (*domain.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user := domain.User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
	}

	token, err := a.mintToken(user)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("registered user", "username", username)
	return &domain.AuthResult{User: user, Token: token}, nil
}

// mintToken signs an HS256 token carrying the user identity.
func (a *MockAuthenticator) mintToken(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"email":    user.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken parses and verifies a token minted by this authenticator.
func (a *MockAuthenticator) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidCredentials
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}
