package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/reel/internal/domain"
)

func TestLoginDemoCredentials(t *testing.T) {
	a := NewMock("test-secret", nil)

	result, err := a.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, "1", result.User.ID)
	assert.Equal(t, DemoEmail, result.User.Email)
	assert.NotEmpty(t, result.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := NewMock("test-secret", nil)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", DemoEmail, "nope"},
		{"wrong email", "other@example.com", DemoPassword},
		{"both wrong", "other@example.com", "nope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.Login(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestRegisterAlwaysSucceeds(t *testing.T) {
	a := NewMock("test-secret", nil)

	result, err := a.Register(context.Background(), "newuser", "new@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "newuser", result.User.Username)
	assert.NotEmpty(t, result.User.ID)
	assert.NotEqual(t, "1", result.User.ID)
}

func TestMintedTokenValidates(t *testing.T) {
	a := NewMock("test-secret", nil)

	result, err := a.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)

	token, err := a.ValidateToken(result.Token)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "1", claims["sub"])
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	a := NewMock("secret-a", nil)
	b := NewMock("secret-b", nil)

	result, err := a.Login(context.Background(), DemoEmail, DemoPassword)
	require.NoError(t, err)

	_, err = b.ValidateToken(result.Token)
	assert.Error(t, err)
}
