package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginValidationOrder(t *testing.T) {
	f := NewAuthForm()

	assert.Equal(t, "Email is required", f.Validate())

	f.email.SetValue("not-an-email")
	assert.Equal(t, "Email is invalid", f.Validate())

	f.email.SetValue("user@example.com")
	assert.Equal(t, "Password is required", f.Validate())

	f.password.SetValue("password")
	assert.Empty(t, f.Validate())
}

func TestRegisterValidation(t *testing.T) {
	f := NewAuthForm()
	f.SetMode(ModeRegister)

	assert.Equal(t, "Username is required", f.Validate())

	f.username.SetValue("user")
	f.email.SetValue("user@example.com")
	f.password.SetValue("123")
	assert.Equal(t, "Password must be at least 6 characters", f.Validate())

	f.password.SetValue("123456")
	f.confirm.SetValue("654321")
	assert.Equal(t, "Passwords do not match", f.Validate())

	f.confirm.SetValue("123456")
	assert.Empty(t, f.Validate())
}

func TestModeSwitchResetsFocusAndError(t *testing.T) {
	f := NewAuthForm()
	f.SetError("Invalid email or password")
	f.NextField()

	f.SetMode(ModeRegister)

	assert.False(t, f.Busy())
	assert.Equal(t, 0, f.focus)

	// Register mode cycles through four fields.
	f.NextField()
	f.NextField()
	f.NextField()
	f.NextField()
	assert.Equal(t, 0, f.focus)
}
