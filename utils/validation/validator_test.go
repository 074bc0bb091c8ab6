package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(signupForm{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(signupForm{
		Username: "al",
		Email:    "not-an-email",
	})
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	assert.Equal(t, "Username must be at least 3 characters", formatted["username"])
	assert.Equal(t, "Invalid email format", formatted["email"])
	assert.Equal(t, "Password is required", formatted["password"])
}

func TestMessage(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(signupForm{
		Username: "alice",
		Email:    "not-an-email",
		Password: "s3cretpass",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", Message(err))
}
