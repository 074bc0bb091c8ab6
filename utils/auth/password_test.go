package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.NoError(t, VerifyPassword(hash, "s3cretpass"))
	assert.ErrorIs(t, VerifyPassword(hash, "wrongpassword"), ErrPasswordMismatch)
}

func TestHashPasswordTooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestCheckConfirmation(t *testing.T) {
	assert.NoError(t, CheckConfirmation("s3cretpass", "s3cretpass"))
	assert.ErrorIs(t, CheckConfirmation("s3cretpass", "different1"), ErrConfirmationInvalid)
}
