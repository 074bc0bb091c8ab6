package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch    = errors.New("password does not match")
	ErrConfirmationInvalid = errors.New("password confirmation does not match")
)

// MinPasswordLength mirrors the min=8 rule the register input is validated
// against, so a password that passes input validation also hashes.
const MinPasswordLength = 8

const bcryptCost = 12

// HashPassword generates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided password matches the hash
func VerifyPassword(hashedPassword, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}

// CheckConfirmation verifies that a password and its re-typed confirmation
// agree. Used by register and passwordChange.
func CheckConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrConfirmationInvalid
	}
	return nil
}
