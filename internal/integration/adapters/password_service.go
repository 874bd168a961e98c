// Package adapters implements the application adapter interfaces using
// external libraries and services.
package adapters

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

const (
	// hashCost trades hashing speed for brute-force resistance.
	hashCost = 12

	minPasswordLength = 8
	// maxPasswordLength matches the bcrypt input limit.
	maxPasswordLength = 72
)

var (
	errPasswordTooShort = fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	errPasswordTooLong  = fmt.Errorf("password must be at most %d characters long", maxPasswordLength)
)

// passwordService implements adapter.PasswordService on top of bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword hashes a plain text password.
func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

// ValidatePasswordStrength validates if a password meets minimum requirements.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errPasswordTooShort
	case len(password) > maxPasswordLength:
		return errPasswordTooLong
	}
	return nil
}
