// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when registering with an email that is already in use.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned when a password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrMissingToken is returned when no authentication token is provided.
	ErrMissingToken = errors.New("authentication token is required")

	// ErrInvalidToken is returned when the authentication token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound           AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyRegistered AuthErrorCode = "AUT-010002"
	ErrCodeInvalidCredentials     AuthErrorCode = "AUT-010003"
	ErrCodeWeakPassword           AuthErrorCode = "AUT-010004"
	ErrCodeMissingAuthFields      AuthErrorCode = "AUT-010005"
	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-020002"
	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUT-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
