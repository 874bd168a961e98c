// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryTitleExists is returned when attempting to create or rename a
	// category to a title that already exists for the user.
	ErrCategoryTitleExists = errors.New("category title already exists")

	// ErrNotAuthorizedToModifyCategory is returned when user is not authorized to modify a category.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")

	// ErrCategorySuggestionUnavailable is returned when the suggestion service
	// is not configured.
	ErrCategorySuggestionUnavailable = errors.New("category suggestion service unavailable")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryTitleExists   CategoryErrorCode = "CAT-010002"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010004"
	// Integration errors (02XXXX)
	ErrCodeSuggestionUnavailable CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
