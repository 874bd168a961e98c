// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Fixed expense domain errors.
var (
	// ErrFixedExpenseNotFound is returned when a fixed expense is not found in the system.
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")

	// ErrNotAuthorizedToModifyFixedExpense is returned when user is not authorized to modify a fixed expense.
	ErrNotAuthorizedToModifyFixedExpense = errors.New("not authorized to modify fixed expense")

	// ErrNotAParentFixedExpense is returned when a generated child row is
	// targeted by an operation that only applies to parent rows.
	ErrNotAParentFixedExpense = errors.New("fixed expense is not a parent")

	// ErrInvalidAmountOfMonths is returned when the month count is below one.
	ErrInvalidAmountOfMonths = errors.New("amount of months must be at least 1")

	// ErrVaryingCostsLengthMismatch is returned when the per-month amount list
	// does not cover every month of a varying-costs fixed expense.
	ErrVaryingCostsLengthMismatch = errors.New("per-month amount list must have one entry per month")
)

// FixedExpenseErrorCode defines error codes for fixed expense errors.
// Format: FXD-XXYYYY where XX is category and YYYY is specific error.
type FixedExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeFixedExpenseNotFound      FixedExpenseErrorCode = "FXD-010001"
	ErrCodeNotAuthorizedFixedExpense FixedExpenseErrorCode = "FXD-010002"
	ErrCodeNotAParentFixedExpense    FixedExpenseErrorCode = "FXD-010003"
	ErrCodeInvalidAmountOfMonths     FixedExpenseErrorCode = "FXD-010004"
	ErrCodeVaryingCostsMismatch      FixedExpenseErrorCode = "FXD-010005"
	ErrCodeMissingFixedExpenseFields FixedExpenseErrorCode = "FXD-010006"
)

// FixedExpenseError represents a fixed expense error with code and message.
type FixedExpenseError struct {
	Code    FixedExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedExpenseError) Unwrap() error {
	return e.Err
}

// NewFixedExpenseError creates a new FixedExpenseError with the given code and message.
func NewFixedExpenseError(code FixedExpenseErrorCode, message string, err error) *FixedExpenseError {
	return &FixedExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
