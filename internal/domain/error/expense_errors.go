// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrNotARootExpense is returned when an installment child is targeted by an
	// operation that only applies to root expenses.
	ErrNotARootExpense = errors.New("expense is not a root expense")

	// ErrInvalidInstallments is returned when the installment count is below one.
	ErrInvalidInstallments = errors.New("installments must be at least 1")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010001"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-010002"
	ErrCodeNotARootExpense      ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidInstallments  ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010005"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010006"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
