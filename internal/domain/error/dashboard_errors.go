// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidMonth is returned when a month value is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidMonthCount is returned when a rolling window length is below one.
	ErrInvalidMonthCount = errors.New("month count must be at least 1")

	// ErrMissingStartDate is returned when the window start date is missing.
	ErrMissingStartDate = errors.New("start date is required")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth      DashboardErrorCode = "DSH-010001"
	ErrCodeInvalidMonthCount DashboardErrorCode = "DSH-010002"
	ErrCodeMissingStartDate  DashboardErrorCode = "DSH-010003"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
