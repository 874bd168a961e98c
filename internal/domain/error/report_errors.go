// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Report email errors.
var (
	// ErrReportJobNotFound is returned when a report job is not found in the queue.
	ErrReportJobNotFound = errors.New("report job not found")

	// ErrPermanentReportFailure marks a delivery error that must not be retried.
	ErrPermanentReportFailure = errors.New("permanent report delivery failure")

	// ErrTemporaryReportFailure marks a delivery error that may be retried.
	ErrTemporaryReportFailure = errors.New("temporary report delivery failure")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	ErrCodeReportJobNotFound      ReportErrorCode = "RPT-010001"
	ErrCodePermanentReportFailure ReportErrorCode = "RPT-020001"
	ErrCodeTemporaryReportFailure ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
