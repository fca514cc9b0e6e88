// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrMissingGymID is returned when no gym identifier can be resolved.
	ErrMissingGymID = errors.New("gym id is required")

	// ErrMissingBranchID is returned when no branch identifier can be resolved.
	ErrMissingBranchID = errors.New("branch id is required")

	// ErrBranchListUnavailable is returned when the branch listing query fails.
	// Branch existence is essential to the aggregation; this error is fatal.
	ErrBranchListUnavailable = errors.New("branch listing unavailable")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingGymID    DashboardErrorCode = "DSH-010001"
	ErrCodeMissingBranchID DashboardErrorCode = "DSH-010002"

	// Internal errors (99XXXX)
	ErrCodeDashboardInternalError DashboardErrorCode = "DSH-990001"
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
