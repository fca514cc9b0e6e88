// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Attendance domain errors.
var (
	// ErrAlreadyCheckedIn is returned when a member already checked in today.
	ErrAlreadyCheckedIn = errors.New("member already checked in today")

	// ErrMembershipExpired is returned when an expired member attempts to check in.
	ErrMembershipExpired = errors.New("membership has expired")
)

// AttendanceErrorCode defines error codes for attendance errors.
// Format: ATT-XXYYYY where XX is category and YYYY is specific error.
type AttendanceErrorCode string

const (
	// Check-in errors (01XXXX)
	ErrCodeAlreadyCheckedIn  AttendanceErrorCode = "ATT-010001"
	ErrCodeMembershipExpired AttendanceErrorCode = "ATT-010002"
)

// AttendanceError represents an attendance error with code and message.
type AttendanceError struct {
	Code    AttendanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AttendanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AttendanceError) Unwrap() error {
	return e.Err
}

// NewAttendanceError creates a new AttendanceError with the given code and message.
func NewAttendanceError(code AttendanceErrorCode, message string, err error) *AttendanceError {
	return &AttendanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
