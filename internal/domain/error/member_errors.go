// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Member domain errors.
var (
	// ErrMemberNotFound is returned when a member does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberNameRequired is returned when the member name is empty.
	ErrMemberNameRequired = errors.New("member name is required")

	// ErrInvalidMembershipWindow is returned when the end date precedes the start date.
	ErrInvalidMembershipWindow = errors.New("membership end date must not precede start date")

	// ErrPlanNotFound is returned when the referenced membership plan does not exist.
	ErrPlanNotFound = errors.New("membership plan not found")
)

// MemberErrorCode defines error codes for member errors.
// Format: MBR-XXYYYY where XX is category and YYYY is specific error.
type MemberErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMemberNameRequired       MemberErrorCode = "MBR-010001"
	ErrCodeInvalidMembershipWindow  MemberErrorCode = "MBR-010002"

	// Lookup errors (02XXXX)
	ErrCodeMemberNotFound MemberErrorCode = "MBR-020001"
	ErrCodePlanNotFound   MemberErrorCode = "MBR-020002"
)

// MemberError represents a member error with code and message.
type MemberError struct {
	Code    MemberErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MemberError) Unwrap() error {
	return e.Err
}

// NewMemberError creates a new MemberError with the given code and message.
func NewMemberError(code MemberErrorCode, message string, err error) *MemberError {
	return &MemberError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
