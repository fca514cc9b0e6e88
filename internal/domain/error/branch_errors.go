// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Branch domain errors.
var (
	// ErrBranchNotFound is returned when a branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchNameRequired is returned when the branch name is empty.
	ErrBranchNameRequired = errors.New("branch name is required")

	// ErrBranchNameExists is returned when a branch with the same name already exists for the gym.
	ErrBranchNameExists = errors.New("branch name already exists")

	// ErrInvalidBranchStatus is returned when the status is not active or inactive.
	ErrInvalidBranchStatus = errors.New("branch status must be 'active' or 'inactive'")

	// ErrBranchNotInGym is returned when the branch belongs to a different gym.
	ErrBranchNotInGym = errors.New("branch does not belong to this gym")
)

// BranchErrorCode defines error codes for branch errors.
// Format: BRN-XXYYYY where XX is category and YYYY is specific error.
type BranchErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBranchNameRequired  BranchErrorCode = "BRN-010001"
	ErrCodeBranchNameExists    BranchErrorCode = "BRN-010002"
	ErrCodeInvalidBranchStatus BranchErrorCode = "BRN-010003"

	// Lookup errors (02XXXX)
	ErrCodeBranchNotFound BranchErrorCode = "BRN-020001"
	ErrCodeBranchNotInGym BranchErrorCode = "BRN-020002"
)

// BranchError represents a branch error with code and message.
type BranchError struct {
	Code    BranchErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BranchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BranchError) Unwrap() error {
	return e.Err
}

// NewBranchError creates a new BranchError with the given code and message.
func NewBranchError(code BranchErrorCode, message string, err error) *BranchError {
	return &BranchError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
