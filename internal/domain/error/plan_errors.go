// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Membership plan domain errors.
var (
	// ErrPlanNameRequired is returned when the plan name is empty.
	ErrPlanNameRequired = errors.New("plan name is required")

	// ErrPlanNameExists is returned when a plan with the same name already exists for the gym.
	ErrPlanNameExists = errors.New("plan name already exists")

	// ErrInvalidPlanDuration is returned when the duration is not positive.
	ErrInvalidPlanDuration = errors.New("plan duration must be positive")

	// ErrNegativePlanPrice is returned when the price is negative.
	ErrNegativePlanPrice = errors.New("plan price must not be negative")
)

// PlanErrorCode defines error codes for membership plan errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePlanNameRequired    PlanErrorCode = "PLN-010001"
	ErrCodePlanNameExists      PlanErrorCode = "PLN-010002"
	ErrCodeInvalidPlanDuration PlanErrorCode = "PLN-010003"
	ErrCodeNegativePlanPrice   PlanErrorCode = "PLN-010004"

	// Lookup errors (02XXXX)
	ErrCodePlanMissing PlanErrorCode = "PLN-020001"
)

// PlanError represents a membership plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
