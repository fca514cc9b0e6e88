// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Enquiry domain errors.
var (
	// ErrEnquiryNotFound is returned when an enquiry does not exist.
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrInvalidEnquiryStatus is returned when the status transition target is unknown.
	ErrInvalidEnquiryStatus = errors.New("enquiry status must be 'open', 'followed_up', 'converted' or 'closed'")

	// ErrEnquiryNameRequired is returned when the enquirer name is empty.
	ErrEnquiryNameRequired = errors.New("enquirer name is required")
)

// EnquiryErrorCode defines error codes for enquiry errors.
// Format: ENQ-XXYYYY where XX is category and YYYY is specific error.
type EnquiryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEnquiryNameRequired  EnquiryErrorCode = "ENQ-010001"
	ErrCodeInvalidEnquiryStatus EnquiryErrorCode = "ENQ-010002"

	// Lookup errors (02XXXX)
	ErrCodeEnquiryNotFound EnquiryErrorCode = "ENQ-020001"
)

// EnquiryError represents an enquiry error with code and message.
type EnquiryError struct {
	Code    EnquiryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EnquiryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EnquiryError) Unwrap() error {
	return e.Err
}

// NewEnquiryError creates a new EnquiryError with the given code and message.
func NewEnquiryError(code EnquiryErrorCode, message string, err error) *EnquiryError {
	return &EnquiryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
