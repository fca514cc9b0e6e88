// Package error defines domain-specific errors for the Gym Manager application.
package error

import "errors"

// Payment and expense domain errors.
var (
	// ErrNonPositiveAmount is returned when a recorded amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrInvalidPaymentMethod is returned when the payment method is not recognized.
	ErrInvalidPaymentMethod = errors.New("payment method must be 'cash', 'card' or 'transfer'")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNonPositiveAmount    PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentMethod PaymentErrorCode = "PAY-010002"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
