// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for recording income.
// A zero paid_at defaults to the current time.
type RecordPaymentRequest struct {
	BranchID string     `json:"branch_id" binding:"required,uuid"`
	MemberID *string    `json:"member_id,omitempty"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Method   string     `json:"method" binding:"required"`
	Note     string     `json:"note" binding:"max=255"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`
}

// RecordExpenseRequest represents the request body for recording an expense.
type RecordExpenseRequest struct {
	BranchID string     `json:"branch_id" binding:"required,uuid"`
	Amount   float64    `json:"amount" binding:"required,gt=0"`
	Category string     `json:"category" binding:"max=100"`
	Note     string     `json:"note" binding:"max=255"`
	SpentAt  *time.Time `json:"spent_at,omitempty"`
}

// PaymentResponse represents an income record in API responses.
type PaymentResponse struct {
	ID       string    `json:"id"`
	BranchID string    `json:"branch_id"`
	MemberID *string   `json:"member_id,omitempty"`
	Amount   float64   `json:"amount"`
	Method   string    `json:"method"`
	Note     string    `json:"note"`
	PaidAt   time.Time `json:"paid_at"`
}

// ExpenseResponse represents an expense record in API responses.
type ExpenseResponse struct {
	ID       string    `json:"id"`
	BranchID string    `json:"branch_id"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Note     string    `json:"note"`
	SpentAt  time.Time `json:"spent_at"`
}

// PaymentListResponse represents the response for payment listing.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ExpenseListResponse represents the response for expense listing.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(payment *entity.Payment) PaymentResponse {
	amount, _ := payment.Amount.Float64()
	var memberID *string
	if payment.MemberID != nil {
		id := payment.MemberID.String()
		memberID = &id
	}
	return PaymentResponse{
		ID:       payment.ID.String(),
		BranchID: payment.BranchID.String(),
		MemberID: memberID,
		Amount:   amount,
		Method:   string(payment.Method),
		Note:     payment.Note,
		PaidAt:   payment.PaidAt,
	}
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	amount, _ := expense.Amount.Float64()
	return ExpenseResponse{
		ID:       expense.ID.String(),
		BranchID: expense.BranchID.String(),
		Amount:   amount,
		Category: expense.Category,
		Note:     expense.Note,
		SpentAt:  expense.SpentAt,
	}
}

// ToPaymentListResponse converts payment entities to a PaymentListResponse DTO.
func ToPaymentListResponse(payments []*entity.Payment) PaymentListResponse {
	out := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = ToPaymentResponse(p)
	}
	return PaymentListResponse{Payments: out}
}

// ToExpenseListResponse converts expense entities to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: out}
}
