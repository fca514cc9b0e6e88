// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was collected.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Payment represents an income record for a branch. Amounts are always
// non-negative; income and expenses live in separate tables.
type Payment struct {
	ID        uuid.UUID
	GymID     uuid.UUID
	BranchID  uuid.UUID
	MemberID  *uuid.UUID
	Amount    decimal.Decimal
	Method    PaymentMethod
	Note      string
	PaidAt    time.Time
	CreatedAt time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(gymID, branchID uuid.UUID, memberID *uuid.UUID, amount decimal.Decimal, method PaymentMethod, note string, paidAt time.Time) *Payment {
	return &Payment{
		ID:        uuid.New(),
		GymID:     gymID,
		BranchID:  branchID,
		MemberID:  memberID,
		Amount:    amount,
		Method:    method,
		Note:      note,
		PaidAt:    paidAt,
		CreatedAt: time.Now().UTC(),
	}
}

// Expense represents an expense record for a branch.
type Expense struct {
	ID        uuid.UUID
	GymID     uuid.UUID
	BranchID  uuid.UUID
	Amount    decimal.Decimal
	Category  string
	Note      string
	SpentAt   time.Time
	CreatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(gymID, branchID uuid.UUID, amount decimal.Decimal, category, note string, spentAt time.Time) *Expense {
	return &Expense{
		ID:        uuid.New(),
		GymID:     gymID,
		BranchID:  branchID,
		Amount:    amount,
		Category:  category,
		Note:      note,
		SpentAt:   spentAt,
		CreatedAt: time.Now().UTC(),
	}
}
