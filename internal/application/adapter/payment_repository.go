// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// PaymentRepository defines the interface for payment and expense persistence.
type PaymentRepository interface {
	// CreatePayment records an income row.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// CreateExpense records an expense row.
	CreateExpense(ctx context.Context, expense *entity.Expense) error

	// ListPaymentsByBranch lists payments for a branch within a window,
	// newest first.
	ListPaymentsByBranch(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Payment, error)

	// ListExpensesByBranch lists expenses for a branch within a window,
	// newest first.
	ListExpensesByBranch(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Expense, error)
}
