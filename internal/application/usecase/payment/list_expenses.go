// Package payment contains payment and expense-related use cases.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses. Zero From/To
// default to the last 30 days ending now.
type ListExpensesInput struct {
	BranchID uuid.UUID
	From     time.Time
	To       time.Time
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(paymentRepo adapter.PaymentRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists expenses for the branch within the window, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	from, to := normalizeWindow(input.From, input.To)

	expenses, err := uc.paymentRepo.ListExpensesByBranch(ctx, input.BranchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
