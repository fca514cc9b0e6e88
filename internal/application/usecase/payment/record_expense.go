// Package payment contains payment and expense-related use cases.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// RecordExpenseInput represents the input for recording an expense row.
type RecordExpenseInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
	Amount   decimal.Decimal
	Category string
	Note     string
	SpentAt  time.Time
}

// RecordExpenseOutput represents the output of recording an expense.
type RecordExpenseOutput struct {
	Expense *entity.Expense
}

// RecordExpenseUseCase handles expense recording logic.
type RecordExpenseUseCase struct {
	paymentRepo adapter.PaymentRepository
	branchRepo  adapter.BranchRepository
}

// NewRecordExpenseUseCase creates a new RecordExpenseUseCase instance.
func NewRecordExpenseUseCase(paymentRepo adapter.PaymentRepository, branchRepo adapter.BranchRepository) *RecordExpenseUseCase {
	return &RecordExpenseUseCase{
		paymentRepo: paymentRepo,
		branchRepo:  branchRepo,
	}
}

// Execute records the expense.
func (uc *RecordExpenseUseCase) Execute(ctx context.Context, input RecordExpenseInput) (*RecordExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	branch, err := uc.branchRepo.FindByID(ctx, input.BranchID)
	if err != nil {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotFound,
			"branch not found",
			domainerror.ErrBranchNotFound,
		)
	}
	if branch.GymID != input.GymID {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotInGym,
			"branch does not belong to this gym",
			domainerror.ErrBranchNotInGym,
		)
	}

	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now().UTC()
	}

	expense := entity.NewExpense(input.GymID, input.BranchID, input.Amount, input.Category, input.Note, spentAt)

	if err := uc.paymentRepo.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	return &RecordExpenseOutput{Expense: expense}, nil
}
