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

// RecordPaymentInput represents the input for recording an income row.
type RecordPaymentInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
	MemberID *uuid.UUID
	Amount   decimal.Decimal
	Method   entity.PaymentMethod
	Note     string
	PaidAt   time.Time
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Payment *entity.Payment
}

// RecordPaymentUseCase handles income recording logic.
type RecordPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	branchRepo  adapter.BranchRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(paymentRepo adapter.PaymentRepository, branchRepo adapter.BranchRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		paymentRepo: paymentRepo,
		branchRepo:  branchRepo,
	}
}

// Execute records the payment.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be positive",
			domainerror.ErrNonPositiveAmount,
		)
	}

	if !isValidPaymentMethod(input.Method) {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be 'cash', 'card' or 'transfer'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if err := uc.verifyBranch(ctx, input.GymID, input.BranchID); err != nil {
		return nil, err
	}

	paidAt := input.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	payment := entity.NewPayment(input.GymID, input.BranchID, input.MemberID, input.Amount, input.Method, input.Note, paidAt)

	if err := uc.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &RecordPaymentOutput{Payment: payment}, nil
}

// verifyBranch ensures the target branch exists and belongs to the gym.
func (uc *RecordPaymentUseCase) verifyBranch(ctx context.Context, gymID, branchID uuid.UUID) error {
	branch, err := uc.branchRepo.FindByID(ctx, branchID)
	if err != nil {
		return domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotFound,
			"branch not found",
			domainerror.ErrBranchNotFound,
		)
	}
	if branch.GymID != gymID {
		return domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotInGym,
			"branch does not belong to this gym",
			domainerror.ErrBranchNotInGym,
		)
	}
	return nil
}

// isValidPaymentMethod validates the payment method.
func isValidPaymentMethod(method entity.PaymentMethod) bool {
	return method == entity.PaymentMethodCash ||
		method == entity.PaymentMethodCard ||
		method == entity.PaymentMethodTransfer
}
