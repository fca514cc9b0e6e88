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

// ListPaymentsInput represents the input for listing payments. Zero From/To
// default to the last 30 days ending now.
type ListPaymentsInput struct {
	BranchID uuid.UUID
	From     time.Time
	To       time.Time
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Payments []*entity.Payment
}

// ListPaymentsUseCase handles payment listing logic.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute lists payments for the branch within the window, newest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	from, to := normalizeWindow(input.From, input.To)

	payments, err := uc.paymentRepo.ListPaymentsByBranch(ctx, input.BranchID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{Payments: payments}, nil
}

// normalizeWindow fills zero bounds with a default 30-day range.
func normalizeWindow(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	return from, to
}
