// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment records an income row.
func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateExpense records an expense row.
func (r *paymentRepository) CreateExpense(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListPaymentsByBranch lists payments for a branch within a window, newest first.
func (r *paymentRepository) ListPaymentsByBranch(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ? AND paid_at >= ? AND paid_at <= ?", branchID, from, to).
		Order("paid_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// ListExpensesByBranch lists expenses for a branch within a window, newest first.
func (r *paymentRepository) ListExpensesByBranch(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ? AND spent_at >= ? AND spent_at <= ?", branchID, from, to).
		Order("spent_at DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
