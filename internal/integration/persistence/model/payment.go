// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GymID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MemberID  *uuid.UUID      `gorm:"type:uuid;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method    string          `gorm:"type:varchar(20);not null"`
	Note      string          `gorm:"type:text"`
	PaidAt    time.Time       `gorm:"type:timestamptz;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:        m.ID,
		GymID:     m.GymID,
		BranchID:  m.BranchID,
		MemberID:  m.MemberID,
		Amount:    m.Amount,
		Method:    entity.PaymentMethod(m.Method),
		Note:      m.Note,
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:        payment.ID,
		GymID:     payment.GymID,
		BranchID:  payment.BranchID,
		MemberID:  payment.MemberID,
		Amount:    payment.Amount,
		Method:    string(payment.Method),
		Note:      payment.Note,
		PaidAt:    payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GymID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BranchID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category  string          `gorm:"type:varchar(100)"`
	Note      string          `gorm:"type:text"`
	SpentAt   time.Time       `gorm:"type:timestamptz;not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:        m.ID,
		GymID:     m.GymID,
		BranchID:  m.BranchID,
		Amount:    m.Amount,
		Category:  m.Category,
		Note:      m.Note,
		SpentAt:   m.SpentAt,
		CreatedAt: m.CreatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:        expense.ID,
		GymID:     expense.GymID,
		BranchID:  expense.BranchID,
		Amount:    expense.Amount,
		Category:  expense.Category,
		Note:      expense.Note,
		SpentAt:   expense.SpentAt,
		CreatedAt: expense.CreatedAt,
	}
}
