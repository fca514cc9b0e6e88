// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// PlanModel represents the membership_plans table in the database.
type PlanModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GymID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DurationDays int             `gorm:"not null"`
	Features     pq.StringArray  `gorm:"type:text[]"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the PlanModel.
func (PlanModel) TableName() string {
	return "membership_plans"
}

// ToEntity converts a PlanModel to a domain MembershipPlan entity.
func (m *PlanModel) ToEntity() *entity.MembershipPlan {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.MembershipPlan{
		ID:           m.ID,
		GymID:        m.GymID,
		Name:         m.Name,
		Price:        m.Price,
		DurationDays: m.DurationDays,
		Features:     []string(m.Features),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

// PlanFromEntity creates a PlanModel from a domain MembershipPlan entity.
func PlanFromEntity(plan *entity.MembershipPlan) *PlanModel {
	var deletedAt gorm.DeletedAt
	if plan.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *plan.DeletedAt, Valid: true}
	}

	return &PlanModel{
		ID:           plan.ID,
		GymID:        plan.GymID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		Features:     pq.StringArray(plan.Features),
		CreatedAt:    plan.CreatedAt,
		UpdatedAt:    plan.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}
