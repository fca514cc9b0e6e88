// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MembershipPlan represents a purchasable membership plan offered by a gym.
type MembershipPlan struct {
	ID           uuid.UUID
	GymID        uuid.UUID
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Features     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft-delete support
}

// NewMembershipPlan creates a new MembershipPlan entity.
func NewMembershipPlan(gymID uuid.UUID, name string, price decimal.Decimal, durationDays int, features []string) *MembershipPlan {
	now := time.Now().UTC()
	return &MembershipPlan{
		ID:           uuid.New(),
		GymID:        gymID,
		Name:         name,
		Price:        price,
		DurationDays: durationDays,
		Features:     features,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
