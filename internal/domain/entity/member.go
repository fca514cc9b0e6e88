// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member represents a gym customer with a membership window.
// A nil MembershipEndDate means the membership never expires. BranchID may
// be uuid.Nil for members not yet assigned to a branch; they still count
// toward gym-wide member totals.
type Member struct {
	ID                  uuid.UUID
	GymID               uuid.UUID
	BranchID            uuid.UUID
	PlanID              *uuid.UUID
	Name                string
	Email               string
	Phone               string
	MembershipStartDate *time.Time
	MembershipEndDate   *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time // Soft-delete support
}

// NewMember creates a new Member entity.
func NewMember(gymID, branchID uuid.UUID, planID *uuid.UUID, name, email, phone string, startDate, endDate *time.Time) *Member {
	now := time.Now().UTC()
	return &Member{
		ID:                  uuid.New(),
		GymID:               gymID,
		BranchID:            branchID,
		PlanID:              planID,
		Name:                name,
		Email:               email,
		Phone:               phone,
		MembershipStartDate: startDate,
		MembershipEndDate:   endDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// IsAssigned returns true when the member belongs to a branch.
func (m *Member) IsAssigned() bool {
	return m.BranchID != uuid.Nil
}
