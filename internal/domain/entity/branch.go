// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BranchStatus represents the operational status of a branch.
type BranchStatus string

const (
	BranchStatusActive   BranchStatus = "active"
	BranchStatusInactive BranchStatus = "inactive"
)

// Branch represents a physical gym location belonging to a gym.
type Branch struct {
	ID          uuid.UUID
	GymID       uuid.UUID
	Name        string
	Address     string
	Phone       string
	ManagerName string
	Status      BranchStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewBranch creates a new active Branch entity.
func NewBranch(gymID uuid.UUID, name, address, phone, managerName string) *Branch {
	now := time.Now().UTC()
	return &Branch{
		ID:          uuid.New(),
		GymID:       gymID,
		Name:        name,
		Address:     address,
		Phone:       phone,
		ManagerName: managerName,
		Status:      BranchStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
