// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the role of a platform account.
type Role string

const (
	// RoleOwner is the gym owner; scoped to the whole gym.
	RoleOwner Role = "owner"
	// RoleBranchAdmin manages a single branch.
	RoleBranchAdmin Role = "branch_admin"
	// RoleReceptionist handles front-desk operations for a single branch.
	RoleReceptionist Role = "receptionist"
)

// User represents a platform account in the Gym Manager system.
// Owners have no branch assignment; operators (branch admins and
// receptionists) belong to exactly one branch.
type User struct {
	ID           uuid.UUID
	GymID        uuid.UUID
	BranchID     *uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with the given role.
func NewUser(gymID uuid.UUID, branchID *uuid.UUID, name, email, passwordHash string, role Role) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		GymID:        gymID,
		BranchID:     branchID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsOperator returns true for branch-scoped staff accounts.
func (u *User) IsOperator() bool {
	return u.Role == RoleBranchAdmin || u.Role == RoleReceptionist
}
