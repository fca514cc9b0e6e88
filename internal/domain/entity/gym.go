// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gym represents a tenant: the top-level organization owning one or more branches.
type Gym struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGym creates a new Gym entity.
func NewGym(name string) *Gym {
	now := time.Now().UTC()
	return &Gym{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
