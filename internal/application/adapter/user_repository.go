// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks whether an account with the email already exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ListOperatorsByGym lists branch-scoped staff accounts for a gym.
	ListOperatorsByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.User, error)

	// Delete removes a user account.
	Delete(ctx context.Context, id uuid.UUID) error
}

// GymRepository defines the interface for gym persistence operations.
type GymRepository interface {
	// Create creates a new gym.
	Create(ctx context.Context, gym *entity.Gym) error

	// FindByID retrieves a gym by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gym, error)
}
