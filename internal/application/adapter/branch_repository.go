// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// BranchRepository defines the interface for branch persistence operations.
type BranchRepository interface {
	// Create creates a new branch.
	Create(ctx context.Context, branch *entity.Branch) error

	// FindByID retrieves a branch by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)

	// FindByGym lists all branches of a gym ordered by name.
	FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Branch, error)

	// ExistsByNameAndGym checks whether a branch with the name exists for the gym.
	ExistsByNameAndGym(ctx context.Context, name string, gymID uuid.UUID) (bool, error)

	// Update persists changes to an existing branch.
	Update(ctx context.Context, branch *entity.Branch) error

	// Delete removes a branch and cascades deletion of its operator accounts.
	Delete(ctx context.Context, id uuid.UUID) error
}
