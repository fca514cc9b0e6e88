// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// PlanRepository defines the interface for membership plan persistence operations.
type PlanRepository interface {
	// Create creates a new membership plan.
	Create(ctx context.Context, plan *entity.MembershipPlan) error

	// FindByID retrieves a plan by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error)

	// FindByGym lists all plans of a gym.
	FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.MembershipPlan, error)

	// ExistsByNameAndGym checks whether a plan with the name exists for the gym.
	ExistsByNameAndGym(ctx context.Context, name string, gymID uuid.UUID) (bool, error)

	// Update persists changes to an existing plan.
	Update(ctx context.Context, plan *entity.MembershipPlan) error

	// Delete removes a plan (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
