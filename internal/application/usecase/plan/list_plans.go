// Package plan contains membership plan-related use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListPlansInput represents the input for listing plans.
type ListPlansInput struct {
	GymID uuid.UUID
}

// ListPlansOutput represents the output of listing plans.
type ListPlansOutput struct {
	Plans []*entity.MembershipPlan
}

// ListPlansUseCase handles membership plan listing logic.
type ListPlansUseCase struct {
	planRepo adapter.PlanRepository
}

// NewListPlansUseCase creates a new ListPlansUseCase instance.
func NewListPlansUseCase(planRepo adapter.PlanRepository) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
	}
}

// Execute lists the gym's membership plans.
func (uc *ListPlansUseCase) Execute(ctx context.Context, input ListPlansInput) (*ListPlansOutput, error) {
	plans, err := uc.planRepo.FindByGym(ctx, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return &ListPlansOutput{Plans: plans}, nil
}
