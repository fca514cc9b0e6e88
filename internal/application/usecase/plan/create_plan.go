// Package plan contains membership plan-related use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// CreatePlanInput represents the input for plan creation.
type CreatePlanInput struct {
	GymID        uuid.UUID
	Name         string
	Price        decimal.Decimal
	DurationDays int
	Features     []string
}

// CreatePlanOutput represents the output of plan creation.
type CreatePlanOutput struct {
	Plan *entity.MembershipPlan
}

// CreatePlanUseCase handles membership plan creation logic.
type CreatePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewCreatePlanUseCase creates a new CreatePlanUseCase instance.
func NewCreatePlanUseCase(planRepo adapter.PlanRepository) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the plan creation.
func (uc *CreatePlanUseCase) Execute(ctx context.Context, input CreatePlanInput) (*CreatePlanOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNameRequired,
			"plan name is required",
			domainerror.ErrPlanNameRequired,
		)
	}

	if input.Price.IsNegative() {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeNegativePlanPrice,
			"plan price must not be negative",
			domainerror.ErrNegativePlanPrice,
		)
	}

	if input.DurationDays <= 0 {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodeInvalidPlanDuration,
			"plan duration must be positive",
			domainerror.ErrInvalidPlanDuration,
		)
	}

	exists, err := uc.planRepo.ExistsByNameAndGym(ctx, input.Name, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to check plan name: %w", err)
	}
	if exists {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanNameExists,
			"a plan with this name already exists",
			domainerror.ErrPlanNameExists,
		)
	}

	plan := entity.NewMembershipPlan(input.GymID, input.Name, input.Price, input.DurationDays, input.Features)

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	return &CreatePlanOutput{Plan: plan}, nil
}
