// Package plan contains membership plan-related use cases.
package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// UpdatePlanInput represents the input for plan update. Nil pointer fields
// are left unchanged.
type UpdatePlanInput struct {
	GymID        uuid.UUID
	PlanID       uuid.UUID
	Name         *string
	Price        *decimal.Decimal
	DurationDays *int
	Features     []string
}

// UpdatePlanOutput represents the output of plan update.
type UpdatePlanOutput struct {
	Plan *entity.MembershipPlan
}

// UpdatePlanUseCase handles membership plan update logic.
type UpdatePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewUpdatePlanUseCase creates a new UpdatePlanUseCase instance.
func NewUpdatePlanUseCase(planRepo adapter.PlanRepository) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the plan update.
func (uc *UpdatePlanUseCase) Execute(ctx context.Context, input UpdatePlanInput) (*UpdatePlanOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil || plan.GymID != input.GymID {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanMissing,
			"membership plan not found",
			domainerror.ErrPlanNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodePlanNameRequired,
				"plan name is required",
				domainerror.ErrPlanNameRequired,
			)
		}
		if *input.Name != plan.Name {
			exists, err := uc.planRepo.ExistsByNameAndGym(ctx, *input.Name, input.GymID)
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
		}
		plan.Name = *input.Name
	}

	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeNegativePlanPrice,
				"plan price must not be negative",
				domainerror.ErrNegativePlanPrice,
			)
		}
		plan.Price = *input.Price
	}

	if input.DurationDays != nil {
		if *input.DurationDays <= 0 {
			return nil, domainerror.NewPlanError(
				domainerror.ErrCodeInvalidPlanDuration,
				"plan duration must be positive",
				domainerror.ErrInvalidPlanDuration,
			)
		}
		plan.DurationDays = *input.DurationDays
	}

	if input.Features != nil {
		plan.Features = input.Features
	}

	plan.UpdatedAt = time.Now().UTC()

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	return &UpdatePlanOutput{Plan: plan}, nil
}
