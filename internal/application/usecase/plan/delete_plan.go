// Package plan contains membership plan-related use cases.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// DeletePlanInput represents the input for plan deletion.
type DeletePlanInput struct {
	GymID  uuid.UUID
	PlanID uuid.UUID
}

// DeletePlanOutput represents the output of plan deletion.
type DeletePlanOutput struct {
	Message string
}

// DeletePlanUseCase handles membership plan deletion logic. Members keep
// their membership window; only the plan reference goes stale.
type DeletePlanUseCase struct {
	planRepo adapter.PlanRepository
}

// NewDeletePlanUseCase creates a new DeletePlanUseCase instance.
func NewDeletePlanUseCase(planRepo adapter.PlanRepository) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
	}
}

// Execute performs the plan deletion.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, input DeletePlanInput) (*DeletePlanOutput, error) {
	plan, err := uc.planRepo.FindByID(ctx, input.PlanID)
	if err != nil || plan.GymID != input.GymID {
		return nil, domainerror.NewPlanError(
			domainerror.ErrCodePlanMissing,
			"membership plan not found",
			domainerror.ErrPlanNotFound,
		)
	}

	if err := uc.planRepo.Delete(ctx, input.PlanID); err != nil {
		return nil, fmt.Errorf("failed to delete plan: %w", err)
	}

	return &DeletePlanOutput{Message: "Plan deleted successfully"}, nil
}
