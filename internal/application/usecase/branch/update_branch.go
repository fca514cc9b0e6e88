// Package branch contains branch-related use cases.
package branch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// UpdateBranchInput represents the input for branch update. Nil pointer
// fields are left unchanged.
type UpdateBranchInput struct {
	GymID       uuid.UUID
	BranchID    uuid.UUID
	Name        *string
	Address     *string
	Phone       *string
	ManagerName *string
	Status      *entity.BranchStatus
}

// UpdateBranchOutput represents the output of branch update.
type UpdateBranchOutput struct {
	Branch *entity.Branch
}

// UpdateBranchUseCase handles branch update logic.
type UpdateBranchUseCase struct {
	branchRepo adapter.BranchRepository
}

// NewUpdateBranchUseCase creates a new UpdateBranchUseCase instance.
func NewUpdateBranchUseCase(branchRepo adapter.BranchRepository) *UpdateBranchUseCase {
	return &UpdateBranchUseCase{
		branchRepo: branchRepo,
	}
}

// Execute performs the branch update.
func (uc *UpdateBranchUseCase) Execute(ctx context.Context, input UpdateBranchInput) (*UpdateBranchOutput, error) {
	branch, err := uc.branchRepo.FindByID(ctx, input.BranchID)
	if err != nil {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotFound,
			"branch not found",
			domainerror.ErrBranchNotFound,
		)
	}

	// Tenant isolation: never touch another gym's branch
	if branch.GymID != input.GymID {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotInGym,
			"branch does not belong to this gym",
			domainerror.ErrBranchNotInGym,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewBranchError(
				domainerror.ErrCodeBranchNameRequired,
				"branch name is required",
				domainerror.ErrBranchNameRequired,
			)
		}
		if *input.Name != branch.Name {
			exists, err := uc.branchRepo.ExistsByNameAndGym(ctx, *input.Name, input.GymID)
			if err != nil {
				return nil, fmt.Errorf("failed to check branch name: %w", err)
			}
			if exists {
				return nil, domainerror.NewBranchError(
					domainerror.ErrCodeBranchNameExists,
					"a branch with this name already exists",
					domainerror.ErrBranchNameExists,
				)
			}
		}
		branch.Name = *input.Name
	}

	if input.Address != nil {
		branch.Address = *input.Address
	}
	if input.Phone != nil {
		branch.Phone = *input.Phone
	}
	if input.ManagerName != nil {
		branch.ManagerName = *input.ManagerName
	}
	if input.Status != nil {
		if *input.Status != entity.BranchStatusActive && *input.Status != entity.BranchStatusInactive {
			return nil, domainerror.NewBranchError(
				domainerror.ErrCodeInvalidBranchStatus,
				"branch status must be 'active' or 'inactive'",
				domainerror.ErrInvalidBranchStatus,
			)
		}
		branch.Status = *input.Status
	}

	branch.UpdatedAt = time.Now().UTC()

	if err := uc.branchRepo.Update(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	return &UpdateBranchOutput{Branch: branch}, nil
}
