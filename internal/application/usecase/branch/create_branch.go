// Package branch contains branch-related use cases.
package branch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// CreateBranchInput represents the input for branch creation.
type CreateBranchInput struct {
	GymID       uuid.UUID
	Name        string
	Address     string
	Phone       string
	ManagerName string
}

// CreateBranchOutput represents the output of branch creation.
type CreateBranchOutput struct {
	Branch *entity.Branch
}

// CreateBranchUseCase handles branch creation logic.
type CreateBranchUseCase struct {
	branchRepo adapter.BranchRepository
}

// NewCreateBranchUseCase creates a new CreateBranchUseCase instance.
func NewCreateBranchUseCase(branchRepo adapter.BranchRepository) *CreateBranchUseCase {
	return &CreateBranchUseCase{
		branchRepo: branchRepo,
	}
}

// Execute performs the branch creation.
func (uc *CreateBranchUseCase) Execute(ctx context.Context, input CreateBranchInput) (*CreateBranchOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNameRequired,
			"branch name is required",
			domainerror.ErrBranchNameRequired,
		)
	}

	// Branch names are unique within a gym
	exists, err := uc.branchRepo.ExistsByNameAndGym(ctx, input.Name, input.GymID)
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

	branch := entity.NewBranch(input.GymID, input.Name, input.Address, input.Phone, input.ManagerName)

	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return &CreateBranchOutput{Branch: branch}, nil
}
