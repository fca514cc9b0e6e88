// Package branch contains branch-related use cases.
package branch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListBranchesInput represents the input for listing branches.
type ListBranchesInput struct {
	GymID uuid.UUID
}

// ListBranchesOutput represents the output of listing branches.
type ListBranchesOutput struct {
	Branches []*entity.Branch
}

// ListBranchesUseCase handles branch listing logic.
type ListBranchesUseCase struct {
	branchRepo adapter.BranchRepository
}

// NewListBranchesUseCase creates a new ListBranchesUseCase instance.
func NewListBranchesUseCase(branchRepo adapter.BranchRepository) *ListBranchesUseCase {
	return &ListBranchesUseCase{
		branchRepo: branchRepo,
	}
}

// Execute lists the gym's branches ordered by name.
func (uc *ListBranchesUseCase) Execute(ctx context.Context, input ListBranchesInput) (*ListBranchesOutput, error) {
	branches, err := uc.branchRepo.FindByGym(ctx, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	return &ListBranchesOutput{Branches: branches}, nil
}
