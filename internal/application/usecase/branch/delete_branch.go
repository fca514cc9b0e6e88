// Package branch contains branch-related use cases.
package branch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// DeleteBranchInput represents the input for branch deletion.
type DeleteBranchInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
}

// DeleteBranchOutput represents the output of branch deletion.
type DeleteBranchOutput struct {
	Message string
}

// DeleteBranchUseCase handles branch deletion logic. Deleting a branch also
// removes its operator accounts; the repository performs both in one
// transaction. Members of the branch are kept and become unassigned.
type DeleteBranchUseCase struct {
	branchRepo adapter.BranchRepository
}

// NewDeleteBranchUseCase creates a new DeleteBranchUseCase instance.
func NewDeleteBranchUseCase(branchRepo adapter.BranchRepository) *DeleteBranchUseCase {
	return &DeleteBranchUseCase{
		branchRepo: branchRepo,
	}
}

// Execute performs the branch deletion.
func (uc *DeleteBranchUseCase) Execute(ctx context.Context, input DeleteBranchInput) (*DeleteBranchOutput, error) {
	branch, err := uc.branchRepo.FindByID(ctx, input.BranchID)
	if err != nil {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotFound,
			"branch not found",
			domainerror.ErrBranchNotFound,
		)
	}

	if branch.GymID != input.GymID {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotInGym,
			"branch does not belong to this gym",
			domainerror.ErrBranchNotInGym,
		)
	}

	if err := uc.branchRepo.Delete(ctx, input.BranchID); err != nil {
		return nil, fmt.Errorf("failed to delete branch: %w", err)
	}

	return &DeleteBranchOutput{Message: "Branch deleted successfully"}, nil
}
