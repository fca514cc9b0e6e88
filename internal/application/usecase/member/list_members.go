// Package member contains member-related use cases.
package member

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListMembersInput represents the input for listing members. A non-nil
// BranchID narrows the listing to one branch.
type ListMembersInput struct {
	GymID    uuid.UUID
	BranchID *uuid.UUID
}

// ListMembersOutput represents the output of listing members.
type ListMembersOutput struct {
	Members []*entity.Member
}

// ListMembersUseCase handles member listing logic.
type ListMembersUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase instance.
func NewListMembersUseCase(memberRepo adapter.MemberRepository) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
	}
}

// Execute lists members of the gym, optionally filtered to one branch.
func (uc *ListMembersUseCase) Execute(ctx context.Context, input ListMembersInput) (*ListMembersOutput, error) {
	if input.BranchID != nil {
		members, err := uc.memberRepo.FindByBranch(ctx, *input.BranchID)
		if err != nil {
			return nil, fmt.Errorf("failed to list branch members: %w", err)
		}
		return &ListMembersOutput{Members: members}, nil
	}

	members, err := uc.memberRepo.FindByGym(ctx, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersOutput{Members: members}, nil
}
