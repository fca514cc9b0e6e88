// Package member contains member-related use cases.
package member

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// DeleteMemberInput represents the input for member deletion.
type DeleteMemberInput struct {
	GymID    uuid.UUID
	MemberID uuid.UUID
}

// DeleteMemberOutput represents the output of member deletion.
type DeleteMemberOutput struct {
	Message string
}

// DeleteMemberUseCase handles member deletion logic.
type DeleteMemberUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewDeleteMemberUseCase creates a new DeleteMemberUseCase instance.
func NewDeleteMemberUseCase(memberRepo adapter.MemberRepository) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
	}
}

// Execute performs the member deletion.
func (uc *DeleteMemberUseCase) Execute(ctx context.Context, input DeleteMemberInput) (*DeleteMemberOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil || member.GymID != input.GymID {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	if err := uc.memberRepo.Delete(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("failed to delete member: %w", err)
	}

	return &DeleteMemberOutput{Message: "Member deleted successfully"}, nil
}
