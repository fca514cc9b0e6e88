// Package member contains member-related use cases.
package member

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// UpdateMemberInput represents the input for member update. Nil pointer
// fields are left unchanged. BranchID distinguishes "not provided" (nil)
// from "unassign" (pointer to uuid.Nil).
type UpdateMemberInput struct {
	GymID               uuid.UUID
	MemberID            uuid.UUID
	BranchID            *uuid.UUID
	PlanID              *uuid.UUID
	Name                *string
	Email               *string
	Phone               *string
	MembershipStartDate *time.Time
	MembershipEndDate   *time.Time
}

// UpdateMemberOutput represents the output of member update.
type UpdateMemberOutput struct {
	Member *entity.Member
}

// UpdateMemberUseCase handles member update logic.
type UpdateMemberUseCase struct {
	memberRepo adapter.MemberRepository
	branchRepo adapter.BranchRepository
	planRepo   adapter.PlanRepository
}

// NewUpdateMemberUseCase creates a new UpdateMemberUseCase instance.
func NewUpdateMemberUseCase(
	memberRepo adapter.MemberRepository,
	branchRepo adapter.BranchRepository,
	planRepo adapter.PlanRepository,
) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
		branchRepo: branchRepo,
		planRepo:   planRepo,
	}
}

// Execute performs the member update.
func (uc *UpdateMemberUseCase) Execute(ctx context.Context, input UpdateMemberInput) (*UpdateMemberOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil || member.GymID != input.GymID {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodeMemberNameRequired,
				"member name is required",
				domainerror.ErrMemberNameRequired,
			)
		}
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}

	if input.BranchID != nil && *input.BranchID != uuid.Nil {
		branch, err := uc.branchRepo.FindByID(ctx, *input.BranchID)
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
	}
	if input.BranchID != nil {
		member.BranchID = *input.BranchID
	}

	if input.PlanID != nil {
		plan, err := uc.planRepo.FindByID(ctx, *input.PlanID)
		if err != nil || plan.GymID != input.GymID {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodePlanNotFound,
				"membership plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		member.PlanID = input.PlanID
	}

	if input.MembershipStartDate != nil {
		member.MembershipStartDate = input.MembershipStartDate
	}
	if input.MembershipEndDate != nil {
		member.MembershipEndDate = input.MembershipEndDate
	}

	// Validate the resulting window, whichever side changed
	if member.MembershipStartDate != nil && member.MembershipEndDate != nil &&
		member.MembershipEndDate.Before(*member.MembershipStartDate) {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeInvalidMembershipWindow,
			"membership end date must not precede start date",
			domainerror.ErrInvalidMembershipWindow,
		)
	}

	member.UpdatedAt = time.Now().UTC()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return &UpdateMemberOutput{Member: member}, nil
}
