// Package member contains member-related use cases.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// RegisterMemberInput represents the input for member registration.
// BranchID may be uuid.Nil for members not yet assigned to a branch.
type RegisterMemberInput struct {
	GymID               uuid.UUID
	BranchID            uuid.UUID
	PlanID              *uuid.UUID
	Name                string
	Email               string
	Phone               string
	MembershipStartDate *time.Time
	MembershipEndDate   *time.Time
}

// RegisterMemberOutput represents the output of member registration.
type RegisterMemberOutput struct {
	Member *entity.Member
}

// RegisterMemberUseCase handles member registration logic.
type RegisterMemberUseCase struct {
	memberRepo adapter.MemberRepository
	branchRepo adapter.BranchRepository
	planRepo   adapter.PlanRepository
	emailQueue adapter.EmailQueueRepository
}

// NewRegisterMemberUseCase creates a new RegisterMemberUseCase instance.
func NewRegisterMemberUseCase(
	memberRepo adapter.MemberRepository,
	branchRepo adapter.BranchRepository,
	planRepo adapter.PlanRepository,
	emailQueue adapter.EmailQueueRepository,
) *RegisterMemberUseCase {
	return &RegisterMemberUseCase{
		memberRepo: memberRepo,
		branchRepo: branchRepo,
		planRepo:   planRepo,
		emailQueue: emailQueue,
	}
}

// Execute performs the member registration.
func (uc *RegisterMemberUseCase) Execute(ctx context.Context, input RegisterMemberInput) (*RegisterMemberOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMemberNameRequired,
			"member name is required",
			domainerror.ErrMemberNameRequired,
		)
	}

	// Validate membership window
	if input.MembershipStartDate != nil && input.MembershipEndDate != nil &&
		input.MembershipEndDate.Before(*input.MembershipStartDate) {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeInvalidMembershipWindow,
			"membership end date must not precede start date",
			domainerror.ErrInvalidMembershipWindow,
		)
	}

	// Validate branch if assigned
	if input.BranchID != uuid.Nil {
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
	}

	// Validate plan if provided; a plan with a duration derives the end
	// date when none was given explicitly.
	if input.PlanID != nil {
		plan, err := uc.planRepo.FindByID(ctx, *input.PlanID)
		if err != nil || plan.GymID != input.GymID {
			return nil, domainerror.NewMemberError(
				domainerror.ErrCodePlanNotFound,
				"membership plan not found",
				domainerror.ErrPlanNotFound,
			)
		}
		if input.MembershipEndDate == nil && input.MembershipStartDate != nil && plan.DurationDays > 0 {
			end := input.MembershipStartDate.AddDate(0, 0, plan.DurationDays)
			input.MembershipEndDate = &end
		}
	}

	member := entity.NewMember(
		input.GymID,
		input.BranchID,
		input.PlanID,
		input.Name,
		input.Email,
		input.Phone,
		input.MembershipStartDate,
		input.MembershipEndDate,
	)

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	// Welcome email is best-effort; registration succeeds without it
	if input.Email != "" {
		job := entity.NewEmailJob(
			entity.TemplateMemberWelcome,
			member.Email,
			member.Name,
			"Welcome to the gym!",
			map[string]interface{}{
				"member_name": member.Name,
			},
		)
		if err := uc.emailQueue.Enqueue(ctx, job); err != nil {
			slog.Warn("failed to enqueue welcome email",
				"member_id", member.ID,
				"error", err,
			)
		}
	}

	return &RegisterMemberOutput{Member: member}, nil
}
