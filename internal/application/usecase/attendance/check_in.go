// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// CheckInInput represents the input for a member check-in.
type CheckInInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
	MemberID uuid.UUID
}

// CheckInOutput represents the output of a member check-in.
type CheckInOutput struct {
	Attendance *entity.Attendance
}

// CheckInUseCase handles member check-in logic. A member can check in at
// most once per UTC calendar day, and only while the membership is current.
type CheckInUseCase struct {
	attendanceRepo adapter.AttendanceRepository
	memberRepo     adapter.MemberRepository
	now            func() time.Time
}

// NewCheckInUseCase creates a new CheckInUseCase instance.
func NewCheckInUseCase(attendanceRepo adapter.AttendanceRepository, memberRepo adapter.MemberRepository) *CheckInUseCase {
	return &CheckInUseCase{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the check-in.
func (uc *CheckInUseCase) Execute(ctx context.Context, input CheckInInput) (*CheckInOutput, error) {
	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil || member.GymID != input.GymID {
		return nil, domainerror.NewMemberError(
			domainerror.ErrCodeMemberNotFound,
			"member not found",
			domainerror.ErrMemberNotFound,
		)
	}

	now := uc.now()

	if member.MembershipEndDate != nil && member.MembershipEndDate.Before(now) {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeMembershipExpired,
			"membership has expired",
			domainerror.ErrMembershipExpired,
		)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	already, err := uc.attendanceRepo.HasCheckInBetween(ctx, input.MemberID, dayStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check attendance: %w", err)
	}
	if already {
		return nil, domainerror.NewAttendanceError(
			domainerror.ErrCodeAlreadyCheckedIn,
			"member already checked in today",
			domainerror.ErrAlreadyCheckedIn,
		)
	}

	attendance := entity.NewAttendance(input.GymID, input.BranchID, input.MemberID, now)

	if err := uc.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	return &CheckInOutput{Attendance: attendance}, nil
}
