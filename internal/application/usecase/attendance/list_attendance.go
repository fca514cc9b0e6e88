// Package attendance contains attendance-related use cases.
package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListAttendanceInput represents the input for listing a branch's check-ins
// on a given day. A zero Day means today.
type ListAttendanceInput struct {
	BranchID uuid.UUID
	Day      time.Time
}

// ListAttendanceOutput represents the output of listing check-ins.
type ListAttendanceOutput struct {
	Attendances []*entity.Attendance
}

// ListAttendanceUseCase handles attendance listing logic.
type ListAttendanceUseCase struct {
	attendanceRepo adapter.AttendanceRepository
	now            func() time.Time
}

// NewListAttendanceUseCase creates a new ListAttendanceUseCase instance.
func NewListAttendanceUseCase(attendanceRepo adapter.AttendanceRepository) *ListAttendanceUseCase {
	return &ListAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Execute lists the branch's check-ins for the UTC day, newest first.
func (uc *ListAttendanceUseCase) Execute(ctx context.Context, input ListAttendanceInput) (*ListAttendanceOutput, error) {
	day := input.Day
	if day.IsZero() {
		day = uc.now()
	}
	day = day.UTC()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	attendances, err := uc.attendanceRepo.ListByBranchBetween(ctx, input.BranchID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return &ListAttendanceOutput{Attendances: attendances}, nil
}
