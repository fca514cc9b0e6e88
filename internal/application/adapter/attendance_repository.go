// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// AttendanceRepository defines the interface for attendance persistence operations.
type AttendanceRepository interface {
	// Create records a check-in.
	Create(ctx context.Context, attendance *entity.Attendance) error

	// HasCheckInBetween reports whether the member already checked in during the window.
	HasCheckInBetween(ctx context.Context, memberID uuid.UUID, from, to time.Time) (bool, error)

	// ListByBranchBetween lists check-ins for a branch within a window, newest first.
	ListByBranchBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Attendance, error)
}
