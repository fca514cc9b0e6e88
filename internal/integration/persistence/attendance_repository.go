// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// attendanceRepository implements the adapter.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository instance.
func NewAttendanceRepository(db *gorm.DB) adapter.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// Create records a check-in.
func (r *attendanceRepository) Create(ctx context.Context, attendance *entity.Attendance) error {
	attendanceModel := model.AttendanceFromEntity(attendance)
	result := r.db.WithContext(ctx).Create(attendanceModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// HasCheckInBetween reports whether the member already checked in during the window.
func (r *attendanceRepository) HasCheckInBetween(ctx context.Context, memberID uuid.UUID, from, to time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("member_id = ? AND checked_in_at >= ? AND checked_in_at <= ?", memberID, from, to).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// ListByBranchBetween lists check-ins for a branch within a window, newest first.
func (r *attendanceRepository) ListByBranchBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) ([]*entity.Attendance, error) {
	var attendanceModels []model.AttendanceModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ? AND checked_in_at >= ? AND checked_in_at < ?", branchID, from, to).
		Order("checked_in_at DESC").
		Find(&attendanceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	attendances := make([]*entity.Attendance, len(attendanceModels))
	for i, am := range attendanceModels {
		attendances[i] = am.ToEntity()
	}
	return attendances, nil
}
