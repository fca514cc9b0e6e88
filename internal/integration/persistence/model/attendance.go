// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// AttendanceModel represents the attendances table in the database.
type AttendanceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GymID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BranchID    uuid.UUID `gorm:"type:uuid;not null;index"`
	MemberID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckedInAt time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName returns the table name for the AttendanceModel.
func (AttendanceModel) TableName() string {
	return "attendances"
}

// ToEntity converts an AttendanceModel to a domain Attendance entity.
func (m *AttendanceModel) ToEntity() *entity.Attendance {
	return &entity.Attendance{
		ID:          m.ID,
		GymID:       m.GymID,
		BranchID:    m.BranchID,
		MemberID:    m.MemberID,
		CheckedInAt: m.CheckedInAt,
	}
}

// AttendanceFromEntity creates an AttendanceModel from a domain Attendance entity.
func AttendanceFromEntity(attendance *entity.Attendance) *AttendanceModel {
	return &AttendanceModel{
		ID:          attendance.ID,
		GymID:       attendance.GymID,
		BranchID:    attendance.BranchID,
		MemberID:    attendance.MemberID,
		CheckedInAt: attendance.CheckedInAt,
	}
}
