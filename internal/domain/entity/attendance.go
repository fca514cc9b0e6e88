// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance represents a single member check-in at a branch.
// At most one check-in is recorded per member per UTC calendar day.
type Attendance struct {
	ID          uuid.UUID
	GymID       uuid.UUID
	BranchID    uuid.UUID
	MemberID    uuid.UUID
	CheckedInAt time.Time
}

// NewAttendance creates a new Attendance entity.
func NewAttendance(gymID, branchID, memberID uuid.UUID, checkedInAt time.Time) *Attendance {
	return &Attendance{
		ID:          uuid.New(),
		GymID:       gymID,
		BranchID:    branchID,
		MemberID:    memberID,
		CheckedInAt: checkedInAt,
	}
}
