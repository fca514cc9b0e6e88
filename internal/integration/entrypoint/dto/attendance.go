// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// CheckInRequest represents the request body for a member check-in.
type CheckInRequest struct {
	BranchID string `json:"branch_id" binding:"required,uuid"`
	MemberID string `json:"member_id" binding:"required,uuid"`
}

// AttendanceResponse represents a check-in record in API responses.
type AttendanceResponse struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	MemberID    string    `json:"member_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// AttendanceListResponse represents the response for attendance listing.
type AttendanceListResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
}

// ToAttendanceResponse converts a domain Attendance entity to an AttendanceResponse DTO.
func ToAttendanceResponse(attendance *entity.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          attendance.ID.String(),
		BranchID:    attendance.BranchID.String(),
		MemberID:    attendance.MemberID.String(),
		CheckedInAt: attendance.CheckedInAt,
	}
}

// ToAttendanceListResponse converts attendance entities to an AttendanceListResponse DTO.
func ToAttendanceListResponse(attendances []*entity.Attendance) AttendanceListResponse {
	out := make([]AttendanceResponse, len(attendances))
	for i, a := range attendances {
		out[i] = ToAttendanceResponse(a)
	}
	return AttendanceListResponse{Attendances: out}
}
