// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// RegisterMemberRequest represents the request body for member registration.
// BranchID may be omitted for members not yet assigned to a branch.
type RegisterMemberRequest struct {
	BranchID            *string    `json:"branch_id,omitempty"`
	PlanID              *string    `json:"plan_id,omitempty"`
	Name                string     `json:"name" binding:"required,min=1,max=100"`
	Email               string     `json:"email" binding:"omitempty,email"`
	Phone               string     `json:"phone" binding:"max=30"`
	MembershipStartDate *time.Time `json:"membership_start_date,omitempty"`
	MembershipEndDate   *time.Time `json:"membership_end_date,omitempty"`
}

// UpdateMemberRequest represents the request body for member updates.
// Omitted fields are left unchanged. An explicit null branch_id cannot be
// distinguished from an omitted one in JSON, so unassignment uses the
// all-zero UUID.
type UpdateMemberRequest struct {
	BranchID            *string    `json:"branch_id,omitempty"`
	PlanID              *string    `json:"plan_id,omitempty"`
	Name                *string    `json:"name,omitempty"`
	Email               *string    `json:"email,omitempty"`
	Phone               *string    `json:"phone,omitempty"`
	MembershipStartDate *time.Time `json:"membership_start_date,omitempty"`
	MembershipEndDate   *time.Time `json:"membership_end_date,omitempty"`
}

// MemberResponse represents a member in API responses.
type MemberResponse struct {
	ID                  string     `json:"id"`
	GymID               string     `json:"gym_id"`
	BranchID            *string    `json:"branch_id,omitempty"`
	PlanID              *string    `json:"plan_id,omitempty"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone"`
	MembershipStartDate *time.Time `json:"membership_start_date,omitempty"`
	MembershipEndDate   *time.Time `json:"membership_end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// MemberListResponse represents the response for member listing.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain Member entity to a MemberResponse DTO.
func ToMemberResponse(member *entity.Member) MemberResponse {
	var branchID *string
	if member.IsAssigned() {
		id := member.BranchID.String()
		branchID = &id
	}
	var planID *string
	if member.PlanID != nil {
		id := member.PlanID.String()
		planID = &id
	}
	return MemberResponse{
		ID:                  member.ID.String(),
		GymID:               member.GymID.String(),
		BranchID:            branchID,
		PlanID:              planID,
		Name:                member.Name,
		Email:               member.Email,
		Phone:               member.Phone,
		MembershipStartDate: member.MembershipStartDate,
		MembershipEndDate:   member.MembershipEndDate,
		CreatedAt:           member.CreatedAt,
	}
}

// ToMemberListResponse converts member entities to a MemberListResponse DTO.
func ToMemberListResponse(members []*entity.Member) MemberListResponse {
	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = ToMemberResponse(m)
	}
	return MemberListResponse{Members: out}
}
