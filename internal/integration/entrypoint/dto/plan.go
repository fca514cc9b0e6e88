// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// CreatePlanRequest represents the request body for plan creation.
type CreatePlanRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=100"`
	Price        float64  `json:"price" binding:"min=0"`
	DurationDays int      `json:"duration_days" binding:"required,min=1"`
	Features     []string `json:"features"`
}

// UpdatePlanRequest represents the request body for plan updates.
// Omitted fields are left unchanged; a non-null features array replaces
// the existing list wholesale.
type UpdatePlanRequest struct {
	Name         *string  `json:"name,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	Features     []string `json:"features,omitempty"`
}

// PlanResponse represents a membership plan in API responses.
type PlanResponse struct {
	ID           string    `json:"id"`
	GymID        string    `json:"gym_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlanListResponse represents the response for plan listing.
type PlanListResponse struct {
	Plans []PlanResponse `json:"plans"`
}

// ToPlanResponse converts a domain MembershipPlan entity to a PlanResponse DTO.
func ToPlanResponse(plan *entity.MembershipPlan) PlanResponse {
	price, _ := plan.Price.Float64()
	features := plan.Features
	if features == nil {
		features = []string{}
	}
	return PlanResponse{
		ID:           plan.ID.String(),
		GymID:        plan.GymID.String(),
		Name:         plan.Name,
		Price:        price,
		DurationDays: plan.DurationDays,
		Features:     features,
		CreatedAt:    plan.CreatedAt,
	}
}

// ToPlanListResponse converts plan entities to a PlanListResponse DTO.
func ToPlanListResponse(plans []*entity.MembershipPlan) PlanListResponse {
	out := make([]PlanResponse, len(plans))
	for i, p := range plans {
		out[i] = ToPlanResponse(p)
	}
	return PlanListResponse{Plans: out}
}
