// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/gym-manager/backend/internal/domain/entity"
)

// CreateOperatorRequest represents the request body for operator creation.
type CreateOperatorRequest struct {
	BranchID string `json:"branch_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// OperatorListResponse represents the response for operator listing.
type OperatorListResponse struct {
	Operators []UserResponse `json:"operators"`
}

// ToOperatorListResponse converts user entities to an OperatorListResponse DTO.
func ToOperatorListResponse(operators []*entity.User) OperatorListResponse {
	out := make([]UserResponse, len(operators))
	for i, o := range operators {
		out[i] = ToUserResponse(o)
	}
	return OperatorListResponse{Operators: out}
}
