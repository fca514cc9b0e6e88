// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// CreateBranchRequest represents the request body for branch creation.
type CreateBranchRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Address     string `json:"address" binding:"max=255"`
	Phone       string `json:"phone" binding:"max=30"`
	ManagerName string `json:"manager_name" binding:"max=100"`
}

// UpdateBranchRequest represents the request body for branch updates.
// Omitted fields are left unchanged.
type UpdateBranchRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// BranchResponse represents a branch in API responses.
type BranchResponse struct {
	ID          string    `json:"id"`
	GymID       string    `json:"gym_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	ManagerName string    `json:"manager_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BranchListResponse represents the response for branch listing.
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ToBranchResponse converts a domain Branch entity to a BranchResponse DTO.
func ToBranchResponse(branch *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:          branch.ID.String(),
		GymID:       branch.GymID.String(),
		Name:        branch.Name,
		Address:     branch.Address,
		Phone:       branch.Phone,
		ManagerName: branch.ManagerName,
		Status:      string(branch.Status),
		CreatedAt:   branch.CreatedAt,
	}
}

// ToBranchListResponse converts branch entities to a BranchListResponse DTO.
func ToBranchListResponse(branches []*entity.Branch) BranchListResponse {
	out := make([]BranchResponse, len(branches))
	for i, b := range branches {
		out[i] = ToBranchResponse(b)
	}
	return BranchListResponse{Branches: out}
}
