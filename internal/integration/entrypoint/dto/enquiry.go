// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// CreateEnquiryRequest represents the request body for recording a lead.
type CreateEnquiryRequest struct {
	BranchID string `json:"branch_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Phone    string `json:"phone" binding:"max=30"`
	Message  string `json:"message" binding:"max=1000"`
}

// UpdateEnquiryStatusRequest represents the request body for lead follow-up.
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// EnquiryResponse represents a lead in API responses.
type EnquiryResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// EnquiryListResponse represents the response for enquiry listing.
type EnquiryListResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
}

// ToEnquiryResponse converts a domain Enquiry entity to an EnquiryResponse DTO.
func ToEnquiryResponse(enquiry *entity.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:        enquiry.ID.String(),
		BranchID:  enquiry.BranchID.String(),
		Name:      enquiry.Name,
		Phone:     enquiry.Phone,
		Message:   enquiry.Message,
		Status:    string(enquiry.Status),
		CreatedAt: enquiry.CreatedAt,
	}
}

// ToEnquiryListResponse converts enquiry entities to an EnquiryListResponse DTO.
func ToEnquiryListResponse(enquiries []*entity.Enquiry) EnquiryListResponse {
	out := make([]EnquiryResponse, len(enquiries))
	for i, e := range enquiries {
		out[i] = ToEnquiryResponse(e)
	}
	return EnquiryListResponse{Enquiries: out}
}
