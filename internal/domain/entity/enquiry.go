// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryStatus represents the follow-up status of a lead.
type EnquiryStatus string

const (
	EnquiryStatusOpen       EnquiryStatus = "open"
	EnquiryStatusFollowedUp EnquiryStatus = "followed_up"
	EnquiryStatusConverted  EnquiryStatus = "converted"
	EnquiryStatusClosed     EnquiryStatus = "closed"
)

// Enquiry represents a walk-in or website lead recorded at a branch.
type Enquiry struct {
	ID        uuid.UUID
	GymID     uuid.UUID
	BranchID  uuid.UUID
	Name      string
	Phone     string
	Message   string
	Status    EnquiryStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEnquiry creates a new open Enquiry entity.
func NewEnquiry(gymID, branchID uuid.UUID, name, phone, message string) *Enquiry {
	now := time.Now().UTC()
	return &Enquiry{
		ID:        uuid.New(),
		GymID:     gymID,
		BranchID:  branchID,
		Name:      name,
		Phone:     phone,
		Message:   message,
		Status:    EnquiryStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
