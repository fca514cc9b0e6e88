// Package enquiry contains lead-tracking use cases.
package enquiry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// UpdateEnquiryStatusInput represents the input for a status transition.
type UpdateEnquiryStatusInput struct {
	GymID     uuid.UUID
	EnquiryID uuid.UUID
	Status    entity.EnquiryStatus
}

// UpdateEnquiryStatusOutput represents the output of a status transition.
type UpdateEnquiryStatusOutput struct {
	Enquiry *entity.Enquiry
}

// UpdateEnquiryStatusUseCase handles lead status transitions.
type UpdateEnquiryStatusUseCase struct {
	enquiryRepo adapter.EnquiryRepository
}

// NewUpdateEnquiryStatusUseCase creates a new UpdateEnquiryStatusUseCase instance.
func NewUpdateEnquiryStatusUseCase(enquiryRepo adapter.EnquiryRepository) *UpdateEnquiryStatusUseCase {
	return &UpdateEnquiryStatusUseCase{
		enquiryRepo: enquiryRepo,
	}
}

// Execute performs the status transition.
func (uc *UpdateEnquiryStatusUseCase) Execute(ctx context.Context, input UpdateEnquiryStatusInput) (*UpdateEnquiryStatusOutput, error) {
	if !isValidEnquiryStatus(input.Status) {
		return nil, domainerror.NewEnquiryError(
			domainerror.ErrCodeInvalidEnquiryStatus,
			"enquiry status must be 'open', 'followed_up', 'converted' or 'closed'",
			domainerror.ErrInvalidEnquiryStatus,
		)
	}

	enquiry, err := uc.enquiryRepo.FindByID(ctx, input.EnquiryID)
	if err != nil || enquiry.GymID != input.GymID {
		return nil, domainerror.NewEnquiryError(
			domainerror.ErrCodeEnquiryNotFound,
			"enquiry not found",
			domainerror.ErrEnquiryNotFound,
		)
	}

	enquiry.Status = input.Status
	enquiry.UpdatedAt = time.Now().UTC()

	if err := uc.enquiryRepo.Update(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to update enquiry: %w", err)
	}

	return &UpdateEnquiryStatusOutput{Enquiry: enquiry}, nil
}

// isValidEnquiryStatus validates the target status.
func isValidEnquiryStatus(status entity.EnquiryStatus) bool {
	switch status {
	case entity.EnquiryStatusOpen, entity.EnquiryStatusFollowedUp,
		entity.EnquiryStatusConverted, entity.EnquiryStatusClosed:
		return true
	}
	return false
}
