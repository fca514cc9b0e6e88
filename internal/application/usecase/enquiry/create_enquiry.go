// Package enquiry contains lead-tracking use cases.
package enquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// CreateEnquiryInput represents the input for recording a lead.
type CreateEnquiryInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
	Name     string
	Phone    string
	Message  string
}

// CreateEnquiryOutput represents the output of recording a lead.
type CreateEnquiryOutput struct {
	Enquiry *entity.Enquiry
}

// CreateEnquiryUseCase handles lead recording logic.
type CreateEnquiryUseCase struct {
	enquiryRepo adapter.EnquiryRepository
}

// NewCreateEnquiryUseCase creates a new CreateEnquiryUseCase instance.
func NewCreateEnquiryUseCase(enquiryRepo adapter.EnquiryRepository) *CreateEnquiryUseCase {
	return &CreateEnquiryUseCase{
		enquiryRepo: enquiryRepo,
	}
}

// Execute records the enquiry with status open.
func (uc *CreateEnquiryUseCase) Execute(ctx context.Context, input CreateEnquiryInput) (*CreateEnquiryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewEnquiryError(
			domainerror.ErrCodeEnquiryNameRequired,
			"enquirer name is required",
			domainerror.ErrEnquiryNameRequired,
		)
	}

	enquiry := entity.NewEnquiry(input.GymID, input.BranchID, input.Name, input.Phone, input.Message)

	if err := uc.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to create enquiry: %w", err)
	}

	return &CreateEnquiryOutput{Enquiry: enquiry}, nil
}
