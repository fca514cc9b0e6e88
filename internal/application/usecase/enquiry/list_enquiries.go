// Package enquiry contains lead-tracking use cases.
package enquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListEnquiriesInput represents the input for listing leads.
type ListEnquiriesInput struct {
	BranchID uuid.UUID
}

// ListEnquiriesOutput represents the output of listing leads.
type ListEnquiriesOutput struct {
	Enquiries []*entity.Enquiry
}

// ListEnquiriesUseCase handles lead listing logic.
type ListEnquiriesUseCase struct {
	enquiryRepo adapter.EnquiryRepository
}

// NewListEnquiriesUseCase creates a new ListEnquiriesUseCase instance.
func NewListEnquiriesUseCase(enquiryRepo adapter.EnquiryRepository) *ListEnquiriesUseCase {
	return &ListEnquiriesUseCase{
		enquiryRepo: enquiryRepo,
	}
}

// Execute lists the branch's enquiries, newest first.
func (uc *ListEnquiriesUseCase) Execute(ctx context.Context, input ListEnquiriesInput) (*ListEnquiriesOutput, error) {
	enquiries, err := uc.enquiryRepo.FindByBranch(ctx, input.BranchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}

	return &ListEnquiriesOutput{Enquiries: enquiries}, nil
}
