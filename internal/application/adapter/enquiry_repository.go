// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// EnquiryRepository defines the interface for enquiry persistence operations.
type EnquiryRepository interface {
	// Create records a new enquiry.
	Create(ctx context.Context, enquiry *entity.Enquiry) error

	// FindByID retrieves an enquiry by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error)

	// FindByBranch lists enquiries for a branch, newest first.
	FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Enquiry, error)

	// Update persists changes to an existing enquiry.
	Update(ctx context.Context, enquiry *entity.Enquiry) error
}
