// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// enquiryRepository implements the adapter.EnquiryRepository interface.
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository instance.
func NewEnquiryRepository(db *gorm.DB) adapter.EnquiryRepository {
	return &enquiryRepository{
		db: db,
	}
}

// Create records a new enquiry.
func (r *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiryModel := model.EnquiryFromEntity(enquiry)
	result := r.db.WithContext(ctx).Create(enquiryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an enquiry by its ID.
func (r *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	var enquiryModel model.EnquiryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&enquiryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEnquiryNotFound
		}
		return nil, result.Error
	}
	return enquiryModel.ToEntity(), nil
}

// FindByBranch lists enquiries for a branch, newest first.
func (r *enquiryRepository) FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Enquiry, error) {
	var enquiryModels []model.EnquiryModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&enquiryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	enquiries := make([]*entity.Enquiry, len(enquiryModels))
	for i, em := range enquiryModels {
		enquiries[i] = em.ToEntity()
	}
	return enquiries, nil
}

// Update persists changes to an existing enquiry.
func (r *enquiryRepository) Update(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiryModel := model.EnquiryFromEntity(enquiry)
	result := r.db.WithContext(ctx).Save(enquiryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
