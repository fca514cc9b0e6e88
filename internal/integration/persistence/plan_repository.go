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

// planRepository implements the adapter.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new membership plan repository instance.
func NewPlanRepository(db *gorm.DB) adapter.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// Create creates a new plan in the database.
func (r *planRepository) Create(ctx context.Context, plan *entity.MembershipPlan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a plan by its ID.
func (r *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MembershipPlan, error) {
	var planModel model.PlanModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByGym lists all plans of a gym ordered by price.
func (r *planRepository) FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.MembershipPlan, error) {
	var planModels []model.PlanModel
	result := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("price ASC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.MembershipPlan, len(planModels))
	for i, pm := range planModels {
		plans[i] = pm.ToEntity()
	}
	return plans, nil
}

// ExistsByNameAndGym checks whether a plan with the name exists for the gym.
func (r *planRepository) ExistsByNameAndGym(ctx context.Context, name string, gymID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("name = ? AND gym_id = ?", name, gymID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update persists changes to an existing plan.
func (r *planRepository) Update(ctx context.Context, plan *entity.MembershipPlan) error {
	planModel := model.PlanFromEntity(plan)
	result := r.db.WithContext(ctx).Save(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a plan (soft delete).
func (r *planRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PlanModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
