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

// branchRepository implements the adapter.BranchRepository interface.
type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository instance.
func NewBranchRepository(db *gorm.DB) adapter.BranchRepository {
	return &branchRepository{
		db: db,
	}
}

// Create creates a new branch in the database.
func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	branchModel := model.BranchFromEntity(branch)
	result := r.db.WithContext(ctx).Create(branchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a branch by its ID.
func (r *branchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branchModel model.BranchModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&branchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBranchNotFound
		}
		return nil, result.Error
	}
	return branchModel.ToEntity(), nil
}

// FindByGym lists all branches of a gym ordered by name.
func (r *branchRepository) FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Branch, error) {
	var branchModels []model.BranchModel
	result := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("name ASC").
		Find(&branchModels)
	if result.Error != nil {
		return nil, result.Error
	}

	branches := make([]*entity.Branch, len(branchModels))
	for i, bm := range branchModels {
		branches[i] = bm.ToEntity()
	}
	return branches, nil
}

// ExistsByNameAndGym checks whether a branch with the name exists for the gym.
func (r *branchRepository) ExistsByNameAndGym(ctx context.Context, name string, gymID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.BranchModel{}).
		Where("name = ? AND gym_id = ?", name, gymID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update persists changes to an existing branch.
func (r *branchRepository) Update(ctx context.Context, branch *entity.Branch) error {
	branchModel := model.BranchFromEntity(branch)
	result := r.db.WithContext(ctx).Save(branchModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a branch together with its operator accounts. Members
// keep their rows; their branch assignment is cleared so they become
// unassigned rather than orphaned.
func (r *branchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("branch_id = ?", id).Delete(&model.UserModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.MemberModel{}).
			Where("branch_id = ?", id).
			Update("branch_id", nil).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.BranchModel{}).Error
	})
}
