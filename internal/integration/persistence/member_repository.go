// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// memberRepository implements the adapter.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance.
func NewMemberRepository(db *gorm.DB) adapter.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// Create creates a new member in the database.
func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberModel := model.MemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a member by its ID.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberModel model.MemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMemberNotFound
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindByGym lists all members of a gym, including unassigned ones.
func (r *memberRepository) FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Order("created_at DESC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMemberEntities(memberModels), nil
}

// FindByBranch lists all members assigned to a branch.
func (r *memberRepository) FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("created_at DESC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMemberEntities(memberModels), nil
}

// FindExpiringBetween lists members whose membership end date falls in the window.
func (r *memberRepository) FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Where("membership_end_date IS NOT NULL").
		Where("membership_end_date >= ? AND membership_end_date <= ?", from, to).
		Order("membership_end_date ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toMemberEntities(memberModels), nil
}

// Update persists changes to an existing member.
func (r *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberModel := model.MemberFromEntity(member)
	// Save skips nil columns; a full column list keeps unassignment writable
	result := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Select("*").
		Updates(memberModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a member (soft delete).
func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MemberModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// toMemberEntities converts model rows to domain entities.
func toMemberEntities(memberModels []model.MemberModel) []*entity.Member {
	members := make([]*entity.Member, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members
}
