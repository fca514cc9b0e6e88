// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gym-manager/backend/internal/application/usecase/dashboard"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
	"github.com/gym-manager/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetBranch retrieves a single branch descriptor.
func (r *dashboardRepository) GetBranch(ctx context.Context, branchID uuid.UUID) (*entity.Branch, error) {
	var branchModel model.BranchModel
	result := r.db.WithContext(ctx).Where("id = ?", branchID).First(&branchModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBranchNotFound
		}
		return nil, result.Error
	}
	return branchModel.ToEntity(), nil
}

// ListActiveBranches lists a gym's active branches ordered by name.
func (r *dashboardRepository) ListActiveBranches(ctx context.Context, gymID uuid.UUID) ([]entity.Branch, error) {
	var branchModels []model.BranchModel
	result := r.db.WithContext(ctx).
		Where("gym_id = ? AND status = ?", gymID, string(entity.BranchStatusActive)).
		Order("name ASC").
		Find(&branchModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list active branches: %w", result.Error)
	}

	branches := make([]entity.Branch, len(branchModels))
	for i, bm := range branchModels {
		branches[i] = *bm.ToEntity()
	}
	return branches, nil
}

// ListMembersByGym lists every member of a gym, including unassigned ones.
func (r *dashboardRepository) ListMembersByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Where("gym_id = ?", gymID).
		Find(&memberModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list gym members: %w", result.Error)
	}
	return toMemberEntities(memberModels), nil
}

// ListMembersByBranch lists the members assigned to one branch.
func (r *dashboardRepository) ListMembersByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Find(&memberModels)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list branch members: %w", result.Error)
	}
	return toMemberEntities(memberModels), nil
}

// GetBranchFinancials returns the all-time income/expense sums for a branch.
// Sums are coerced to zero in SQL so a branch with no records still reports
// usable figures.
func (r *dashboardRepository) GetBranchFinancials(ctx context.Context, branchID uuid.UUID) (*dashboard.BranchFinancials, error) {
	var result struct {
		TotalIncome   decimal.Decimal `gorm:"column:total_income"`
		TotalExpenses decimal.Decimal `gorm:"column:total_expenses"`
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM payments WHERE branch_id = ?), 0) as total_income,
			COALESCE((SELECT SUM(amount) FROM expenses WHERE branch_id = ?), 0) as total_expenses
	`

	err := r.db.WithContext(ctx).
		Raw(query, branchID, branchID).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get branch financials: %w", err)
	}

	return &dashboard.BranchFinancials{
		TotalIncome:   result.TotalIncome,
		TotalExpenses: result.TotalExpenses,
	}, nil
}

// GetBranchFinancialsBetween returns the income/expense sums for a branch
// within [from, to].
func (r *dashboardRepository) GetBranchFinancialsBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) (*dashboard.BranchFinancials, error) {
	var result struct {
		TotalIncome   decimal.Decimal `gorm:"column:total_income"`
		TotalExpenses decimal.Decimal `gorm:"column:total_expenses"`
	}

	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM payments WHERE branch_id = ? AND paid_at >= ? AND paid_at <= ?), 0) as total_income,
			COALESCE((SELECT SUM(amount) FROM expenses WHERE branch_id = ? AND spent_at >= ? AND spent_at <= ?), 0) as total_expenses
	`

	err := r.db.WithContext(ctx).
		Raw(query, branchID, from, to, branchID, from, to).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get branch financials for window: %w", err)
	}

	return &dashboard.BranchFinancials{
		TotalIncome:   result.TotalIncome,
		TotalExpenses: result.TotalExpenses,
	}, nil
}
