// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetBranch retrieves a single branch descriptor.
	GetBranch(ctx context.Context, branchID uuid.UUID) (*entity.Branch, error)

	// ListActiveBranches lists a gym's active branches ordered by name.
	ListActiveBranches(ctx context.Context, gymID uuid.UUID) ([]entity.Branch, error)

	// ListMembersByGym lists every member of a gym, including members
	// without a branch assignment.
	ListMembersByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Member, error)

	// ListMembersByBranch lists the members assigned to one branch.
	ListMembersByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Member, error)

	// GetBranchFinancials returns the all-time income/expense sums for a branch.
	GetBranchFinancials(ctx context.Context, branchID uuid.UUID) (*BranchFinancials, error)

	// GetBranchFinancialsBetween returns the income/expense sums for a
	// branch within [from, to].
	GetBranchFinancialsBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) (*BranchFinancials, error)
}

// BranchFinancials is the normalized financial snapshot for one branch.
// Sums are coerced to zero at the query boundary when no rows exist, so
// arithmetic downstream never sees absent values.
type BranchFinancials struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

// ZeroFinancials returns a BranchFinancials with both sums at zero. Used
// when a branch's financial query fails and the branch is reported with
// degraded figures instead of blocking the whole dashboard.
func ZeroFinancials() *BranchFinancials {
	return &BranchFinancials{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
}
