// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// GetBranchDashboardInput represents the input for the single-branch overview.
type GetBranchDashboardInput struct {
	BranchID uuid.UUID
}

// GetBranchDashboardOutput represents the single-branch overview result.
type GetBranchDashboardOutput struct {
	Overview *entity.BranchOverview
}

// GetBranchDashboardUseCase computes the branch operator's dashboard: the
// branch aggregate plus recent-activity counters (new members today and
// this week, today's income and expenses).
type GetBranchDashboardUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetBranchDashboardUseCase creates a new GetBranchDashboardUseCase instance.
func NewGetBranchDashboardUseCase(dashboardRepo DashboardRepository) *GetBranchDashboardUseCase {
	return &GetBranchDashboardUseCase{
		dashboardRepo: dashboardRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute builds the branch overview. The branch lookup is essential;
// member and financial queries degrade to empty/zero values on failure.
func (uc *GetBranchDashboardUseCase) Execute(ctx context.Context, input GetBranchDashboardInput) (*GetBranchDashboardOutput, error) {
	if input.BranchID == uuid.Nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingBranchID,
			"branch id is required",
			domainerror.ErrMissingBranchID,
		)
	}

	now := uc.now()

	branch, err := uc.dashboardRepo.GetBranch(ctx, input.BranchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	members, err := uc.dashboardRepo.ListMembersByBranch(ctx, input.BranchID)
	if err != nil {
		slog.Warn("branch member query failed, continuing with empty member set",
			"branch_id", input.BranchID,
			"error", err,
		)
		members = nil
	}

	allTime, err := uc.dashboardRepo.GetBranchFinancials(ctx, input.BranchID)
	if err != nil {
		slog.Warn("branch financial query failed, reporting zeroed figures",
			"branch_id", input.BranchID,
			"error", err,
		)
		allTime = ZeroFinancials()
	}

	dayStart := startOfDay(now)
	today, err := uc.dashboardRepo.GetBranchFinancialsBetween(ctx, input.BranchID, dayStart, now)
	if err != nil {
		slog.Warn("branch daily financial query failed, reporting zeroed figures",
			"branch_id", input.BranchID,
			"error", err,
		)
		today = ZeroFinancials()
	}

	weekStart := startOfWeek(now)
	newToday, newThisWeek := 0, 0
	for _, m := range members {
		if !m.CreatedAt.Before(dayStart) {
			newToday++
		}
		if !m.CreatedAt.Before(weekStart) {
			newThisWeek++
		}
	}

	return &GetBranchDashboardOutput{
		Overview: &entity.BranchOverview{
			BranchDashboardData: aggregateBranch(*branch, members, allTime, now),
			NewMembersToday:     newToday,
			NewMembersThisWeek:  newThisWeek,
			TodayIncome:         today.TotalIncome,
			TodayExpenses:       today.TotalExpenses,
		},
	}, nil
}
