// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// GetGymDashboardInput represents the input for the gym-wide dashboard.
type GetGymDashboardInput struct {
	GymID uuid.UUID
}

// GetGymDashboardOutput represents the gym-wide dashboard result.
type GetGymDashboardOutput struct {
	Dashboard *entity.GymDashboard
}

// GetGymDashboardUseCase computes the owner's multi-branch dashboard:
// per-branch financial and membership aggregates plus a gym-wide summary.
// The computation is a pure read path; it holds no state between calls
// and recomputes everything from freshly fetched records.
type GetGymDashboardUseCase struct {
	dashboardRepo DashboardRepository
	now           func() time.Time
}

// NewGetGymDashboardUseCase creates a new GetGymDashboardUseCase instance.
func NewGetGymDashboardUseCase(dashboardRepo DashboardRepository) *GetGymDashboardUseCase {
	return &GetGymDashboardUseCase{
		dashboardRepo: dashboardRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Execute builds the gym dashboard.
//
// Branch listing failures abort the whole computation. The gym-wide member
// preload is best-effort: on failure the dashboard is produced with empty
// member data. Each branch's financial query runs concurrently; a failed
// query degrades that branch's financial figures to zero without affecting
// the other branches.
func (uc *GetGymDashboardUseCase) Execute(ctx context.Context, input GetGymDashboardInput) (*GetGymDashboardOutput, error) {
	if input.GymID == uuid.Nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingGymID,
			"gym id is required",
			domainerror.ErrMissingGymID,
		)
	}

	now := uc.now()

	branches, err := uc.dashboardRepo.ListActiveBranches(ctx, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	if len(branches) == 0 {
		return &GetGymDashboardOutput{
			Dashboard: &entity.GymDashboard{
				Branches: []entity.BranchDashboardData{},
				Summary:  summarize(nil, nil, now),
			},
		}, nil
	}

	// Preload all gym members in one query instead of one query per
	// branch. Member data is best-effort: the dashboard still renders
	// with zero member counts when the preload fails.
	members, err := uc.dashboardRepo.ListMembersByGym(ctx, input.GymID)
	if err != nil {
		slog.Warn("member preload failed, continuing with empty member set",
			"gym_id", input.GymID,
			"error", err,
		)
		members = nil
	}
	membersByBranch := groupMembersByBranch(members)

	// Branch financials are independent of each other: fan out one fetch
	// per branch and join. A failed fetch zeroes that branch only.
	financials := make([]*BranchFinancials, len(branches))
	var wg sync.WaitGroup
	for i := range branches {
		wg.Add(1)
		go func(i int, branchID uuid.UUID) {
			defer wg.Done()
			fin, err := uc.dashboardRepo.GetBranchFinancials(ctx, branchID)
			if err != nil {
				slog.Warn("branch financial query failed, reporting zeroed figures",
					"branch_id", branchID,
					"error", err,
				)
				financials[i] = ZeroFinancials()
				return
			}
			financials[i] = fin
		}(i, branches[i].ID)
	}
	wg.Wait()

	aggregates := make([]entity.BranchDashboardData, len(branches))
	for i, branch := range branches {
		aggregates[i] = aggregateBranch(branch, membersByBranch[branch.ID], financials[i], now)
	}

	return &GetGymDashboardOutput{
		Dashboard: &entity.GymDashboard{
			Branches: aggregates,
			Summary:  summarize(aggregates, members, now),
		},
	}, nil
}
