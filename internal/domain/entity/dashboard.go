// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BranchDashboardData is the derived aggregate for one branch. It is never
// persisted; it is recomputed from raw records on every request.
type BranchDashboardData struct {
	BranchID      uuid.UUID
	Name          string
	Address       string
	Phone         string
	ManagerName   string
	Status        BranchStatus
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	MemberCount   int
	ActiveMembers int
}

// GymDashboardSummary is the gym-wide rollup across all branch aggregates.
// TotalMembers counts every member of the gym including those without a
// branch assignment, so it may exceed the sum of per-branch member counts.
type GymDashboardSummary struct {
	TotalBranches int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalMembers  int
	ActiveMembers int
}

// GymDashboard combines per-branch aggregates with the gym-wide summary.
type GymDashboard struct {
	Branches []BranchDashboardData
	Summary  GymDashboardSummary
}

// BranchOverview is the single-branch dashboard for branch operators:
// the branch aggregate plus recent-activity counters.
type BranchOverview struct {
	BranchDashboardData
	NewMembersToday    int
	NewMembersThisWeek int
	TodayIncome        decimal.Decimal
	TodayExpenses      decimal.Decimal
}
