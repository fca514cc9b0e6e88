// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// unassignedBranchKey groups members that have no branch assignment. They
// are skipped during per-branch aggregation but still count toward the
// gym-wide member totals.
var unassignedBranchKey = uuid.Nil

// isActiveByEndDate reports whether a member counts as active for a branch
// aggregate. Branch-level activity consults the end date only: a nil end
// date means the membership never expires, and a future start date does
// not disqualify the member here. The gym-wide summary applies the
// stricter window rule in isActiveInWindow; the two rules intentionally
// differ.
func isActiveByEndDate(m *entity.Member, now time.Time) bool {
	return m.MembershipEndDate == nil || !m.MembershipEndDate.Before(now)
}

// isActiveInWindow reports whether a member's membership window contains
// the reference instant: the start date must have passed (or be absent)
// and the end date must not have passed (or be absent).
func isActiveInWindow(m *entity.Member, now time.Time) bool {
	if m.MembershipStartDate != nil && m.MembershipStartDate.After(now) {
		return false
	}
	return m.MembershipEndDate == nil || !m.MembershipEndDate.Before(now)
}

// groupMembersByBranch buckets members by branch id. Members without a
// branch land under unassignedBranchKey.
func groupMembersByBranch(members []*entity.Member) map[uuid.UUID][]*entity.Member {
	grouped := make(map[uuid.UUID][]*entity.Member)
	for _, m := range members {
		grouped[m.BranchID] = append(grouped[m.BranchID], m)
	}
	return grouped
}

// aggregateBranch builds the derived aggregate for one branch from its
// descriptor, its members and its financial snapshot.
func aggregateBranch(branch entity.Branch, members []*entity.Member, fin *BranchFinancials, now time.Time) entity.BranchDashboardData {
	active := 0
	for _, m := range members {
		if isActiveByEndDate(m, now) {
			active++
		}
	}

	return entity.BranchDashboardData{
		BranchID:      branch.ID,
		Name:          branch.Name,
		Address:       branch.Address,
		Phone:         branch.Phone,
		ManagerName:   branch.ManagerName,
		Status:        branch.Status,
		TotalIncome:   fin.TotalIncome,
		TotalExpenses: fin.TotalExpenses,
		NetProfit:     fin.TotalIncome.Sub(fin.TotalExpenses),
		MemberCount:   len(members),
		ActiveMembers: active,
	}
}

// summarize rolls all branch aggregates plus the full member set into the
// gym-wide summary. TotalMembers counts every gym member, including
// unassigned ones, so it is not necessarily the sum of per-branch counts.
func summarize(branches []entity.BranchDashboardData, allMembers []*entity.Member, now time.Time) entity.GymDashboardSummary {
	summary := entity.GymDashboardSummary{
		TotalBranches: len(branches),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalProfit:   decimal.Zero,
		TotalMembers:  len(allMembers),
	}

	for _, b := range branches {
		summary.TotalIncome = summary.TotalIncome.Add(b.TotalIncome)
		summary.TotalExpenses = summary.TotalExpenses.Add(b.TotalExpenses)
		summary.TotalProfit = summary.TotalProfit.Add(b.NetProfit)
	}

	for _, m := range allMembers {
		if isActiveInWindow(m, now) {
			summary.ActiveMembers++
		}
	}

	return summary
}

// startOfDay returns UTC midnight of the given instant.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns UTC midnight of the Monday of the given instant's week.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
