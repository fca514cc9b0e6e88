// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/domain/entity"
)

var testNow = time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC) // a Wednesday

func timePtr(t time.Time) *time.Time {
	return &t
}

func memberWithWindow(branchID uuid.UUID, start, end *time.Time) *entity.Member {
	return &entity.Member{
		ID:                  uuid.New(),
		GymID:               uuid.New(),
		BranchID:            branchID,
		Name:                "Test Member",
		MembershipStartDate: start,
		MembershipEndDate:   end,
		CreatedAt:           testNow.AddDate(0, -1, 0),
	}
}

func TestIsActiveByEndDate(t *testing.T) {
	branchID := uuid.New()

	t.Run("nil end date is active", func(t *testing.T) {
		m := memberWithWindow(branchID, nil, nil)
		if !isActiveByEndDate(m, testNow) {
			t.Error("expected member with nil end date to be active")
		}
	})

	t.Run("future end date is active", func(t *testing.T) {
		m := memberWithWindow(branchID, nil, timePtr(testNow.AddDate(0, 1, 0)))
		if !isActiveByEndDate(m, testNow) {
			t.Error("expected member with future end date to be active")
		}
	})

	t.Run("end date exactly now is active", func(t *testing.T) {
		m := memberWithWindow(branchID, nil, timePtr(testNow))
		if !isActiveByEndDate(m, testNow) {
			t.Error("expected member ending exactly now to be active")
		}
	})

	t.Run("past end date is inactive", func(t *testing.T) {
		m := memberWithWindow(branchID, nil, timePtr(testNow.AddDate(0, 0, -1)))
		if isActiveByEndDate(m, testNow) {
			t.Error("expected member with past end date to be inactive")
		}
	})

	t.Run("future start date does not disqualify", func(t *testing.T) {
		m := memberWithWindow(branchID, timePtr(testNow.AddDate(0, 0, 7)), timePtr(testNow.AddDate(0, 1, 0)))
		if !isActiveByEndDate(m, testNow) {
			t.Error("expected future-start member to be active under the end-date rule")
		}
	})
}

func TestIsActiveInWindow(t *testing.T) {
	branchID := uuid.New()

	t.Run("open window on both ends is active", func(t *testing.T) {
		m := memberWithWindow(branchID, nil, nil)
		if !isActiveInWindow(m, testNow) {
			t.Error("expected member with no window bounds to be active")
		}
	})

	t.Run("future start date is inactive", func(t *testing.T) {
		m := memberWithWindow(branchID, timePtr(testNow.AddDate(0, 0, 7)), timePtr(testNow.AddDate(0, 1, 0)))
		if isActiveInWindow(m, testNow) {
			t.Error("expected future-start member to be inactive under the window rule")
		}
	})

	t.Run("start date exactly now is active", func(t *testing.T) {
		m := memberWithWindow(branchID, timePtr(testNow), timePtr(testNow.AddDate(0, 1, 0)))
		if !isActiveInWindow(m, testNow) {
			t.Error("expected member starting exactly now to be active")
		}
	})

	t.Run("past end date is inactive", func(t *testing.T) {
		m := memberWithWindow(branchID, timePtr(testNow.AddDate(0, -2, 0)), timePtr(testNow.AddDate(0, -1, 0)))
		if isActiveInWindow(m, testNow) {
			t.Error("expected expired member to be inactive")
		}
	})
}

// The branch-level rule and the gym-wide rule deliberately differ: a member
// whose membership has not started yet counts as active in their branch's
// aggregate but not in the gym-wide summary.
func TestActiveRulesDiverge(t *testing.T) {
	branchID := uuid.New()
	m := memberWithWindow(branchID, timePtr(testNow.AddDate(0, 0, 3)), timePtr(testNow.AddDate(0, 2, 0)))

	if !isActiveByEndDate(m, testNow) {
		t.Error("expected future-start member to be active at branch level")
	}
	if isActiveInWindow(m, testNow) {
		t.Error("expected future-start member to be inactive at gym level")
	}
}

func TestGroupMembersByBranch(t *testing.T) {
	branchA := uuid.New()
	branchB := uuid.New()

	members := []*entity.Member{
		memberWithWindow(branchA, nil, nil),
		memberWithWindow(branchB, nil, nil),
		memberWithWindow(branchA, nil, nil),
		memberWithWindow(uuid.Nil, nil, nil),
	}

	grouped := groupMembersByBranch(members)

	if len(grouped[branchA]) != 2 {
		t.Errorf("expected 2 members in branch A, got %d", len(grouped[branchA]))
	}
	if len(grouped[branchB]) != 1 {
		t.Errorf("expected 1 member in branch B, got %d", len(grouped[branchB]))
	}
	if len(grouped[unassignedBranchKey]) != 1 {
		t.Errorf("expected 1 unassigned member, got %d", len(grouped[unassignedBranchKey]))
	}
}

func TestAggregateBranch(t *testing.T) {
	branch := entity.Branch{
		ID:          uuid.New(),
		Name:        "Downtown",
		Address:     "1 Main St",
		Phone:       "555-0100",
		ManagerName: "Dana",
		Status:      entity.BranchStatusActive,
	}

	members := []*entity.Member{
		memberWithWindow(branch.ID, nil, nil),
		memberWithWindow(branch.ID, nil, timePtr(testNow.AddDate(0, 0, -1))),
		memberWithWindow(branch.ID, nil, timePtr(testNow.AddDate(0, 1, 0))),
	}

	fin := &BranchFinancials{
		TotalIncome:   decimal.NewFromFloat(1500.50),
		TotalExpenses: decimal.NewFromFloat(2000.25),
	}

	got := aggregateBranch(branch, members, fin, testNow)

	if got.BranchID != branch.ID {
		t.Errorf("expected branch id %s, got %s", branch.ID, got.BranchID)
	}
	if got.MemberCount != 3 {
		t.Errorf("expected member count 3, got %d", got.MemberCount)
	}
	if got.ActiveMembers != 2 {
		t.Errorf("expected 2 active members, got %d", got.ActiveMembers)
	}
	// Net profit may be negative; it is never clamped to zero.
	if !got.NetProfit.Equal(decimal.NewFromFloat(-499.75)) {
		t.Errorf("expected net profit -499.75, got %s", got.NetProfit)
	}
}

func TestSummarize(t *testing.T) {
	branchID := uuid.New()

	branches := []entity.BranchDashboardData{
		{
			BranchID:      branchID,
			TotalIncome:   decimal.NewFromInt(100),
			TotalExpenses: decimal.NewFromInt(40),
			NetProfit:     decimal.NewFromInt(60),
		},
		{
			BranchID:      uuid.New(),
			TotalIncome:   decimal.NewFromInt(50),
			TotalExpenses: decimal.NewFromInt(80),
			NetProfit:     decimal.NewFromInt(-30),
		},
	}

	allMembers := []*entity.Member{
		memberWithWindow(branchID, nil, nil),
		memberWithWindow(uuid.Nil, nil, nil),
		memberWithWindow(branchID, nil, timePtr(testNow.AddDate(0, 0, -1))),
	}

	summary := summarize(branches, allMembers, testNow)

	if summary.TotalBranches != 2 {
		t.Errorf("expected 2 branches, got %d", summary.TotalBranches)
	}
	if !summary.TotalIncome.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected total income 150, got %s", summary.TotalIncome)
	}
	if !summary.TotalExpenses.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected total expenses 120, got %s", summary.TotalExpenses)
	}
	if !summary.TotalProfit.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected total profit 30, got %s", summary.TotalProfit)
	}
	// Unassigned members count toward the gym-wide total.
	if summary.TotalMembers != 3 {
		t.Errorf("expected 3 total members, got %d", summary.TotalMembers)
	}
	if summary.ActiveMembers != 2 {
		t.Errorf("expected 2 active members, got %d", summary.ActiveMembers)
	}
}

func TestStartOfDay(t *testing.T) {
	got := startOfDay(testNow)
	want := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestStartOfWeek(t *testing.T) {
	t.Run("midweek snaps back to Monday", func(t *testing.T) {
		got := startOfWeek(testNow)
		want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("Monday is its own week start", func(t *testing.T) {
		monday := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
		got := startOfWeek(monday)
		want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("Sunday belongs to the preceding Monday", func(t *testing.T) {
		sunday := time.Date(2025, 6, 22, 23, 59, 0, 0, time.UTC)
		got := startOfWeek(sunday)
		want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}
