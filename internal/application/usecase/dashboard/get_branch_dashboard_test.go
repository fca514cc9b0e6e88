// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

func newBranchUseCase(repo DashboardRepository) *GetBranchDashboardUseCase {
	uc := NewGetBranchDashboardUseCase(repo)
	uc.now = func() time.Time { return testNow }
	return uc
}

func memberCreatedAt(branchID uuid.UUID, createdAt time.Time) *entity.Member {
	m := memberWithWindow(branchID, nil, nil)
	m.CreatedAt = createdAt
	return m
}

func TestGetBranchDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("missing branch id returns validation error", func(t *testing.T) {
		uc := newBranchUseCase(&fakeDashboardRepository{})

		_, err := uc.Execute(ctx, GetBranchDashboardInput{BranchID: uuid.Nil})
		if err == nil {
			t.Fatal("expected error for missing branch id")
		}

		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) {
			t.Fatalf("expected DashboardError, got %T", err)
		}
		if dashErr.Code != domainerror.ErrCodeMissingBranchID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingBranchID, dashErr.Code)
		}
	})

	t.Run("branch lookup failure is fatal", func(t *testing.T) {
		repo := &fakeDashboardRepository{branchErr: errors.New("not found")}
		uc := newBranchUseCase(repo)

		out, err := uc.Execute(ctx, GetBranchDashboardInput{BranchID: uuid.New()})
		if err == nil {
			t.Fatal("expected error when branch lookup fails")
		}
		if out != nil {
			t.Error("expected nil output on fatal error")
		}
	})

	t.Run("builds overview with activity counters", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branch: &branch,
			branchMembers: []*entity.Member{
				memberCreatedAt(branch.ID, testNow.Add(-2*time.Hour)),           // today
				memberCreatedAt(branch.ID, testNow.AddDate(0, 0, -1)),           // this week
				memberCreatedAt(branch.ID, testNow.AddDate(0, 0, -10)),          // older
				memberCreatedAt(branch.ID, startOfWeek(testNow)),                // week boundary
			},
			financials: map[uuid.UUID]*BranchFinancials{
				branch.ID: {TotalIncome: decimal.NewFromInt(5000), TotalExpenses: decimal.NewFromInt(1200)},
			},
			rangeFinancials: &BranchFinancials{
				TotalIncome:   decimal.NewFromInt(150),
				TotalExpenses: decimal.NewFromInt(20),
			},
		}
		uc := newBranchUseCase(repo)

		out, err := uc.Execute(ctx, GetBranchDashboardInput{BranchID: branch.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ov := out.Overview
		if ov.BranchID != branch.ID {
			t.Errorf("expected branch id %s, got %s", branch.ID, ov.BranchID)
		}
		if ov.MemberCount != 4 {
			t.Errorf("expected 4 members, got %d", ov.MemberCount)
		}
		if ov.NewMembersToday != 1 {
			t.Errorf("expected 1 new member today, got %d", ov.NewMembersToday)
		}
		// The week-start boundary itself is inclusive.
		if ov.NewMembersThisWeek != 3 {
			t.Errorf("expected 3 new members this week, got %d", ov.NewMembersThisWeek)
		}
		if !ov.NetProfit.Equal(decimal.NewFromInt(3800)) {
			t.Errorf("expected net profit 3800, got %s", ov.NetProfit)
		}
		if !ov.TodayIncome.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected today income 150, got %s", ov.TodayIncome)
		}
		if !ov.TodayExpenses.Equal(decimal.NewFromInt(20)) {
			t.Errorf("expected today expenses 20, got %s", ov.TodayExpenses)
		}

		// The daily query window runs from UTC midnight to now.
		if !repo.rangeCalledFrom.Equal(startOfDay(testNow)) {
			t.Errorf("expected range start %s, got %s", startOfDay(testNow), repo.rangeCalledFrom)
		}
		if !repo.rangeCalledTo.Equal(testNow) {
			t.Errorf("expected range end %s, got %s", testNow, repo.rangeCalledTo)
		}
	})

	t.Run("member query failure degrades to empty counters", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branch:           &branch,
			branchMembersErr: errors.New("query timeout"),
			financials: map[uuid.UUID]*BranchFinancials{
				branch.ID: {TotalIncome: decimal.NewFromInt(100), TotalExpenses: decimal.Zero},
			},
		}
		uc := newBranchUseCase(repo)

		out, err := uc.Execute(ctx, GetBranchDashboardInput{BranchID: branch.ID})
		if err != nil {
			t.Fatalf("expected member failure to be non-fatal, got %v", err)
		}

		if out.Overview.MemberCount != 0 || out.Overview.NewMembersToday != 0 {
			t.Errorf("expected zeroed member counters, got count=%d today=%d",
				out.Overview.MemberCount, out.Overview.NewMembersToday)
		}
		if !out.Overview.TotalIncome.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected income 100, got %s", out.Overview.TotalIncome)
		}
	})

	t.Run("financial failures degrade to zeroed figures", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branch: &branch,
			branchMembers: []*entity.Member{
				memberCreatedAt(branch.ID, testNow.Add(-1*time.Hour)),
			},
			financialsErr: map[uuid.UUID]error{
				branch.ID: errors.New("replica down"),
			},
			rangeErr: errors.New("replica down"),
		}
		uc := newBranchUseCase(repo)

		out, err := uc.Execute(ctx, GetBranchDashboardInput{BranchID: branch.ID})
		if err != nil {
			t.Fatalf("expected financial failure to be non-fatal, got %v", err)
		}

		ov := out.Overview
		if !ov.TotalIncome.Equal(decimal.Zero) || !ov.TodayIncome.Equal(decimal.Zero) {
			t.Errorf("expected zeroed financials, got total=%s today=%s", ov.TotalIncome, ov.TodayIncome)
		}
		if ov.MemberCount != 1 {
			t.Errorf("expected member data to survive financial failure, got %d", ov.MemberCount)
		}
	})
}
