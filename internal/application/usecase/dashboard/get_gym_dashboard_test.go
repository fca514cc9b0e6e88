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

// fakeDashboardRepository is a configurable in-memory DashboardRepository.
type fakeDashboardRepository struct {
	branch            *entity.Branch
	branchErr         error
	branches          []entity.Branch
	branchesErr       error
	gymMembers        []*entity.Member
	gymMembersErr     error
	branchMembers     []*entity.Member
	branchMembersErr  error
	financials        map[uuid.UUID]*BranchFinancials
	financialsErr     map[uuid.UUID]error
	rangeFinancials   *BranchFinancials
	rangeErr          error
	financialsCalls   int
	rangeCalledFrom   time.Time
	rangeCalledTo     time.Time
}

func (f *fakeDashboardRepository) GetBranch(ctx context.Context, branchID uuid.UUID) (*entity.Branch, error) {
	if f.branchErr != nil {
		return nil, f.branchErr
	}
	return f.branch, nil
}

func (f *fakeDashboardRepository) ListActiveBranches(ctx context.Context, gymID uuid.UUID) ([]entity.Branch, error) {
	if f.branchesErr != nil {
		return nil, f.branchesErr
	}
	return f.branches, nil
}

func (f *fakeDashboardRepository) ListMembersByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Member, error) {
	if f.gymMembersErr != nil {
		return nil, f.gymMembersErr
	}
	return f.gymMembers, nil
}

func (f *fakeDashboardRepository) ListMembersByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Member, error) {
	if f.branchMembersErr != nil {
		return nil, f.branchMembersErr
	}
	return f.branchMembers, nil
}

func (f *fakeDashboardRepository) GetBranchFinancials(ctx context.Context, branchID uuid.UUID) (*BranchFinancials, error) {
	f.financialsCalls++
	if err, ok := f.financialsErr[branchID]; ok {
		return nil, err
	}
	if fin, ok := f.financials[branchID]; ok {
		return fin, nil
	}
	return ZeroFinancials(), nil
}

func (f *fakeDashboardRepository) GetBranchFinancialsBetween(ctx context.Context, branchID uuid.UUID, from, to time.Time) (*BranchFinancials, error) {
	f.rangeCalledFrom = from
	f.rangeCalledTo = to
	if f.rangeErr != nil {
		return nil, f.rangeErr
	}
	if f.rangeFinancials != nil {
		return f.rangeFinancials, nil
	}
	return ZeroFinancials(), nil
}

func newGymUseCase(repo DashboardRepository) *GetGymDashboardUseCase {
	uc := NewGetGymDashboardUseCase(repo)
	uc.now = func() time.Time { return testNow }
	return uc
}

func testBranch(name string) entity.Branch {
	return entity.Branch{
		ID:     uuid.New(),
		GymID:  uuid.New(),
		Name:   name,
		Status: entity.BranchStatusActive,
	}
}

func TestGetGymDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	gymID := uuid.New()

	t.Run("missing gym id returns validation error", func(t *testing.T) {
		uc := newGymUseCase(&fakeDashboardRepository{})

		_, err := uc.Execute(ctx, GetGymDashboardInput{GymID: uuid.Nil})
		if err == nil {
			t.Fatal("expected error for missing gym id")
		}

		var dashErr *domainerror.DashboardError
		if !errors.As(err, &dashErr) {
			t.Fatalf("expected DashboardError, got %T", err)
		}
		if dashErr.Code != domainerror.ErrCodeMissingGymID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingGymID, dashErr.Code)
		}
	})

	t.Run("branch listing failure is fatal", func(t *testing.T) {
		repo := &fakeDashboardRepository{branchesErr: errors.New("connection refused")}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err == nil {
			t.Fatal("expected error when branch listing fails")
		}
		if out != nil {
			t.Error("expected nil output on fatal error")
		}
	})

	t.Run("gym with no branches yields zeroed dashboard", func(t *testing.T) {
		repo := &fakeDashboardRepository{branches: []entity.Branch{}}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Dashboard.Branches) != 0 {
			t.Errorf("expected 0 branches, got %d", len(out.Dashboard.Branches))
		}
		if out.Dashboard.Summary.TotalBranches != 0 {
			t.Errorf("expected 0 total branches, got %d", out.Dashboard.Summary.TotalBranches)
		}
		if !out.Dashboard.Summary.TotalIncome.Equal(decimal.Zero) {
			t.Errorf("expected zero income, got %s", out.Dashboard.Summary.TotalIncome)
		}
		if repo.financialsCalls != 0 {
			t.Errorf("expected no financial queries for empty gym, got %d", repo.financialsCalls)
		}
	})

	t.Run("aggregates branches with members and financials", func(t *testing.T) {
		branchA := testBranch("Downtown")
		branchB := testBranch("Uptown")

		repo := &fakeDashboardRepository{
			branches: []entity.Branch{branchA, branchB},
			gymMembers: []*entity.Member{
				memberWithWindow(branchA.ID, nil, nil),
				memberWithWindow(branchA.ID, nil, timePtr(testNow.AddDate(0, 0, -1))),
				memberWithWindow(branchB.ID, nil, nil),
			},
			financials: map[uuid.UUID]*BranchFinancials{
				branchA.ID: {TotalIncome: decimal.NewFromInt(1000), TotalExpenses: decimal.NewFromInt(400)},
				branchB.ID: {TotalIncome: decimal.NewFromInt(200), TotalExpenses: decimal.NewFromInt(500)},
			},
		}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Dashboard.Branches) != 2 {
			t.Fatalf("expected 2 branch aggregates, got %d", len(out.Dashboard.Branches))
		}

		// Results keep the branch listing order.
		first := out.Dashboard.Branches[0]
		if first.BranchID != branchA.ID {
			t.Errorf("expected first aggregate for branch A, got %s", first.Name)
		}
		if first.MemberCount != 2 {
			t.Errorf("expected branch A member count 2, got %d", first.MemberCount)
		}
		if first.ActiveMembers != 1 {
			t.Errorf("expected branch A active members 1, got %d", first.ActiveMembers)
		}
		if !first.NetProfit.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected branch A net profit 600, got %s", first.NetProfit)
		}

		second := out.Dashboard.Branches[1]
		if !second.NetProfit.Equal(decimal.NewFromInt(-300)) {
			t.Errorf("expected branch B net profit -300, got %s", second.NetProfit)
		}

		summary := out.Dashboard.Summary
		if !summary.TotalIncome.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected total income 1200, got %s", summary.TotalIncome)
		}
		if !summary.TotalProfit.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected total profit 300, got %s", summary.TotalProfit)
		}
		if summary.TotalMembers != 3 {
			t.Errorf("expected 3 total members, got %d", summary.TotalMembers)
		}
	})

	t.Run("member preload failure degrades to empty member data", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branches:      []entity.Branch{branch},
			gymMembersErr: errors.New("query timeout"),
			financials: map[uuid.UUID]*BranchFinancials{
				branch.ID: {TotalIncome: decimal.NewFromInt(100), TotalExpenses: decimal.Zero},
			},
		}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("expected member failure to be non-fatal, got %v", err)
		}

		if out.Dashboard.Branches[0].MemberCount != 0 {
			t.Errorf("expected 0 members, got %d", out.Dashboard.Branches[0].MemberCount)
		}
		// Financial figures are unaffected by the member failure.
		if !out.Dashboard.Branches[0].TotalIncome.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected income 100, got %s", out.Dashboard.Branches[0].TotalIncome)
		}
		if out.Dashboard.Summary.TotalMembers != 0 {
			t.Errorf("expected 0 total members, got %d", out.Dashboard.Summary.TotalMembers)
		}
	})

	t.Run("branch financial failure zeroes that branch only", func(t *testing.T) {
		healthy := testBranch("Healthy")
		broken := testBranch("Broken")

		repo := &fakeDashboardRepository{
			branches: []entity.Branch{healthy, broken},
			gymMembers: []*entity.Member{
				memberWithWindow(broken.ID, nil, nil),
			},
			financials: map[uuid.UUID]*BranchFinancials{
				healthy.ID: {TotalIncome: decimal.NewFromInt(900), TotalExpenses: decimal.NewFromInt(100)},
			},
			financialsErr: map[uuid.UUID]error{
				broken.ID: errors.New("replica down"),
			},
		}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("expected per-branch failure to be non-fatal, got %v", err)
		}

		if !out.Dashboard.Branches[0].TotalIncome.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected healthy branch income 900, got %s", out.Dashboard.Branches[0].TotalIncome)
		}

		degraded := out.Dashboard.Branches[1]
		if !degraded.TotalIncome.Equal(decimal.Zero) || !degraded.TotalExpenses.Equal(decimal.Zero) {
			t.Errorf("expected zeroed financials for failed branch, got income=%s expenses=%s",
				degraded.TotalIncome, degraded.TotalExpenses)
		}
		// Member data for the failed branch is still reported.
		if degraded.MemberCount != 1 {
			t.Errorf("expected failed branch to keep its member count, got %d", degraded.MemberCount)
		}
		if !out.Dashboard.Summary.TotalIncome.Equal(decimal.NewFromInt(900)) {
			t.Errorf("expected summary income 900, got %s", out.Dashboard.Summary.TotalIncome)
		}
	})

	t.Run("unassigned members count in totals but no branch", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branches: []entity.Branch{branch},
			gymMembers: []*entity.Member{
				memberWithWindow(branch.ID, nil, nil),
				memberWithWindow(uuid.Nil, nil, nil),
				memberWithWindow(uuid.Nil, nil, nil),
			},
		}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Dashboard.Branches[0].MemberCount != 1 {
			t.Errorf("expected 1 assigned member, got %d", out.Dashboard.Branches[0].MemberCount)
		}
		if out.Dashboard.Summary.TotalMembers != 3 {
			t.Errorf("expected 3 total members including unassigned, got %d", out.Dashboard.Summary.TotalMembers)
		}
		if out.Dashboard.Summary.ActiveMembers != 3 {
			t.Errorf("expected 3 active members, got %d", out.Dashboard.Summary.ActiveMembers)
		}
	})

	t.Run("future-start member active in branch but not in summary", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branches: []entity.Branch{branch},
			gymMembers: []*entity.Member{
				memberWithWindow(branch.ID, timePtr(testNow.AddDate(0, 0, 5)), timePtr(testNow.AddDate(0, 2, 0))),
			},
		}
		uc := newGymUseCase(repo)

		out, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Dashboard.Branches[0].ActiveMembers != 1 {
			t.Errorf("expected branch-level active count 1, got %d", out.Dashboard.Branches[0].ActiveMembers)
		}
		if out.Dashboard.Summary.ActiveMembers != 0 {
			t.Errorf("expected gym-level active count 0, got %d", out.Dashboard.Summary.ActiveMembers)
		}
	})

	t.Run("output is stable for a fixed clock", func(t *testing.T) {
		branch := testBranch("Downtown")
		repo := &fakeDashboardRepository{
			branches: []entity.Branch{branch},
			gymMembers: []*entity.Member{
				memberWithWindow(branch.ID, nil, timePtr(testNow.AddDate(0, 1, 0))),
			},
			financials: map[uuid.UUID]*BranchFinancials{
				branch.ID: {TotalIncome: decimal.NewFromInt(10), TotalExpenses: decimal.NewFromInt(3)},
			},
		}
		uc := newGymUseCase(repo)

		first, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, GetGymDashboardInput{GymID: gymID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		a, b := first.Dashboard.Summary, second.Dashboard.Summary
		if a.TotalMembers != b.TotalMembers || a.ActiveMembers != b.ActiveMembers ||
			!a.TotalIncome.Equal(b.TotalIncome) || !a.TotalProfit.Equal(b.TotalProfit) {
			t.Errorf("expected identical summaries, got %+v and %+v", a, b)
		}
	})
}
