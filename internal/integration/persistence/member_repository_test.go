// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

func TestMemberRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by ID round-trips the member", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		gymID := uuid.New()
		branchID := uuid.New()
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		member := entity.NewMember(gymID, branchID, nil, "Alice", "alice@example.com", "555-0101", &start, &end)

		if err := repo.Create(ctx, member); err != nil {
			t.Fatalf("failed to create member: %v", err)
		}

		found, err := repo.FindByID(ctx, member.ID)
		if err != nil {
			t.Fatalf("failed to find member: %v", err)
		}
		if found.Name != "Alice" || found.Email != "alice@example.com" {
			t.Errorf("unexpected member data: %+v", found)
		}
		if found.BranchID != branchID {
			t.Errorf("expected branch %s, got %s", branchID, found.BranchID)
		}
		if found.MembershipEndDate == nil || !found.MembershipEndDate.Equal(end) {
			t.Errorf("expected end date %s, got %v", end, found.MembershipEndDate)
		}
	})

	t.Run("unknown ID returns member not found", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrMemberNotFound) {
			t.Errorf("expected ErrMemberNotFound, got %v", err)
		}
	})

	t.Run("unassigned member round-trips with nil branch column", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		member := entity.NewMember(uuid.New(), uuid.Nil, nil, "Drifter", "drifter@example.com", "", nil, nil)
		if err := repo.Create(ctx, member); err != nil {
			t.Fatalf("failed to create member: %v", err)
		}

		found, err := repo.FindByID(ctx, member.ID)
		if err != nil {
			t.Fatalf("failed to find member: %v", err)
		}
		if found.IsAssigned() {
			t.Error("expected member to be unassigned")
		}
	})

	t.Run("find by gym includes unassigned members", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		gymID := uuid.New()
		branchID := uuid.New()
		assigned := entity.NewMember(gymID, branchID, nil, "Assigned", "a@example.com", "", nil, nil)
		unassigned := entity.NewMember(gymID, uuid.Nil, nil, "Unassigned", "u@example.com", "", nil, nil)
		other := entity.NewMember(uuid.New(), branchID, nil, "Other Gym", "o@example.com", "", nil, nil)

		for _, m := range []*entity.Member{assigned, unassigned, other} {
			if err := repo.Create(ctx, m); err != nil {
				t.Fatalf("failed to create member: %v", err)
			}
		}

		members, err := repo.FindByGym(ctx, gymID)
		if err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		if len(members) != 2 {
			t.Errorf("expected 2 members, got %d", len(members))
		}
	})

	t.Run("find by branch excludes other branches", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		gymID := uuid.New()
		branchID := uuid.New()
		inBranch := entity.NewMember(gymID, branchID, nil, "In", "in@example.com", "", nil, nil)
		elsewhere := entity.NewMember(gymID, uuid.New(), nil, "Out", "out@example.com", "", nil, nil)

		for _, m := range []*entity.Member{inBranch, elsewhere} {
			if err := repo.Create(ctx, m); err != nil {
				t.Fatalf("failed to create member: %v", err)
			}
		}

		members, err := repo.FindByBranch(ctx, branchID)
		if err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		if len(members) != 1 || members[0].ID != inBranch.ID {
			t.Errorf("expected only the branch member, got %d members", len(members))
		}
	})

	t.Run("find expiring between honors the window", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		gymID := uuid.New()
		now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

		inWindow := now.Add(3 * 24 * time.Hour)
		pastWindow := now.Add(30 * 24 * time.Hour)
		expired := now.Add(-24 * time.Hour)

		soon := entity.NewMember(gymID, uuid.Nil, nil, "Soon", "soon@example.com", "", nil, &inWindow)
		later := entity.NewMember(gymID, uuid.Nil, nil, "Later", "later@example.com", "", nil, &pastWindow)
		gone := entity.NewMember(gymID, uuid.Nil, nil, "Gone", "gone@example.com", "", nil, &expired)
		forever := entity.NewMember(gymID, uuid.Nil, nil, "Forever", "forever@example.com", "", nil, nil)

		for _, m := range []*entity.Member{soon, later, gone, forever} {
			if err := repo.Create(ctx, m); err != nil {
				t.Fatalf("failed to create member: %v", err)
			}
		}

		members, err := repo.FindExpiringBetween(ctx, now, now.Add(7*24*time.Hour))
		if err != nil {
			t.Fatalf("failed to list expiring members: %v", err)
		}
		if len(members) != 1 || members[0].ID != soon.ID {
			t.Errorf("expected only the soon-expiring member, got %d members", len(members))
		}
	})

	t.Run("update can unassign a member from its branch", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		member := entity.NewMember(uuid.New(), uuid.New(), nil, "Alice", "alice@example.com", "", nil, nil)
		if err := repo.Create(ctx, member); err != nil {
			t.Fatalf("failed to create member: %v", err)
		}

		member.BranchID = uuid.Nil
		member.Name = "Alice Renamed"
		if err := repo.Update(ctx, member); err != nil {
			t.Fatalf("failed to update member: %v", err)
		}

		found, err := repo.FindByID(ctx, member.ID)
		if err != nil {
			t.Fatalf("failed to find member: %v", err)
		}
		if found.IsAssigned() {
			t.Error("expected member to be unassigned after update")
		}
		if found.Name != "Alice Renamed" {
			t.Errorf("expected updated name, got %s", found.Name)
		}
	})

	t.Run("delete is soft and hides the member from queries", func(t *testing.T) {
		repo := NewMemberRepository(newTestDB(t))

		gymID := uuid.New()
		member := entity.NewMember(gymID, uuid.Nil, nil, "Alice", "alice@example.com", "", nil, nil)
		if err := repo.Create(ctx, member); err != nil {
			t.Fatalf("failed to create member: %v", err)
		}

		if err := repo.Delete(ctx, member.ID); err != nil {
			t.Fatalf("failed to delete member: %v", err)
		}

		if _, err := repo.FindByID(ctx, member.ID); !errors.Is(err, domainerror.ErrMemberNotFound) {
			t.Errorf("expected deleted member to be hidden, got %v", err)
		}

		members, err := repo.FindByGym(ctx, gymID)
		if err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		if len(members) != 0 {
			t.Errorf("expected no members after delete, got %d", len(members))
		}
	})
}
