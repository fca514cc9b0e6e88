// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// MemberRepository defines the interface for member persistence operations.
type MemberRepository interface {
	// Create creates a new member.
	Create(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByGym lists all members of a gym.
	FindByGym(ctx context.Context, gymID uuid.UUID) ([]*entity.Member, error)

	// FindByBranch lists all members assigned to a branch.
	FindByBranch(ctx context.Context, branchID uuid.UUID) ([]*entity.Member, error)

	// FindExpiringBetween lists members whose membership end date falls in the window.
	FindExpiringBetween(ctx context.Context, from, to time.Time) ([]*entity.Member, error)

	// Update persists changes to an existing member.
	Update(ctx context.Context, member *entity.Member) error

	// Delete removes a member (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error
}
