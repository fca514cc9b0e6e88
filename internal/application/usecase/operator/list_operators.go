// Package operator contains staff account-related use cases.
package operator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

// ListOperatorsInput represents the input for listing staff accounts.
type ListOperatorsInput struct {
	GymID uuid.UUID
}

// ListOperatorsOutput represents the output of listing staff accounts.
type ListOperatorsOutput struct {
	Operators []*entity.User
}

// ListOperatorsUseCase handles staff account listing logic.
type ListOperatorsUseCase struct {
	userRepo adapter.UserRepository
}

// NewListOperatorsUseCase creates a new ListOperatorsUseCase instance.
func NewListOperatorsUseCase(userRepo adapter.UserRepository) *ListOperatorsUseCase {
	return &ListOperatorsUseCase{
		userRepo: userRepo,
	}
}

// Execute lists the gym's staff accounts.
func (uc *ListOperatorsUseCase) Execute(ctx context.Context, input ListOperatorsInput) (*ListOperatorsOutput, error) {
	operators, err := uc.userRepo.ListOperatorsByGym(ctx, input.GymID)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}

	return &ListOperatorsOutput{Operators: operators}, nil
}
