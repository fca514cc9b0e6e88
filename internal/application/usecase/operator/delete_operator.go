// Package operator contains staff account-related use cases.
package operator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// DeleteOperatorInput represents the input for deleting a staff account.
type DeleteOperatorInput struct {
	GymID      uuid.UUID
	OperatorID uuid.UUID
}

// DeleteOperatorOutput represents the output of deleting a staff account.
type DeleteOperatorOutput struct {
	Message string
}

// DeleteOperatorUseCase handles staff account deletion logic.
type DeleteOperatorUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteOperatorUseCase creates a new DeleteOperatorUseCase instance.
func NewDeleteOperatorUseCase(userRepo adapter.UserRepository) *DeleteOperatorUseCase {
	return &DeleteOperatorUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the staff account deletion. Owner accounts cannot be
// deleted through this operation.
func (uc *DeleteOperatorUseCase) Execute(ctx context.Context, input DeleteOperatorInput) (*DeleteOperatorOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.OperatorID)
	if err != nil || user.GymID != input.GymID {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"operator not found",
			domainerror.ErrUserNotFound,
		)
	}

	if !user.IsOperator() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"only operator accounts can be deleted",
			domainerror.ErrForbiddenRole,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.OperatorID); err != nil {
		return nil, fmt.Errorf("failed to delete operator: %w", err)
	}

	return &DeleteOperatorOutput{Message: "Operator deleted successfully"}, nil
}
