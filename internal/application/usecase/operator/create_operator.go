// Package operator contains staff account-related use cases.
package operator

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// CreateOperatorInput represents the input for creating a staff account.
type CreateOperatorInput struct {
	GymID    uuid.UUID
	BranchID uuid.UUID
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// CreateOperatorOutput represents the output of creating a staff account.
type CreateOperatorOutput struct {
	User *entity.User
}

// CreateOperatorUseCase handles staff account creation logic. Operators are
// branch-scoped: branch admins and receptionists.
type CreateOperatorUseCase struct {
	userRepo        adapter.UserRepository
	branchRepo      adapter.BranchRepository
	passwordService adapter.PasswordService
}

// NewCreateOperatorUseCase creates a new CreateOperatorUseCase instance.
func NewCreateOperatorUseCase(
	userRepo adapter.UserRepository,
	branchRepo adapter.BranchRepository,
	passwordService adapter.PasswordService,
) *CreateOperatorUseCase {
	return &CreateOperatorUseCase{
		userRepo:        userRepo,
		branchRepo:      branchRepo,
		passwordService: passwordService,
	}
}

// Execute performs the staff account creation.
func (uc *CreateOperatorUseCase) Execute(ctx context.Context, input CreateOperatorInput) (*CreateOperatorOutput, error) {
	if input.Role != entity.RoleBranchAdmin && input.Role != entity.RoleReceptionist {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeForbiddenRole,
			"operator role must be 'branch_admin' or 'receptionist'",
			domainerror.ErrForbiddenRole,
		)
	}

	if !operatorEmailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Operators always belong to one branch of the gym
	branch, err := uc.branchRepo.FindByID(ctx, input.BranchID)
	if err != nil {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotFound,
			"branch not found",
			domainerror.ErrBranchNotFound,
		)
	}
	if branch.GymID != input.GymID {
		return nil, domainerror.NewBranchError(
			domainerror.ErrCodeBranchNotInGym,
			"branch does not belong to this gym",
			domainerror.ErrBranchNotInGym,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.GymID, &input.BranchID, input.Name, input.Email, passwordHash, input.Role)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create operator: %w", err)
	}

	return &CreateOperatorOutput{User: user}, nil
}

var operatorEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
