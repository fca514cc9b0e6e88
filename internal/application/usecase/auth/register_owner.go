// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

// RegisterOwnerInput represents the input for owner registration.
type RegisterOwnerInput struct {
	GymName  string
	Name     string
	Email    string
	Password string
}

// RegisterOwnerOutput represents the output of owner registration.
type RegisterOwnerOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Gym          *entity.Gym
}

// RegisterOwnerUseCase handles gym sign-up: it provisions the tenant and
// its owner account in one operation.
type RegisterOwnerUseCase struct {
	userRepo        adapter.UserRepository
	gymRepo         adapter.GymRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterOwnerUseCase creates a new RegisterOwnerUseCase instance.
func NewRegisterOwnerUseCase(
	userRepo adapter.UserRepository,
	gymRepo adapter.GymRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterOwnerUseCase {
	return &RegisterOwnerUseCase{
		userRepo:        userRepo,
		gymRepo:         gymRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the owner registration.
func (uc *RegisterOwnerUseCase) Execute(ctx context.Context, input RegisterOwnerInput) (*RegisterOwnerOutput, error) {
	// Validate required fields
	if input.GymName == "" || input.Name == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"gym name and owner name are required",
			domainerror.ErrMissingRequiredFields,
		)
	}

	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
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

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Provision the tenant before the account that owns it
	gym := entity.NewGym(input.GymName)
	if err := uc.gymRepo.Create(ctx, gym); err != nil {
		return nil, fmt.Errorf("failed to create gym: %w", err)
	}

	user := entity.NewUser(gym.ID, nil, input.Name, input.Email, passwordHash, entity.RoleOwner)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RegisterOwnerOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
		Gym:          gym,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
