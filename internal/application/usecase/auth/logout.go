// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/gym-manager/backend/internal/application/adapter"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	RefreshToken string
}

// LogoutOutput represents the output of logout.
type LogoutOutput struct {
	Message string
}

// LogoutUseCase handles logout logic.
type LogoutUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(tokenService adapter.TokenService) *LogoutUseCase {
	return &LogoutUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout by invalidating the refresh token.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) (*LogoutOutput, error) {
	// Invalidate refresh token (ignore errors as the token might already be invalid)
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutOutput{
		Message: "Successfully logged out",
	}, nil
}
