// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/domain/entity"
	domainerror "github.com/gym-manager/backend/internal/domain/error"
)

func seedUser(repo *fakeUserRepository, email, password string) *entity.User {
	user := entity.NewUser(uuid.New(), nil, "Test Owner", email, "hashed:"+password, entity.RoleOwner)
	repo.usersByEmail[email] = user
	repo.usersByID[user.ID] = user
	return user
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return tokens and user", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		user := seedUser(userRepo, "owner@example.com", "SecurePass123!")
		uc := NewLoginUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "SecurePass123!"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.User.ID != user.ID {
			t.Errorf("expected user %s, got %s", user.ID, out.User.ID)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected tokens in output")
		}
	})

	t.Run("unknown email returns invalid credentials", func(t *testing.T) {
		uc := NewLoginUseCase(newFakeUserRepository(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginInput{Email: "nobody@example.com", Password: "SecurePass123!"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})

	t.Run("wrong password returns invalid credentials", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		seedUser(userRepo, "owner@example.com", "SecurePass123!")
		uc := NewLoginUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, LoginInput{Email: "owner@example.com", Password: "WrongPass123!"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidCredentials)
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new pair and revokes the old one", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		user := seedUser(userRepo, "owner@example.com", "SecurePass123!")
		tokenService := newFakeTokenService()

		pair, err := tokenService.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate tokens: %v", err)
		}

		uc := NewRefreshTokenUseCase(userRepo, tokenService)
		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a new token pair")
		}

		if !tokenService.invalidated[pair.RefreshToken] {
			t.Error("expected presented refresh token to be revoked")
		}

		// Single use: the same token must not refresh twice
		_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("unknown refresh token is rejected", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeUserRepository(), newFakeTokenService())

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "bogus"})
		assertAuthErrorCode(t, err, domainerror.ErrCodeInvalidToken)
	})

	t.Run("deleted account cannot refresh", func(t *testing.T) {
		userRepo := newFakeUserRepository()
		user := seedUser(userRepo, "owner@example.com", "SecurePass123!")
		tokenService := newFakeTokenService()

		pair, err := tokenService.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate tokens: %v", err)
		}

		if err := userRepo.Delete(ctx, user.ID); err != nil {
			t.Fatalf("failed to delete user: %v", err)
		}

		uc := NewRefreshTokenUseCase(userRepo, tokenService)
		_, err = uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assertAuthErrorCode(t, err, domainerror.ErrCodeUserNotFound)
	})
}
