// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

const testSecret = "test-jwt-secret-key-for-testing-purposes"

func newTestTokenStore(t *testing.T) TokenStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisTokenStore(client)
}

func testOwner() *entity.User {
	return entity.NewUser(uuid.New(), nil, "Owner", "owner@example.com", "hash", entity.RoleOwner)
}

func testReceptionist(branchID uuid.UUID) *entity.User {
	return entity.NewUser(uuid.New(), &branchID, "Front Desk", "desk@example.com", "hash", entity.RoleReceptionist)
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	store := newTestTokenStore(t)
	service := NewTokenService(testSecret, store)

	t.Run("access token round-trips owner claims", func(t *testing.T) {
		user := testOwner()

		pair, err := service.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected non-empty tokens")
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("failed to validate access token: %v", err)
		}

		if claims.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
		}
		if claims.GymID != user.GymID {
			t.Errorf("expected gym ID %s, got %s", user.GymID, claims.GymID)
		}
		if claims.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, claims.Email)
		}
		if claims.Role != entity.RoleOwner {
			t.Errorf("expected role %s, got %s", entity.RoleOwner, claims.Role)
		}
		if claims.BranchID != nil {
			t.Errorf("expected nil branch ID for owner, got %s", claims.BranchID)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("expected access token expiry in the future")
		}
	})

	t.Run("branch claim round-trips for operators", func(t *testing.T) {
		branchID := uuid.New()
		user := testReceptionist(branchID)

		pair, err := service.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("failed to validate access token: %v", err)
		}

		if claims.BranchID == nil {
			t.Fatal("expected branch ID claim for receptionist")
		}
		if *claims.BranchID != branchID {
			t.Errorf("expected branch ID %s, got %s", branchID, *claims.BranchID)
		}
		if claims.Role != entity.RoleReceptionist {
			t.Errorf("expected role %s, got %s", entity.RoleReceptionist, claims.Role)
		}
	})

	t.Run("refresh token validates while registered", func(t *testing.T) {
		user := testOwner()

		pair, err := service.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		claims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("failed to validate refresh token: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("expected user ID %s, got %s", user.ID, claims.UserID)
		}
	})

	t.Run("revoked refresh token fails validation", func(t *testing.T) {
		user := testOwner()

		pair, err := service.GenerateTokenPair(ctx, user)
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("failed to invalidate refresh token: %v", err)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected revoked refresh token to fail validation")
		}
	})

	t.Run("access token is rejected as refresh token", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, testOwner())
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to be rejected as refresh token")
		}
	})

	t.Run("refresh token is rejected as access token", func(t *testing.T) {
		pair, err := service.GenerateTokenPair(ctx, testOwner())
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to be rejected as access token")
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		otherService := NewTokenService("another-secret", store)

		pair, err := otherService.GenerateTokenPair(ctx, testOwner())
		if err != nil {
			t.Fatalf("failed to generate token pair: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected token with wrong signature to be rejected")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, "not-a-jwt"); err == nil {
			t.Error("expected malformed token to be rejected")
		}
	})
}

func TestRedisTokenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saved token is valid until invalidated", func(t *testing.T) {
		store := newTestTokenStore(t)

		if err := store.SaveRefreshToken(ctx, "token-a", time.Hour); err != nil {
			t.Fatalf("failed to save token: %v", err)
		}

		valid, err := store.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("failed to check token: %v", err)
		}
		if !valid {
			t.Error("expected saved token to be valid")
		}

		if err := store.InvalidateRefreshToken(ctx, "token-a"); err != nil {
			t.Fatalf("failed to invalidate token: %v", err)
		}

		valid, err = store.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("failed to check token: %v", err)
		}
		if valid {
			t.Error("expected invalidated token to be invalid")
		}
	})

	t.Run("unknown token is invalid", func(t *testing.T) {
		store := newTestTokenStore(t)

		valid, err := store.IsRefreshTokenValid(ctx, "never-saved")
		if err != nil {
			t.Fatalf("failed to check token: %v", err)
		}
		if valid {
			t.Error("expected unknown token to be invalid")
		}
	})

	t.Run("invalidating unknown token does not error", func(t *testing.T) {
		store := newTestTokenStore(t)

		if err := store.InvalidateRefreshToken(ctx, "never-saved"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

var _ adapter.TokenService = (*tokenService)(nil)
