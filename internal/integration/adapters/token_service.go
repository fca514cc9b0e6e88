// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gym-manager/backend/internal/application/adapter"
	"github.com/gym-manager/backend/internal/domain/entity"
)

const (
	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// CustomClaims represents the custom claims for JWT tokens. Role and scope
// travel with the token so the middleware can authorize without a database
// round trip.
type CustomClaims struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	GymID     string  `json:"gym_id"`
	BranchID  *string `json:"branch_id,omitempty"`
	TokenType string  `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret     []byte
	tokenStore TokenStore
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenStore TokenStore) adapter.TokenService {
	return &tokenService{
		secret:     []byte(secret),
		tokenStore: tokenStore,
	}
}

// GenerateTokenPair generates a new access and refresh token pair for a user.
func (s *tokenService) GenerateTokenPair(ctx context.Context, user *entity.User) (*adapter.TokenPair, error) {
	accessToken, err := s.generateJWT(user, tokenTypeAccess, defaultAccessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(user, tokenTypeRefresh, defaultRefreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenStore.SaveRefreshToken(ctx, refreshToken, defaultRefreshTokenDuration); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access token")
	}

	return toTokenClaims(claims)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
// Revoked tokens fail validation even when the signature is intact.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeRefresh {
		return nil, fmt.Errorf("invalid token type: expected refresh token")
	}

	valid, err := s.tokenStore.IsRefreshTokenValid(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !valid {
		return nil, fmt.Errorf("refresh token has been revoked")
	}

	return toTokenClaims(claims)
}

// InvalidateRefreshToken invalidates a refresh token.
func (s *tokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	return s.tokenStore.InvalidateRefreshToken(ctx, token)
}

// generateJWT creates a new JWT token with the given parameters.
func (s *tokenService) generateJWT(user *entity.User, tokenType string, duration time.Duration) (string, error) {
	now := time.Now().UTC()

	var branchID *string
	if user.BranchID != nil {
		id := user.BranchID.String()
		branchID = &id
	}

	claims := CustomClaims{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		GymID:     user.GymID.String(),
		BranchID:  branchID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "gym-manager",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// toTokenClaims maps parsed JWT claims to the adapter representation.
func toTokenClaims(claims *CustomClaims) (*adapter.TokenClaims, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	gymID, err := uuid.Parse(claims.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym ID in token: %w", err)
	}

	var branchID *uuid.UUID
	if claims.BranchID != nil {
		id, err := uuid.Parse(*claims.BranchID)
		if err != nil {
			return nil, fmt.Errorf("invalid branch ID in token: %w", err)
		}
		branchID = &id
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		Role:      entity.Role(claims.Role),
		GymID:     gymID,
		BranchID:  branchID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
