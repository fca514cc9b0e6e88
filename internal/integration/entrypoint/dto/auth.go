// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/gym-manager/backend/internal/domain/entity"
)

// RegisterOwnerRequest represents the request body for gym sign-up.
type RegisterOwnerRequest struct {
	GymName  string `json:"gym_name" binding:"required,min=1,max=100"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// RegisterOwnerResponse represents the response for gym sign-up.
type RegisterOwnerResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
	Gym          GymResponse  `json:"gym"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents an account in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	GymID     string    `json:"gym_id"`
	BranchID  *string   `json:"branch_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GymResponse represents a gym tenant in API responses.
type GymResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	var branchID *string
	if user.BranchID != nil {
		id := user.BranchID.String()
		branchID = &id
	}
	return UserResponse{
		ID:        user.ID.String(),
		GymID:     user.GymID.String(),
		BranchID:  branchID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToGymResponse converts a domain Gym entity to a GymResponse DTO.
func ToGymResponse(gym *entity.Gym) GymResponse {
	return GymResponse{
		ID:        gym.ID.String(),
		Name:      gym.Name,
		CreatedAt: gym.CreatedAt,
	}
}
