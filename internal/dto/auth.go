package dto

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// CreateUserRequest defines the data needed to create a back-office user.
type CreateUserRequest struct {
	Name         string          `json:"name" validate:"required"`
	MobileNumber string          `json:"mobileNumber"`
	Username     string          `json:"username" validate:"required,min=3,max=64"`
	Password     string          `json:"password" validate:"required,min=8"`
	Role         domain.UserRole `json:"role" validate:"required,oneof=manager admin"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Role     domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}
