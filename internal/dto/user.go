package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// --- Auth / User DTOs ---

// RegisterRequest defines data for creating a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest defines profile updates. All fields optional.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatarURL"`
	GroqAPIKey *string `json:"groqApiKey"`
}

// UserResponse defines data returned for a user. The password hash and the
// stored API key never leave the service; HasGroqKey only reports presence.
type UserResponse struct {
	UserID     string    `json:"userID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AvatarURL  *string   `json:"avatarURL,omitempty"`
	HasGroqKey bool      `json:"hasGroqKey"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		AvatarURL:  u.AvatarURL,
		HasGroqKey: u.GroqAPIKey != nil && *u.GroqAPIKey != "",
		CreatedAt:  u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to DTOs.
func ToListUsersResponse(users []domain.User) []UserResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return list
}
