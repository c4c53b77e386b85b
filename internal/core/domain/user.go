package domain

import "time"

// User represents a registered account. Identity verification itself is
// external; services only consume the user ID.
type User struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	AvatarURL    *string    `json:"avatarURL"`
	GroqAPIKey   *string    `json:"-"` // per-user key for the AI brief collaborator
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}
