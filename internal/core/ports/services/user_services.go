package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
	"github.com/planlane/task_board_app/internal/dto"
)

// UserSvcFacade covers account registration and profile management.
type UserSvcFacade interface {
	// CreateUser registers a new account, hashing the password.
	CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}
