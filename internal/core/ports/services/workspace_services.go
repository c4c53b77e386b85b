package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
	"github.com/planlane/task_board_app/internal/dto"
)

// WorkspaceSvcFacade covers workspace CRUD and membership management.
// Update/delete and member mutations are owner-only.
type WorkspaceSvcFacade interface {
	CreateWorkspace(ctx context.Context, creatorUserID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, actorID, workspaceID string) (*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, actorID, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, actorID, workspaceID string) error

	AddMember(ctx context.Context, actorID, workspaceID string, req dto.AddMemberRequest) (*domain.WorkspaceMember, error)
	RemoveMember(ctx context.Context, actorID, workspaceID, memberID string) error
	// ListMembers returns the owner alongside the member list.
	ListMembers(ctx context.Context, actorID, workspaceID string) (*domain.User, []domain.WorkspaceMember, error)
}
