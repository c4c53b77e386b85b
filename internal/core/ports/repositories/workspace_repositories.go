package repositories

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspaces.
type WorkspaceReader interface {
	// FindWorkspaceByID returns the workspace or apperrors.ErrNotFound.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	// ListWorkspacesByUserID returns every workspace the user owns or is a
	// member of, newest first.
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines mutations on workspaces. Deletion cascades to
// boards, groups, items, comments, checklists and activity at the storage
// layer.
type WorkspaceWriter interface {
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error
	UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// WorkspaceMemberRepository manages the membership set of a workspace.
type WorkspaceMemberRepository interface {
	AddMember(ctx context.Context, member domain.WorkspaceMember) error
	// FindMember returns apperrors.ErrNotFound when the user is not a member.
	FindMember(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceMember, error)
	ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error)
	RemoveMember(ctx context.Context, workspaceID, memberID string) error
}

// WorkspaceRepositoryFacade bundles all workspace persistence concerns.
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
	WorkspaceMemberRepository
}
