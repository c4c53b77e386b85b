package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// WorkspaceService handles business logic related to workspaces and
// memberships. Update, delete and member mutations are owner-only.
type WorkspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	access        portssvc.AccessSvcFacade
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(wr portsrepo.WorkspaceRepositoryFacade, ur portsrepo.UserRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.WorkspaceSvcFacade {
	return &WorkspaceService{
		workspaceRepo: wr,
		userRepo:      ur,
		access:        access,
	}
}

var _ portssvc.WorkspaceSvcFacade = (*WorkspaceService)(nil)

// CreateWorkspace creates a new workspace owned by the creator.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, creatorUserID string, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	now := time.Now()
	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     creatorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_name", req.Name))
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.LogInfo(ctx, "Workspace created", slog.String("workspace_id", workspace.WorkspaceID), slog.String("owner_id", creatorUserID))
	return &workspace, nil
}

// ListUserWorkspaces returns every workspace the user owns or is a member of.
func (s *WorkspaceService) ListUserWorkspaces(ctx context.Context, userID string) ([]domain.Workspace, error) {
	workspaces, err := s.workspaceRepo.ListWorkspacesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// GetWorkspace returns a workspace the actor can access.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, actorID, workspaceID string) (*domain.Workspace, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindWorkspace, ID: workspaceID}); err != nil {
		return nil, err
	}
	return s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
}

// UpdateWorkspace applies owner-only partial updates.
func (s *WorkspaceService) UpdateWorkspace(ctx context.Context, actorID, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	if err := s.access.RequireWorkspaceOwner(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = *req.Description
	}
	workspace.LastUpdatedAt = time.Now()
	workspace.LastUpdatedBy = actorID

	if err := s.workspaceRepo.UpdateWorkspace(ctx, *workspace); err != nil {
		s.LogError(ctx, err, "Failed to update workspace", slog.String("workspace_id", workspaceID))
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	return workspace, nil
}

// DeleteWorkspace removes the workspace and everything under it. Owner only.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, actorID, workspaceID string) error {
	if err := s.access.RequireWorkspaceOwner(ctx, actorID, workspaceID); err != nil {
		return err
	}
	if err := s.workspaceRepo.DeleteWorkspace(ctx, workspaceID); err != nil {
		s.LogError(ctx, err, "Failed to delete workspace", slog.String("workspace_id", workspaceID))
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	s.LogInfo(ctx, "Workspace deleted", slog.String("workspace_id", workspaceID), slog.String("actor_id", actorID))
	return nil
}

// AddMember adds a user, looked up by email, to the workspace. Owner only.
func (s *WorkspaceService) AddMember(ctx context.Context, actorID, workspaceID string, req dto.AddMemberRequest) (*domain.WorkspaceMember, error) {
	if err := s.access.RequireWorkspaceOwner(ctx, actorID, workspaceID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("no user with email %s", req.Email))
		}
		return nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID == user.UserID {
		return nil, apperrors.NewValidationFailedError("workspace owner is already a member")
	}

	member := domain.WorkspaceMember{
		MemberID:    uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      user.UserID,
		UserName:    user.Name,
		UserEmail:   user.Email,
		Role:        req.Role,
		JoinedAt:    time.Now(),
	}

	if err := s.workspaceRepo.AddMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("user is already a member of this workspace")
		}
		s.LogError(ctx, err, "Failed to add member", slog.String("workspace_id", workspaceID), slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.LogInfo(ctx, "Member added to workspace",
		slog.String("workspace_id", workspaceID),
		slog.String("user_id", user.UserID))
	return &member, nil
}

// RemoveMember removes a membership record. Owner only. Revocation is
// immediate: the member's next request re-walks the chain and is denied.
func (s *WorkspaceService) RemoveMember(ctx context.Context, actorID, workspaceID, memberID string) error {
	if err := s.access.RequireWorkspaceOwner(ctx, actorID, workspaceID); err != nil {
		return err
	}
	if err := s.workspaceRepo.RemoveMember(ctx, workspaceID, memberID); err != nil {
		s.LogError(ctx, err, "Failed to remove member", slog.String("workspace_id", workspaceID), slog.String("member_id", memberID))
		return err
	}
	s.LogInfo(ctx, "Member removed from workspace",
		slog.String("workspace_id", workspaceID),
		slog.String("member_id", memberID))
	return nil
}

// ListMembers returns the workspace owner and the member list. Any member
// may call this.
func (s *WorkspaceService) ListMembers(ctx context.Context, actorID, workspaceID string) (*domain.User, []domain.WorkspaceMember, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindWorkspace, ID: workspaceID}); err != nil {
		return nil, nil, err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	owner, err := s.userRepo.FindUserByID(ctx, workspace.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.workspaceRepo.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, nil, err
	}
	return owner, members, nil
}
