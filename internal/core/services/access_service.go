package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

// AccessService resolves an entity's owning workspace by walking the
// ownership chain on every call and checks the actor against the live
// membership table. No decision is ever cached.
type AccessService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
	boardRepo     portsrepo.BoardRepositoryFacade
	groupRepo     portsrepo.GroupRepositoryFacade
	itemRepo      portsrepo.ItemRepositoryFacade
	checklistRepo portsrepo.ChecklistRepositoryFacade
	commentRepo   portsrepo.CommentRepositoryFacade
}

// NewAccessService creates a new AccessService.
func NewAccessService(repos *portsrepo.RepositoryProvider) portssvc.AccessSvcFacade {
	return &AccessService{
		workspaceRepo: repos.WorkspaceRepo,
		boardRepo:     repos.BoardRepo,
		groupRepo:     repos.GroupRepo,
		itemRepo:      repos.ItemRepo,
		checklistRepo: repos.ChecklistRepo,
		commentRepo:   repos.CommentRepo,
	}
}

var _ portssvc.AccessSvcFacade = (*AccessService)(nil)

// AncestorWorkspaceID walks the ownership chain from the ref up to its
// workspace. A missing link anywhere returns apperrors.ErrNotFound.
func (s *AccessService) AncestorWorkspaceID(ctx context.Context, ref domain.EntityRef) (string, error) {
	kind := ref.Kind
	id := ref.ID

	if kind == domain.KindComment {
		itemID, err := s.commentRepo.ItemIDOf(ctx, id)
		if err != nil {
			return "", err
		}
		kind, id = domain.KindItem, itemID
	}
	if kind == domain.KindChecklistItem {
		itemID, err := s.checklistRepo.ItemIDOf(ctx, id)
		if err != nil {
			return "", err
		}
		kind, id = domain.KindItem, itemID
	}
	if kind == domain.KindItem {
		groupID, err := s.itemRepo.GroupIDOf(ctx, id)
		if err != nil {
			return "", err
		}
		kind, id = domain.KindGroup, groupID
	}
	if kind == domain.KindGroup {
		boardID, err := s.groupRepo.BoardIDOf(ctx, id)
		if err != nil {
			return "", err
		}
		kind, id = domain.KindBoard, boardID
	}
	if kind == domain.KindBoard {
		workspaceID, err := s.boardRepo.WorkspaceIDOf(ctx, id)
		if err != nil {
			return "", err
		}
		kind, id = domain.KindWorkspace, workspaceID
	}
	if kind == domain.KindWorkspace {
		return id, nil
	}
	return "", fmt.Errorf("%w: unknown entity kind %q", apperrors.ErrNotFound, ref.Kind)
}

// CanAccess reports whether the actor owns or is a member of the workspace
// the ref belongs to. Any resolution failure denies.
func (s *AccessService) CanAccess(ctx context.Context, actorID string, ref domain.EntityRef) bool {
	return s.RequireAccess(ctx, actorID, ref) == nil
}

// RequireAccess resolves the ref's workspace and verifies the actor is its
// owner or a member. Denials surface as apperrors.ErrForbidden; a broken
// ownership chain surfaces as apperrors.ErrNotFound.
func (s *AccessService) RequireAccess(ctx context.Context, actorID string, ref domain.EntityRef) error {
	workspaceID, err := s.AncestorWorkspaceID(ctx, ref)
	if err != nil {
		s.LogDebug(ctx, "Access chain resolution failed",
			slog.String("actor_id", actorID),
			slog.String("entity_kind", string(ref.Kind)),
			slog.String("entity_id", ref.ID))
		return err
	}

	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID == actorID {
		return nil
	}

	_, err = s.workspaceRepo.FindMember(ctx, workspaceID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Access denied, actor not a workspace member",
				slog.String("actor_id", actorID),
				slog.String("workspace_id", workspaceID))
			return apperrors.NewForbiddenError("access denied")
		}
		return err
	}
	return nil
}

// RequireWorkspaceOwner enforces the owner-only rule. Membership alone is
// insufficient for the operations that call this.
func (s *AccessService) RequireWorkspaceOwner(ctx context.Context, actorID, workspaceID string) error {
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != actorID {
		s.LogDebug(ctx, "Owner-only operation denied",
			slog.String("actor_id", actorID),
			slog.String("workspace_id", workspaceID),
			slog.String("owner_id", workspace.OwnerID))
		return apperrors.NewForbiddenError("only the workspace owner may perform this operation")
	}
	return nil
}
