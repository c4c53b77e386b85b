package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// AccessSvcFacade decides whether an actor may act on an entity by walking
// the live ownership chain up to the owning workspace on every call.
// Nothing is cached between requests, and any unresolvable ancestor denies.
type AccessSvcFacade interface {
	// CanAccess reports whether the actor owns or is a member of the
	// workspace the ref resolves to. Resolution failures report false.
	CanAccess(ctx context.Context, actorID string, ref domain.EntityRef) bool
	// RequireAccess is CanAccess returning apperrors.ErrForbidden (or the
	// resolution error) on denial.
	RequireAccess(ctx context.Context, actorID string, ref domain.EntityRef) error
	// RequireWorkspaceOwner enforces the owner-only rule for destructive
	// operations; membership alone is insufficient.
	RequireWorkspaceOwner(ctx context.Context, actorID, workspaceID string) error
	// AncestorWorkspaceID resolves the ref's owning workspace id, or
	// apperrors.ErrNotFound when any link of the chain is missing.
	AncestorWorkspaceID(ctx context.Context, ref domain.EntityRef) (string, error)
}
