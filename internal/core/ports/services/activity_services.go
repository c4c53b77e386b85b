package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// ActivitySvcFacade appends audit entries and serves the per-board feed.
// Record is best-effort from the caller's perspective: mutating services
// log its failures and never roll back on them.
type ActivitySvcFacade interface {
	Record(ctx context.Context, actorID string, action domain.ActivityAction, entityType domain.EntityKind, entityID, description, boardID string, itemID *string) error
	ListBoardActivity(ctx context.Context, actorID, boardID string, limit int) ([]domain.ActivityEntry, error)
}
