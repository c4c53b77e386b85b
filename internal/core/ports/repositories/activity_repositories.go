package repositories

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// ActivityRepositoryFacade is append-and-read-only: entries are never
// updated or deleted by normal operations.
type ActivityRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.ActivityEntry) error
	// ListByBoardID returns entries newest first, at most limit rows.
	ListByBoardID(ctx context.Context, boardID string, limit int) ([]domain.ActivityEntry, error)
}
