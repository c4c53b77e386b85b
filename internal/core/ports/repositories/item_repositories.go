package repositories

import (
	"context"
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// ArchiveFilter selects which items a listing returns.
type ArchiveFilter int

const (
	ActiveItems ArchiveFilter = iota
	ArchivedItems
	AllItems
)

// ItemRepositoryFacade bundles item persistence.
//
// UpdateItem writes the whole row in a single UPDATE so that status,
// is_archived, completed_at and retainer_hours always change together;
// concurrent updates resolve last-write-wins at the row level.
type ItemRepositoryFacade interface {
	SaveItem(ctx context.Context, item domain.Item) error
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	// ListItemsByGroupIDs returns items for the given groups ordered by
	// (position, created_at, id).
	ListItemsByGroupIDs(ctx context.Context, groupIDs []string, filter ArchiveFilter) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item domain.Item) error
	// MoveItem updates group_id and position in one UPDATE.
	MoveItem(ctx context.Context, itemID string, newGroupID *string, position *int64) error
	DeleteItem(ctx context.Context, itemID string) error
	// MaxPosition returns the highest sibling position in the group, 0 when empty.
	MaxPosition(ctx context.Context, groupID string) (int64, error)
	// GroupIDOf returns the owning group id or apperrors.ErrNotFound.
	GroupIDOf(ctx context.Context, itemID string) (string, error)
	// ListItemsAssignedTo returns unarchived items assigned to the user,
	// due date ascending (nulls last), then newest first.
	ListItemsAssignedTo(ctx context.Context, userID string) ([]domain.Item, error)
	// ListItemsDueBetween returns assigned, non-completed items whose due
	// date falls in [from, to], each with its owning board. Used by the
	// reminder sweep.
	ListItemsDueBetween(ctx context.Context, from, to time.Time) ([]domain.DueItem, error)
	// ListItemDatesByBoard projects the date columns of every item on the
	// board for roadmap aggregation.
	ListItemDatesByBoard(ctx context.Context, boardID string) ([]domain.ItemDates, error)
}

// ChecklistRepositoryFacade bundles checklist-item persistence.
type ChecklistRepositoryFacade interface {
	SaveChecklistItem(ctx context.Context, entry domain.ChecklistItem) error
	FindChecklistItemByID(ctx context.Context, checklistItemID string) (*domain.ChecklistItem, error)
	// ListByItemID returns entries ordered by (position, created_at, id).
	ListByItemID(ctx context.Context, itemID string) ([]domain.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, entry domain.ChecklistItem) error
	DeleteChecklistItem(ctx context.Context, checklistItemID string) error
	MaxPosition(ctx context.Context, itemID string) (int64, error)
	// ItemIDOf returns the owning item id or apperrors.ErrNotFound.
	ItemIDOf(ctx context.Context, checklistItemID string) (string, error)
}

// CommentRepositoryFacade bundles comment persistence.
type CommentRepositoryFacade interface {
	SaveComment(ctx context.Context, comment domain.Comment) error
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByItemID(ctx context.Context, itemID string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, comment domain.Comment) error
	DeleteComment(ctx context.Context, commentID string) error
	// ItemIDOf returns the owning item id or apperrors.ErrNotFound.
	ItemIDOf(ctx context.Context, commentID string) (string, error)
}
