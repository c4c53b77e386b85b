package repositories

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// BoardRepositoryFacade bundles board persistence. WorkspaceIDOf is the
// ancestor lookup used by access resolution; it must read the live chain,
// never a denormalized copy held by the caller.
type BoardRepositoryFacade interface {
	SaveBoard(ctx context.Context, board domain.Board) error
	FindBoardByID(ctx context.Context, boardID string) (*domain.Board, error)
	ListBoardsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Board, error)
	UpdateBoard(ctx context.Context, board domain.Board) error
	DeleteBoard(ctx context.Context, boardID string) error
	// WorkspaceIDOf returns the owning workspace id or apperrors.ErrNotFound.
	WorkspaceIDOf(ctx context.Context, boardID string) (string, error)
}

// GroupRepositoryFacade bundles group persistence and the sibling ordering
// queries for groups within a board.
type GroupRepositoryFacade interface {
	SaveGroup(ctx context.Context, group domain.Group) error
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)
	// ListGroupsByBoardID returns groups ordered by (position, created_at, id).
	ListGroupsByBoardID(ctx context.Context, boardID string) ([]domain.Group, error)
	UpdateGroup(ctx context.Context, group domain.Group) error
	UpdateGroupPosition(ctx context.Context, groupID string, position int64) error
	DeleteGroup(ctx context.Context, groupID string) error
	// MaxPosition returns the highest sibling position, 0 when the board has
	// no groups.
	MaxPosition(ctx context.Context, boardID string) (int64, error)
	// BoardIDOf returns the owning board id or apperrors.ErrNotFound.
	BoardIDOf(ctx context.Context, groupID string) (string, error)
}
