package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	"github.com/planlane/task_board_app/internal/dto"
)

// BoardSvcFacade covers board CRUD. Deletion is owner-only; everything else
// needs workspace access.
type BoardSvcFacade interface {
	CreateBoard(ctx context.Context, actorID string, req dto.CreateBoardRequest) (*domain.Board, error)
	ListBoards(ctx context.Context, actorID, workspaceID string) ([]domain.Board, error)
	// GetBoard expands the board into its groups and items, filtered by the
	// archive flag, both levels in render order.
	GetBoard(ctx context.Context, actorID, boardID string, filter portsrepo.ArchiveFilter) (*domain.BoardDetail, error)
	UpdateBoard(ctx context.Context, actorID, boardID string, req dto.UpdateBoardRequest) (*domain.Board, error)
	DeleteBoard(ctx context.Context, actorID, boardID string) error
}

// GroupSvcFacade covers group CRUD and reordering within a board.
type GroupSvcFacade interface {
	CreateGroup(ctx context.Context, actorID string, req dto.CreateGroupRequest) (*domain.Group, error)
	UpdateGroup(ctx context.Context, actorID, groupID string, req dto.UpdateGroupRequest) (*domain.Group, error)
	DeleteGroup(ctx context.Context, actorID, groupID string) error
	ReorderGroup(ctx context.Context, actorID, groupID string, newPosition int64) (*domain.Group, error)
}
