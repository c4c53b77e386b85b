package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// BoardService handles business logic related to boards. Board deletion is
// owner-only; everything else needs workspace access.
type BoardService struct {
	BaseService
	boardRepo portsrepo.BoardRepositoryFacade
	groupRepo portsrepo.GroupRepositoryFacade
	itemRepo  portsrepo.ItemRepositoryFacade
	access    portssvc.AccessSvcFacade
	activity  portssvc.ActivitySvcFacade
}

// NewBoardService creates a new BoardService.
func NewBoardService(br portsrepo.BoardRepositoryFacade, gr portsrepo.GroupRepositoryFacade, ir portsrepo.ItemRepositoryFacade, access portssvc.AccessSvcFacade, activity portssvc.ActivitySvcFacade) portssvc.BoardSvcFacade {
	return &BoardService{
		boardRepo: br,
		groupRepo: gr,
		itemRepo:  ir,
		access:    access,
		activity:  activity,
	}
}

var _ portssvc.BoardSvcFacade = (*BoardService)(nil)

// CreateBoard creates a board in a workspace the actor can access.
func (s *BoardService) CreateBoard(ctx context.Context, actorID string, req dto.CreateBoardRequest) (*domain.Board, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindWorkspace, ID: req.WorkspaceID}); err != nil {
		return nil, err
	}

	now := time.Now()
	board := domain.Board{
		BoardID:     uuid.NewString(),
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if req.IsRetainer != nil {
		board.IsRetainer = *req.IsRetainer
	}

	if err := s.boardRepo.SaveBoard(ctx, board); err != nil {
		s.LogError(ctx, err, "Failed to save board", slog.String("workspace_id", req.WorkspaceID))
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	if err := s.activity.Record(ctx, actorID, domain.ActionCreated, domain.KindBoard, board.BoardID,
		fmt.Sprintf("created board %q", board.Name), board.BoardID, nil); err != nil {
		s.LogWarn(ctx, "Failed to record board creation activity", slog.String("board_id", board.BoardID), slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Board created", slog.String("board_id", board.BoardID), slog.String("workspace_id", req.WorkspaceID))
	return &board, nil
}

// ListBoards returns the boards of a workspace the actor can access.
func (s *BoardService) ListBoards(ctx context.Context, actorID, workspaceID string) ([]domain.Board, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindWorkspace, ID: workspaceID}); err != nil {
		return nil, err
	}
	return s.boardRepo.ListBoardsByWorkspaceID(ctx, workspaceID)
}

// GetBoard expands the board into groups and items in render order. The
// archive filter is applied to items only; groups always appear.
func (s *BoardService) GetBoard(ctx context.Context, actorID, boardID string, filter portsrepo.ArchiveFilter) (*domain.BoardDetail, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindBoard, ID: boardID}); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindBoardByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.ListGroupsByBoardID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	detail := &domain.BoardDetail{
		Board:  *board,
		Groups: make([]domain.GroupItems, len(groups)),
	}
	if len(groups) == 0 {
		return detail, nil
	}

	groupIDs := make([]string, len(groups))
	for i := range groups {
		groupIDs[i] = groups[i].GroupID
	}
	items, err := s.itemRepo.ListItemsByGroupIDs(ctx, groupIDs, filter)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]domain.Item, len(groups))
	for _, item := range items {
		byGroup[item.GroupID] = append(byGroup[item.GroupID], item)
	}
	for i := range groups {
		detail.Groups[i] = domain.GroupItems{
			Group: groups[i],
			Items: byGroup[groups[i].GroupID],
		}
	}
	return detail, nil
}

// UpdateBoard applies partial updates. Flipping IsRetainer changes only
// future completions; hours already recorded stay untouched.
func (s *BoardService) UpdateBoard(ctx context.Context, actorID, boardID string, req dto.UpdateBoardRequest) (*domain.Board, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindBoard, ID: boardID}); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindBoardByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.IsRetainer != nil {
		board.IsRetainer = *req.IsRetainer
	}
	board.LastUpdatedAt = time.Now()
	board.LastUpdatedBy = actorID

	if err := s.boardRepo.UpdateBoard(ctx, *board); err != nil {
		s.LogError(ctx, err, "Failed to update board", slog.String("board_id", boardID))
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	if err := s.activity.Record(ctx, actorID, domain.ActionUpdated, domain.KindBoard, boardID,
		fmt.Sprintf("updated board %q", board.Name), boardID, nil); err != nil {
		s.LogWarn(ctx, "Failed to record board update activity", slog.String("board_id", boardID), slog.String("error", err.Error()))
	}
	return board, nil
}

// DeleteBoard removes a board and everything under it. Workspace owner only.
func (s *BoardService) DeleteBoard(ctx context.Context, actorID, boardID string) error {
	workspaceID, err := s.access.AncestorWorkspaceID(ctx, domain.EntityRef{Kind: domain.KindBoard, ID: boardID})
	if err != nil {
		return err
	}
	if err := s.access.RequireWorkspaceOwner(ctx, actorID, workspaceID); err != nil {
		return err
	}
	if err := s.boardRepo.DeleteBoard(ctx, boardID); err != nil {
		s.LogError(ctx, err, "Failed to delete board", slog.String("board_id", boardID))
		return fmt.Errorf("failed to delete board: %w", err)
	}
	s.LogInfo(ctx, "Board deleted", slog.String("board_id", boardID), slog.String("actor_id", actorID))
	return nil
}
