package services

import (
	"context"
	"sort"
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

// RoadmapService derives date ranges from item timestamps. Pure read-side
// computation; nothing is stored and every request recomputes.
type RoadmapService struct {
	BaseService
	boardRepo portsrepo.BoardRepositoryFacade
	itemRepo  portsrepo.ItemRepositoryFacade
	access    portssvc.AccessSvcFacade
}

// NewRoadmapService creates a new RoadmapService.
func NewRoadmapService(br portsrepo.BoardRepositoryFacade, ir portsrepo.ItemRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.RoadmapSvcFacade {
	return &RoadmapService{
		boardRepo: br,
		itemRepo:  ir,
		access:    access,
	}
}

var _ portssvc.RoadmapSvcFacade = (*RoadmapService)(nil)

// rangeOf folds item dates into an inclusive range. Effective start is
// startDate, falling back to dueDate then completedAt; effective end is
// completedAt, falling back to dueDate then startDate. Items with no
// dates contribute nothing; nil means no dated items at all.
func rangeOf(dates []domain.ItemDates) *domain.DateRange {
	var result *domain.DateRange
	for _, d := range dates {
		start := coalesce(d.StartDate, d.DueDate, d.CompletedAt)
		end := coalesce(d.CompletedAt, d.DueDate, d.StartDate)
		if start == nil || end == nil {
			continue
		}
		if result == nil {
			result = &domain.DateRange{Start: *start, End: *end}
			continue
		}
		if start.Before(result.Start) {
			result.Start = *start
		}
		if end.After(result.End) {
			result.End = *end
		}
	}
	return result
}

func coalesce(candidates ...*time.Time) *time.Time {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// BoardRange returns the board's derived range, or nil (no error) when no
// item carries a date.
func (s *RoadmapService) BoardRange(ctx context.Context, actorID, boardID string) (*domain.DateRange, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindBoard, ID: boardID}); err != nil {
		return nil, err
	}
	dates, err := s.itemRepo.ListItemDatesByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return rangeOf(dates), nil
}

// WorkspaceRoadmap returns one entry per board with dated items, sorted
// ascending by start.
func (s *RoadmapService) WorkspaceRoadmap(ctx context.Context, actorID, workspaceID string) ([]domain.RoadmapEntry, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindWorkspace, ID: workspaceID}); err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.ListBoardsByWorkspaceID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RoadmapEntry, 0, len(boards))
	for _, board := range boards {
		dates, err := s.itemRepo.ListItemDatesByBoard(ctx, board.BoardID)
		if err != nil {
			return nil, err
		}
		r := rangeOf(dates)
		if r == nil {
			continue
		}
		entries = append(entries, domain.RoadmapEntry{
			BoardID:   board.BoardID,
			Name:      board.Name,
			StartDate: r.Start,
			EndDate:   r.End,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StartDate.Before(entries[j].StartDate)
	})
	return entries, nil
}
