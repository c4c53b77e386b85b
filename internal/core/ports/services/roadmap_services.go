package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// RoadmapSvcFacade derives date ranges from item timestamps. Pure
// read-side: nothing is stored, every request recomputes.
type RoadmapSvcFacade interface {
	// BoardRange returns nil (no error) for a board with no dated items.
	BoardRange(ctx context.Context, actorID, boardID string) (*domain.DateRange, error)
	// WorkspaceRoadmap returns per-board entries sorted ascending by start.
	WorkspaceRoadmap(ctx context.Context, actorID, workspaceID string) ([]domain.RoadmapEntry, error)
}
