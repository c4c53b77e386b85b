package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

const defaultActivityLimit = 50

// ActivityService appends immutable audit entries and serves the per-board
// feed. Entries are derived records; nothing reads them back to enforce an
// invariant.
type ActivityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	access       portssvc.AccessSvcFacade
}

// NewActivityService creates a new ActivityService.
func NewActivityService(ar portsrepo.ActivityRepositoryFacade, ur portsrepo.UserRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.ActivitySvcFacade {
	return &ActivityService{
		activityRepo: ar,
		userRepo:     ur,
		access:       access,
	}
}

var _ portssvc.ActivitySvcFacade = (*ActivityService)(nil)

// Record appends one entry scoped to the board nearest the mutated entity.
// Callers treat failures as log-only; the triggering mutation has already
// committed.
func (s *ActivityService) Record(ctx context.Context, actorID string, action domain.ActivityAction, entityType domain.EntityKind, entityID, description, boardID string, itemID *string) error {
	userName := ""
	if actor, err := s.userRepo.FindUserByID(ctx, actorID); err == nil {
		userName = actor.Name
	}

	entry := domain.ActivityEntry{
		ActivityID:  uuid.NewString(),
		BoardID:     boardID,
		ItemID:      itemID,
		UserID:      actorID,
		UserName:    userName,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := s.activityRepo.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListBoardActivity returns the board's entries newest first.
func (s *ActivityService) ListBoardActivity(ctx context.Context, actorID, boardID string, limit int) ([]domain.ActivityEntry, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindBoard, ID: boardID}); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.activityRepo.ListByBoardID(ctx, boardID, limit)
}
