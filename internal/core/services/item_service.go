package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// ItemService is the item lifecycle engine. Status transitions derive
// archival state, the completion timestamp and the retainer-hours gate;
// everything else is an independent partial update. All lifecycle fields
// are written in one repository UPDATE.
type ItemService struct {
	BaseService
	itemRepo     portsrepo.ItemRepositoryFacade
	groupRepo    portsrepo.GroupRepositoryFacade
	boardRepo    portsrepo.BoardRepositoryFacade
	access       portssvc.AccessSvcFacade
	activity     portssvc.ActivitySvcFacade
	notification portssvc.NotificationSvcFacade
}

// NewItemService creates a new ItemService.
func NewItemService(ir portsrepo.ItemRepositoryFacade, gr portsrepo.GroupRepositoryFacade, br portsrepo.BoardRepositoryFacade, access portssvc.AccessSvcFacade, activity portssvc.ActivitySvcFacade, notification portssvc.NotificationSvcFacade) portssvc.ItemSvcFacade {
	return &ItemService{
		itemRepo:     ir,
		groupRepo:    gr,
		boardRepo:    br,
		access:       access,
		activity:     activity,
		notification: notification,
	}
}

var _ portssvc.ItemSvcFacade = (*ItemService)(nil)

// validateRetainerHours enforces the retainer gate: hours must be present
// and non-negative. Decimal values are always finite.
func validateRetainerHours(hours *decimal.Decimal) error {
	if hours == nil {
		return apperrors.NewValidationFailedError("retainerHours is required when completing an item on a retainer board")
	}
	if hours.IsNegative() {
		return apperrors.NewValidationFailedError("retainerHours must be a non-negative number")
	}
	return nil
}

// boardOf resolves the owning board of an item through its group.
func (s *ItemService) boardOf(ctx context.Context, groupID string) (*domain.Board, error) {
	boardID, err := s.groupRepo.BoardIDOf(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.boardRepo.FindBoardByID(ctx, boardID)
}

// CreateItem appends an item to the end of the group's ordering. Status
// defaults to todo and priority to medium.
func (s *ItemService) CreateItem(ctx context.Context, actorID string, req dto.CreateItemRequest) (*domain.Item, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindGroup, ID: req.GroupID}); err != nil {
		return nil, err
	}

	board, err := s.boardOf(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	status := domain.StatusTodo
	if req.Status != nil {
		status = domain.ItemStatus(*req.Status)
	}
	// Completion at creation carries no hours field, so the retainer gate
	// rejects it outright.
	if status.IsCompletion() && board.IsRetainer {
		return nil, apperrors.NewValidationFailedError("cannot create a completed item on a retainer board without hours; create it open and complete it with retainerHours")
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.ItemPriority(*req.Priority)
	}

	position, err := nextPosition(ctx, req.GroupID, s.itemRepo.MaxPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to compute item position: %w", err)
	}

	now := time.Now()
	item := domain.Item{
		ItemID:      uuid.NewString(),
		GroupID:     req.GroupID,
		Title:       req.Title,
		Position:    position,
		Status:      status,
		Priority:    priority,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if status.IsCompletion() {
		item.IsArchived = true
		item.CompletedAt = &now
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("group_id", req.GroupID))
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if err := s.activity.Record(ctx, actorID, domain.ActionCreated, domain.KindItem, item.ItemID,
		fmt.Sprintf("created item %q", item.Title), board.BoardID, &item.ItemID); err != nil {
		s.LogWarn(ctx, "Failed to record item creation activity", slog.String("item_id", item.ItemID), slog.String("error", err.Error()))
	}
	if item.AssignedTo != nil {
		s.notification.NotifyAssignment(ctx, &item, board.BoardID, *item.AssignedTo)
	}

	s.LogInfo(ctx, "Item created", slog.String("item_id", item.ItemID), slog.String("board_id", board.BoardID))
	return &item, nil
}

// GetItem returns an item the actor can access.
func (s *ItemService) GetItem(ctx context.Context, actorID, itemID string) (*domain.Item, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, err
	}
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// UpdateItem applies a partial update, running the status transition rules
// before any field is written:
//
//  1. moving to a completion status archives the item and stamps
//     completedAt; on a retainer board the caller must supply valid
//     retainerHours or the whole update fails pre-mutation;
//  2. moving away from a completion status clears completedAt, isArchived
//     and retainerHours;
//  3. retainerHours supplied without a status change is accepted as a
//     standalone correction on retainer-board items.
//
// Activity is appended on every successful update; fanout fires only when
// assignment or status changed. Both are best-effort after the write.
func (s *ItemService) UpdateItem(ctx context.Context, actorID, itemID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	board, err := s.boardOf(ctx, item.GroupID)
	if err != nil {
		return nil, err
	}

	prevStatus := item.Status
	prevAssignee := item.AssignedTo

	statusChanged := false
	if req.Status != nil && domain.ItemStatus(*req.Status) != item.Status {
		statusChanged = true
		newStatus := domain.ItemStatus(*req.Status)
		if newStatus.IsCompletion() {
			if board.IsRetainer {
				if err := validateRetainerHours(req.RetainerHours.Value); err != nil {
					return nil, err
				}
				item.RetainerHours = req.RetainerHours.Value
			}
			now := time.Now()
			item.IsArchived = true
			item.CompletedAt = &now
		} else {
			item.IsArchived = false
			item.CompletedAt = nil
			item.RetainerHours = nil
		}
		item.Status = newStatus
	} else if req.RetainerHours.Set && board.IsRetainer {
		// Standalone hours correction, archival state untouched.
		if err := validateRetainerHours(req.RetainerHours.Value); err != nil {
			return nil, err
		}
		item.RetainerHours = req.RetainerHours.Value
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Priority != nil {
		item.Priority = domain.ItemPriority(*req.Priority)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.StartDate.Set {
		item.StartDate = req.StartDate.Value
	}
	if req.DueDate.Set {
		item.DueDate = req.DueDate.Value
	}
	assignmentChanged := false
	if req.AssignedTo.Set {
		newAssignee := req.AssignedTo.Value
		if (newAssignee == nil) != (prevAssignee == nil) ||
			(newAssignee != nil && prevAssignee != nil && *newAssignee != *prevAssignee) {
			assignmentChanged = true
		}
		item.AssignedTo = newAssignee
	}

	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = actorID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	if err := s.activity.Record(ctx, actorID, domain.ActionUpdated, domain.KindItem, item.ItemID,
		fmt.Sprintf("updated item %q", item.Title), board.BoardID, &item.ItemID); err != nil {
		s.LogWarn(ctx, "Failed to record item update activity", slog.String("item_id", itemID), slog.String("error", err.Error()))
	}
	if assignmentChanged && item.AssignedTo != nil {
		s.notification.NotifyAssignment(ctx, item, board.BoardID, *item.AssignedTo)
	}
	if statusChanged {
		s.notification.NotifyStatusChange(ctx, item, board.BoardID, prevStatus, item.Status)
	}

	return item, nil
}

// DeleteItem removes an item. Comments and checklist entries go with it by
// storage cascade.
func (s *ItemService) DeleteItem(ctx context.Context, actorID, itemID string) error {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete item: %w", err)
	}
	s.LogInfo(ctx, "Item deleted", slog.String("item_id", itemID))
	return nil
}

// ReorderItem overwrites the item's position and optionally moves it to
// another group in the same write.
func (s *ItemService) ReorderItem(ctx context.Context, actorID, itemID string, req dto.ReorderItemRequest) (*domain.Item, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, err
	}
	if req.NewGroupID == nil && req.NewPosition == nil {
		return nil, apperrors.NewValidationFailedError("newPosition or newGroupId is required")
	}
	if req.NewGroupID != nil {
		if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindGroup, ID: *req.NewGroupID}); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.MoveItem(ctx, itemID, req.NewGroupID, req.NewPosition); err != nil {
		s.LogError(ctx, err, "Failed to reorder item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to reorder item: %w", err)
	}
	return s.itemRepo.FindItemByID(ctx, itemID)
}

// ListMyItems returns the caller's unarchived assigned items across every
// workspace, due date ascending.
func (s *ItemService) ListMyItems(ctx context.Context, userID string) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItemsAssignedTo(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assigned items", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list assigned items: %w", err)
	}
	return items, nil
}
