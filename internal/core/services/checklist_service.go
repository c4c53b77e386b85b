package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
)

// ChecklistService handles checklist entries under an item.
type ChecklistService struct {
	BaseService
	checklistRepo portsrepo.ChecklistRepositoryFacade
	access        portssvc.AccessSvcFacade
}

// NewChecklistService creates a new ChecklistService.
func NewChecklistService(cr portsrepo.ChecklistRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.ChecklistSvcFacade {
	return &ChecklistService{
		checklistRepo: cr,
		access:        access,
	}
}

var _ portssvc.ChecklistSvcFacade = (*ChecklistService)(nil)

// ListChecklist returns the item's entries in render order.
func (s *ChecklistService) ListChecklist(ctx context.Context, actorID, itemID string) ([]domain.ChecklistItem, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, err
	}
	return s.checklistRepo.ListByItemID(ctx, itemID)
}

// CreateChecklistItem appends an entry to the end of the item's checklist.
func (s *ChecklistService) CreateChecklistItem(ctx context.Context, actorID string, req dto.CreateChecklistItemRequest) (*domain.ChecklistItem, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: req.ItemID}); err != nil {
		return nil, err
	}
	if req.Hours != nil && req.Hours.IsNegative() {
		return nil, apperrors.NewValidationFailedError("hours must be a non-negative number")
	}

	position, err := nextPosition(ctx, req.ItemID, s.checklistRepo.MaxPosition)
	if err != nil {
		return nil, fmt.Errorf("failed to compute checklist position: %w", err)
	}

	entry := domain.ChecklistItem{
		ChecklistItemID: uuid.NewString(),
		ItemID:          req.ItemID,
		Text:            req.Text,
		Position:        position,
		Hours:           req.Hours,
		CreatedAt:       time.Now(),
	}

	if err := s.checklistRepo.SaveChecklistItem(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save checklist item", slog.String("item_id", req.ItemID))
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return &entry, nil
}

// UpdateChecklistItem applies partial updates to an entry.
func (s *ChecklistService) UpdateChecklistItem(ctx context.Context, actorID, checklistItemID string, req dto.UpdateChecklistItemRequest) (*domain.ChecklistItem, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindChecklistItem, ID: checklistItemID}); err != nil {
		return nil, err
	}

	entry, err := s.checklistRepo.FindChecklistItemByID(ctx, checklistItemID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		entry.Text = *req.Text
	}
	if req.IsDone != nil {
		entry.IsDone = *req.IsDone
	}
	if req.Hours.Set {
		if req.Hours.Value != nil && req.Hours.Value.IsNegative() {
			return nil, apperrors.NewValidationFailedError("hours must be a non-negative number")
		}
		entry.Hours = req.Hours.Value
	}

	if err := s.checklistRepo.UpdateChecklistItem(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update checklist item", slog.String("checklist_item_id", checklistItemID))
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return entry, nil
}

// DeleteChecklistItem removes an entry.
func (s *ChecklistService) DeleteChecklistItem(ctx context.Context, actorID, checklistItemID string) error {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindChecklistItem, ID: checklistItemID}); err != nil {
		return err
	}
	if err := s.checklistRepo.DeleteChecklistItem(ctx, checklistItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete checklist item", slog.String("checklist_item_id", checklistItemID))
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}
	return nil
}
