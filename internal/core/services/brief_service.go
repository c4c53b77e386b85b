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
)

// BriefService turns free-text requirements into structured briefs via the
// text-generation collaborator, using the caller's own provider key.
type BriefService struct {
	BaseService
	generator     portssvc.BriefGenerator
	userRepo      portsrepo.UserRepositoryFacade
	itemRepo      portsrepo.ItemRepositoryFacade
	checklistRepo portsrepo.ChecklistRepositoryFacade
	access        portssvc.AccessSvcFacade
}

// NewBriefService creates a new BriefService.
func NewBriefService(generator portssvc.BriefGenerator, ur portsrepo.UserRepositoryFacade, ir portsrepo.ItemRepositoryFacade, cr portsrepo.ChecklistRepositoryFacade, access portssvc.AccessSvcFacade) portssvc.BriefSvcFacade {
	return &BriefService{
		generator:     generator,
		userRepo:      ur,
		itemRepo:      ir,
		checklistRepo: cr,
		access:        access,
	}
}

var _ portssvc.BriefSvcFacade = (*BriefService)(nil)

// GenerateBrief generates a brief with the user's stored API key. Users
// without a key are refused before any provider call.
func (s *BriefService) GenerateBrief(ctx context.Context, userID, inputText, boardContext string) (*domain.Brief, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.GroqAPIKey == nil || *user.GroqAPIKey == "" {
		return nil, apperrors.NewForbiddenError("no Groq API key configured for this account")
	}

	brief, err := s.generator.Generate(ctx, *user.GroqAPIKey, inputText, boardContext)
	if err != nil {
		s.LogError(ctx, err, "Brief generation failed", slog.String("user_id", userID))
		return nil, err
	}
	return brief, nil
}

// ApplyBriefToItem persists the brief onto an existing item: the summary
// becomes the description and each step becomes a checklist entry.
func (s *BriefService) ApplyBriefToItem(ctx context.Context, actorID, itemID string, brief domain.Brief) (*domain.Item, []domain.ChecklistItem, error) {
	if err := s.access.RequireAccess(ctx, actorID, domain.EntityRef{Kind: domain.KindItem, ID: itemID}); err != nil {
		return nil, nil, err
	}
	if brief.Summary == "" {
		return nil, nil, apperrors.NewValidationFailedError("brief summary is required")
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}

	item.Description = brief.Summary
	if brief.Title != "" {
		item.Title = brief.Title
	}
	if brief.ImplementationNotes != "" {
		item.Notes = brief.ImplementationNotes
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = actorID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to apply brief to item", slog.String("item_id", itemID))
		return nil, nil, fmt.Errorf("failed to apply brief: %w", err)
	}

	entries := make([]domain.ChecklistItem, 0, len(brief.Steps))
	position, err := s.checklistRepo.MaxPosition(ctx, itemID)
	if err != nil {
		s.LogWarn(ctx, "Failed to read checklist positions, appending from zero", slog.String("item_id", itemID), slog.String("error", err.Error()))
		position = 0
	}
	for _, step := range brief.Steps {
		if step == "" {
			continue
		}
		position++
		entry := domain.ChecklistItem{
			ChecklistItemID: uuid.NewString(),
			ItemID:          itemID,
			Text:            step,
			Position:        position,
			CreatedAt:       time.Now(),
		}
		if err := s.checklistRepo.SaveChecklistItem(ctx, entry); err != nil {
			s.LogWarn(ctx, "Failed to save brief checklist entry", slog.String("item_id", itemID), slog.String("error", err.Error()))
			continue
		}
		entries = append(entries, entry)
	}

	return item, entries, nil
}
