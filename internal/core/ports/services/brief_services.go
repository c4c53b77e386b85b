package services

import (
	"context"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// BriefGenerator is the text-generation collaborator. Implementations call
// the external provider with the caller's API key and return a normalized
// brief, or an error matching apperrors.ErrUpstream when the provider
// fails or answers with unparseable output.
type BriefGenerator interface {
	Generate(ctx context.Context, apiKey, inputText, boardContext string) (*domain.Brief, error)
}

// BriefSvcFacade wraps the generator with per-user key lookup and the
// apply-to-item operation (summary becomes the description, steps become
// checklist entries).
type BriefSvcFacade interface {
	GenerateBrief(ctx context.Context, userID, inputText, boardContext string) (*domain.Brief, error)
	ApplyBriefToItem(ctx context.Context, actorID, itemID string, brief domain.Brief) (*domain.Item, []domain.ChecklistItem, error)
}
