package dto

import "github.com/planlane/task_board_app/internal/core/domain"

// GenerateBriefRequest asks the AI collaborator for a structured brief of a
// free-text requirement.
type GenerateBriefRequest struct {
	InputText string `json:"inputText" binding:"required,min=10"`
	Context   string `json:"context"`
}

// ApplyBriefRequest applies a previously generated brief to an item: the
// summary becomes the description, the steps become checklist entries.
type ApplyBriefRequest struct {
	ItemID string       `json:"itemId" binding:"required,uuid"`
	Brief  domain.Brief `json:"brief" binding:"required"`
}

// ApplyBriefResponse returns the updated item and created checklist entries.
type ApplyBriefResponse struct {
	Item      ItemResponse            `json:"item"`
	Checklist []ChecklistItemResponse `json:"checklist"`
}
