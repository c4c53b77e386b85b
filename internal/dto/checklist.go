package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Checklist DTOs ---

// CreateChecklistItemRequest appends a checklist entry to an item.
type CreateChecklistItemRequest struct {
	ItemID string           `json:"itemId" binding:"required,uuid"`
	Text   string           `json:"text" binding:"required"`
	Hours  *decimal.Decimal `json:"hours"`
}

// UpdateChecklistItemRequest defines partial checklist updates.
type UpdateChecklistItemRequest struct {
	Text   *string                   `json:"text"`
	IsDone *bool                     `json:"isDone"`
	Hours  Nullable[decimal.Decimal] `json:"hours"`
}

// ChecklistItemResponse defines data returned for a checklist entry.
type ChecklistItemResponse struct {
	ChecklistItemID string           `json:"checklistItemID"`
	ItemID          string           `json:"itemID"`
	Text            string           `json:"text"`
	Position        int64            `json:"position"`
	IsDone          bool             `json:"isDone"`
	Hours           *decimal.Decimal `json:"hours"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ToChecklistItemResponse converts domain.ChecklistItem to DTO.
func ToChecklistItemResponse(c *domain.ChecklistItem) ChecklistItemResponse {
	return ChecklistItemResponse{
		ChecklistItemID: c.ChecklistItemID,
		ItemID:          c.ItemID,
		Text:            c.Text,
		Position:        c.Position,
		IsDone:          c.IsDone,
		Hours:           c.Hours,
		CreatedAt:       c.CreatedAt,
	}
}

// ToListChecklistResponse converts a slice of domain.ChecklistItem to DTOs.
func ToListChecklistResponse(entries []domain.ChecklistItem) []ChecklistItemResponse {
	list := make([]ChecklistItemResponse, len(entries))
	for i := range entries {
		list[i] = ToChecklistItemResponse(&entries[i])
	}
	return list
}
