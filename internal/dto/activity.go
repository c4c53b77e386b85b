package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// ActivityEntryResponse defines data returned for one audit entry.
type ActivityEntryResponse struct {
	ActivityID  string    `json:"activityID"`
	BoardID     string    `json:"boardID"`
	ItemID      *string   `json:"itemID,omitempty"`
	UserID      string    `json:"userID"`
	UserName    string    `json:"userName"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entityType"`
	EntityID    string    `json:"entityID"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToActivityEntryResponse converts domain.ActivityEntry to DTO.
func ToActivityEntryResponse(e *domain.ActivityEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		ActivityID:  e.ActivityID,
		BoardID:     e.BoardID,
		ItemID:      e.ItemID,
		UserID:      e.UserID,
		UserName:    e.UserName,
		Action:      string(e.Action),
		EntityType:  string(e.EntityType),
		EntityID:    e.EntityID,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListActivityResponse converts a slice of domain.ActivityEntry to DTOs.
func ToListActivityResponse(entries []domain.ActivityEntry) []ActivityEntryResponse {
	list := make([]ActivityEntryResponse, len(entries))
	for i := range entries {
		list[i] = ToActivityEntryResponse(&entries[i])
	}
	return list
}
