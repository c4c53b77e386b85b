package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Item DTOs ---

// CreateItemRequest defines data for creating an item at the end of a
// group's ordering.
type CreateItemRequest struct {
	Title       string     `json:"title" binding:"required"`
	GroupID     string     `json:"groupId" binding:"required,uuid"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority" binding:"omitempty,taskpriority"`
	StartDate   *time.Time `json:"startDate"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedTo  *string    `json:"assignedTo"`
	Description string     `json:"description"`
}

// UpdateItemRequest is a partial update. Omitted fields are untouched;
// Nullable fields distinguish "leave alone" from "clear". RetainerHours is
// consumed by the lifecycle rules: required on completing an item of a
// retainer board, accepted as a standalone correction otherwise.
type UpdateItemRequest struct {
	Title         *string                   `json:"title"`
	Status        *string                   `json:"status"`
	Priority      *string                   `json:"priority" binding:"omitempty,taskpriority"`
	StartDate     Nullable[time.Time]       `json:"startDate"`
	DueDate       Nullable[time.Time]       `json:"dueDate"`
	AssignedTo    Nullable[string]          `json:"assignedTo"`
	Description   *string                   `json:"description"`
	Notes         *string                   `json:"notes"`
	RetainerHours Nullable[decimal.Decimal] `json:"retainerHours"`
}

// ReorderItemRequest overwrites position and optionally moves the item to
// another group in the same atomic write.
type ReorderItemRequest struct {
	NewPosition *int64  `json:"newPosition"`
	NewGroupID  *string `json:"newGroupId" binding:"omitempty,uuid"`
}

// ItemResponse defines data returned for an item.
type ItemResponse struct {
	ItemID        string           `json:"itemID"`
	GroupID       string           `json:"groupID"`
	Title         string           `json:"title"`
	Position      int64            `json:"position"`
	Status        string           `json:"status"`
	Priority      string           `json:"priority"`
	StartDate     *time.Time       `json:"startDate"`
	DueDate       *time.Time       `json:"dueDate"`
	CompletedAt   *time.Time       `json:"completedAt"`
	AssignedTo    *string          `json:"assignedTo"`
	Description   string           `json:"description"`
	Notes         string           `json:"notes"`
	IsArchived    bool             `json:"isArchived"`
	RetainerHours *decimal.Decimal `json:"retainerHours"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToItemResponse converts domain.Item to DTO.
func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:        it.ItemID,
		GroupID:       it.GroupID,
		Title:         it.Title,
		Position:      it.Position,
		Status:        string(it.Status),
		Priority:      string(it.Priority),
		StartDate:     it.StartDate,
		DueDate:       it.DueDate,
		CompletedAt:   it.CompletedAt,
		AssignedTo:    it.AssignedTo,
		Description:   it.Description,
		Notes:         it.Notes,
		IsArchived:    it.IsArchived,
		RetainerHours: it.RetainerHours,
		CreatedAt:     it.CreatedAt,
		LastUpdatedAt: it.LastUpdatedAt,
	}
}

// ToListItemsResponse converts a slice of domain.Item to DTOs.
func ToListItemsResponse(items []domain.Item) []ItemResponse {
	list := make([]ItemResponse, len(items))
	for i := range items {
		list[i] = ToItemResponse(&items[i])
	}
	return list
}
