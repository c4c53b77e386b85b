package dto

import (
	"github.com/planlane/task_board_app/internal/core/domain"
)

// --- Group DTOs ---

// CreateGroupRequest defines data for creating a group at the end of a
// board's ordering.
type CreateGroupRequest struct {
	Name    string `json:"name" binding:"required"`
	BoardID string `json:"boardId" binding:"required,uuid"`
	Color   string `json:"color"`
}

// UpdateGroupRequest defines group updates.
type UpdateGroupRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// ReorderGroupRequest overwrites a group's position.
type ReorderGroupRequest struct {
	NewPosition int64 `json:"newPosition" binding:"required"`
}

// GroupResponse defines data returned for a group.
type GroupResponse struct {
	GroupID  string `json:"groupID"`
	BoardID  string `json:"boardID"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int64  `json:"position"`
}

// ToGroupResponse converts domain.Group to DTO.
func ToGroupResponse(g *domain.Group) GroupResponse {
	return GroupResponse{
		GroupID:  g.GroupID,
		BoardID:  g.BoardID,
		Name:     g.Name,
		Color:    g.Color,
		Position: g.Position,
	}
}
