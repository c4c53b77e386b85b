package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// --- Board DTOs ---

// CreateBoardRequest defines data for creating a board.
type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	WorkspaceID string `json:"workspaceId" binding:"required,uuid"`
	IsRetainer  *bool  `json:"isRetainer"`
}

// UpdateBoardRequest defines board updates. Flipping IsRetainer does not
// touch hours already recorded on completed items.
type UpdateBoardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsRetainer  *bool   `json:"isRetainer"`
}

// BoardResponse defines data returned for a board.
type BoardResponse struct {
	BoardID       string    `json:"boardID"`
	WorkspaceID   string    `json:"workspaceID"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	IsRetainer    bool      `json:"isRetainer"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToBoardResponse converts domain.Board to DTO.
func ToBoardResponse(b *domain.Board) BoardResponse {
	return BoardResponse{
		BoardID:       b.BoardID,
		WorkspaceID:   b.WorkspaceID,
		Name:          b.Name,
		Description:   b.Description,
		IsRetainer:    b.IsRetainer,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBoardsResponse converts a slice of domain.Board to DTOs.
func ToListBoardsResponse(boards []domain.Board) []BoardResponse {
	list := make([]BoardResponse, len(boards))
	for i := range boards {
		list[i] = ToBoardResponse(&boards[i])
	}
	return list
}

// GroupItemsResponse is a group expanded with its items in render order.
type GroupItemsResponse struct {
	GroupResponse
	Items []ItemResponse `json:"items"`
}

// BoardDetailResponse is the fully expanded board read model.
type BoardDetailResponse struct {
	BoardResponse
	Groups []GroupItemsResponse `json:"groups"`
}

// ToBoardDetailResponse converts domain.BoardDetail to DTO.
func ToBoardDetailResponse(d *domain.BoardDetail) BoardDetailResponse {
	resp := BoardDetailResponse{
		BoardResponse: ToBoardResponse(&d.Board),
		Groups:        make([]GroupItemsResponse, len(d.Groups)),
	}
	for i := range d.Groups {
		resp.Groups[i] = GroupItemsResponse{
			GroupResponse: ToGroupResponse(&d.Groups[i].Group),
			Items:         ToListItemsResponse(d.Groups[i].Items),
		}
	}
	return resp
}
