package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// --- Comment DTOs ---

// CreateCommentRequest adds a comment to an item.
type CreateCommentRequest struct {
	ItemID  string `json:"itemId" binding:"required,uuid"`
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest replaces a comment's content (author only).
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse defines data returned for a comment.
type CommentResponse struct {
	CommentID string    `json:"commentID"`
	ItemID    string    `json:"itemID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCommentResponse converts domain.Comment to DTO.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.CommentID,
		ItemID:    c.ItemID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToListCommentsResponse converts a slice of domain.Comment to DTOs.
func ToListCommentsResponse(comments []domain.Comment) []CommentResponse {
	list := make([]CommentResponse, len(comments))
	for i := range comments {
		list[i] = ToCommentResponse(&comments[i])
	}
	return list
}
