package dto

import (
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// NotificationResponse defines data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	ItemID         *string   `json:"itemID,omitempty"`
	BoardID        *string   `json:"boardID,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts domain.Notification to DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		ItemID:         n.ItemID,
		BoardID:        n.BoardID,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a slice of domain.Notification to DTOs.
func ToListNotificationsResponse(ns []domain.Notification) []NotificationResponse {
	list := make([]NotificationResponse, len(ns))
	for i := range ns {
		list[i] = ToNotificationResponse(&ns[i])
	}
	return list
}

// UnreadCountResponse wraps the unread notification count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// RemindersCheckedResponse reports the outcome of a reminder sweep.
type RemindersCheckedResponse struct {
	Checked int    `json:"checked"`
	Message string `json:"message"`
}
