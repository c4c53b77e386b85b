package domain

import "time"

// NotificationType classifies a notification. The set is open; these are
// the types the fanout emits.
type NotificationType string

const (
	NotificationAssignment NotificationType = "assignment"
	NotificationStatus     NotificationType = "status"
	NotificationReminder   NotificationType = "reminder"
)

// Notification is one record addressed to one user. Fanout creates one
// record per qualifying recipient per event.
type Notification struct {
	NotificationID string           `json:"notificationID"`
	UserID         string           `json:"userID"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	ItemID         *string          `json:"itemID,omitempty"`
	BoardID        *string          `json:"boardID,omitempty"`
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
