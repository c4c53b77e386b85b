package services

import (
	"context"
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// NotificationSvcFacade fans out lifecycle events and serves the polling
// consumer surface.
//
// The Notify methods are fire-and-forget: recipients are computed as a
// deduplicated set, each record is created independently, and failures are
// logged without being surfaced since the triggering mutation has already
// committed.
type NotificationSvcFacade interface {
	NotifyAssignment(ctx context.Context, item *domain.Item, boardID, assigneeID string)
	NotifyStatusChange(ctx context.Context, item *domain.Item, boardID string, previous, next domain.ItemStatus)
	// CheckDueSoon scans items due within 24 hours of now and emits reminder
	// notifications, suppressing any (user, item) pair already reminded in
	// the last 24 hours. Returns the number of items checked.
	CheckDueSoon(ctx context.Context, now time.Time) (int, error)

	ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, userID, notificationID string) error
}
