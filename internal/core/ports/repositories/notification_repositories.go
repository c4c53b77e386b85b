package repositories

import (
	"context"
	"time"

	"github.com/planlane/task_board_app/internal/core/domain"
)

// NotificationRepositoryFacade bundles notification persistence. All read
// and mutation paths are scoped to the owning user.
type NotificationRepositoryFacade interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	// FindByIDForUser returns apperrors.ErrNotFound when the notification
	// does not exist or belongs to another user.
	FindByIDForUser(ctx context.Context, notificationID, userID string) (*domain.Notification, error)
	// ListByUserID returns notifications newest first, at most limit rows.
	ListByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	DeleteNotification(ctx context.Context, notificationID string) error
	// HasReminderSince reports whether a reminder for (user, item) was
	// created at or after the given time. Drives reminder suppression.
	HasReminderSince(ctx context.Context, userID, itemID string, since time.Time) (bool, error)
}
