package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

var FULL_NOTIFICATION_SELECT_QUERY = `
SELECT
	n.notification_id, n.user_id, n.type, n.title, n.message,
	n.item_id, n.board_id, n.is_read, n.created_at
FROM notifications n
`

func (r *PgxNotificationRepository) getNotifications(ctx context.Context, filterQuery string, args ...any) ([]domain.Notification, error) {
	query := FULL_NOTIFICATION_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notifications", err)
	}
	defer rows.Close()
	notifications, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Notification])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Notification{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (
			notification_id, user_id, type, title, message,
			item_id, board_id, is_read, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.ItemID,
		notification.BoardID,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("user does not exist")
		}
		return apperrors.NewAppError(500, "failed to save notification "+notification.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindByIDForUser(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	notifications, err := r.getNotifications(ctx, `WHERE n.notification_id = $1 AND n.user_id = $2`, notificationID, userID)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &notifications[0], nil
}

func (r *PgxNotificationRepository) ListByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	filter := `WHERE n.user_id = $1`
	if unreadOnly {
		filter += ` AND n.is_read = FALSE`
	}
	filter += ` ORDER BY n.created_at DESC LIMIT $2`
	return r.getNotifications(ctx, filter, userID, limit)
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE;`, userID,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count unread notifications", err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read "+notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE;`, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notifications read for user "+userID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM notifications WHERE notification_id = $1;`, notificationID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete notification "+notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// HasReminderSince reports whether a reminder for (user, item) exists at
// or after the given time.
func (r *PgxNotificationRepository) HasReminderSince(ctx context.Context, userID, itemID string, since time.Time) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = $1 AND item_id = $2 AND type = $3 AND created_at >= $4
		);
	`
	err := r.Pool.QueryRow(ctx, query, userID, itemID, domain.NotificationReminder, since).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check reminder history", err)
	}
	return exists, nil
}
