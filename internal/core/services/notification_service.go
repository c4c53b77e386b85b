package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
)

const defaultNotificationLimit = 50

// NotificationService fans out lifecycle events and serves the polling
// consumer surface. Fanout is fire-and-forget: one record per recipient,
// created independently, failures logged and swallowed because the
// triggering mutation has already committed.
type NotificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	workspaceRepo    portsrepo.WorkspaceRepositoryFacade
	boardRepo        portsrepo.BoardRepositoryFacade
	itemRepo         portsrepo.ItemRepositoryFacade
	reminderWindow   time.Duration
}

// NewNotificationService creates a new NotificationService. reminderWindow
// bounds both the due-soon horizon and the per-(user, item) suppression.
func NewNotificationService(nr portsrepo.NotificationRepositoryFacade, wr portsrepo.WorkspaceRepositoryFacade, br portsrepo.BoardRepositoryFacade, ir portsrepo.ItemRepositoryFacade, reminderWindow time.Duration) portssvc.NotificationSvcFacade {
	if reminderWindow <= 0 {
		reminderWindow = 24 * time.Hour
	}
	return &NotificationService{
		notificationRepo: nr,
		workspaceRepo:    wr,
		boardRepo:        br,
		itemRepo:         ir,
		reminderWindow:   reminderWindow,
	}
}

var _ portssvc.NotificationSvcFacade = (*NotificationService)(nil)

// recipientsFor computes the deduplicated recipient set for an event on a
// board: the given user plus the owning workspace's owner when distinct.
func (s *NotificationService) recipientsFor(ctx context.Context, boardID, userID string) []string {
	recipients := make([]string, 0, 2)
	seen := make(map[string]bool, 2)
	if userID != "" {
		recipients = append(recipients, userID)
		seen[userID] = true
	}

	workspaceID, err := s.boardRepo.WorkspaceIDOf(ctx, boardID)
	if err != nil {
		s.LogWarn(ctx, "Failed to resolve workspace for fanout", slog.String("board_id", boardID), slog.String("error", err.Error()))
		return recipients
	}
	workspace, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		s.LogWarn(ctx, "Failed to load workspace for fanout", slog.String("workspace_id", workspaceID), slog.String("error", err.Error()))
		return recipients
	}
	if !seen[workspace.OwnerID] {
		recipients = append(recipients, workspace.OwnerID)
	}
	return recipients
}

// deliver creates one record per recipient. Each insert is independent; a
// failed one does not stop the rest.
func (s *NotificationService) deliver(ctx context.Context, recipients []string, kind domain.NotificationType, title, message string, itemID, boardID *string) {
	for _, userID := range recipients {
		notification := domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         userID,
			Type:           kind,
			Title:          title,
			Message:        message,
			ItemID:         itemID,
			BoardID:        boardID,
			CreatedAt:      time.Now(),
		}
		if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
			s.LogWarn(ctx, "Failed to create notification",
				slog.String("user_id", userID),
				slog.String("type", string(kind)),
				slog.String("error", err.Error()))
		}
	}
}

// NotifyAssignment notifies the new assignee and the workspace owner.
func (s *NotificationService) NotifyAssignment(ctx context.Context, item *domain.Item, boardID, assigneeID string) {
	recipients := s.recipientsFor(ctx, boardID, assigneeID)
	message := fmt.Sprintf("You have been assigned %q", item.Title)
	s.deliver(ctx, recipients, domain.NotificationAssignment, "New assignment", message, &item.ItemID, &boardID)
}

// NotifyStatusChange notifies the current assignee and the workspace
// owner, naming both statuses verbatim.
func (s *NotificationService) NotifyStatusChange(ctx context.Context, item *domain.Item, boardID string, previous, next domain.ItemStatus) {
	assignee := ""
	if item.AssignedTo != nil {
		assignee = *item.AssignedTo
	}
	recipients := s.recipientsFor(ctx, boardID, assignee)
	message := fmt.Sprintf("%q changed from %s to %s", item.Title, previous, next)
	s.deliver(ctx, recipients, domain.NotificationStatus, "Status changed", message, &item.ItemID, &boardID)
}

// CheckDueSoon scans assigned, non-completed items due within the window
// and emits one reminder per assignee, suppressing pairs already reminded
// within the same window. Returns the number of items checked.
func (s *NotificationService) CheckDueSoon(ctx context.Context, now time.Time) (int, error) {
	dueItems, err := s.itemRepo.ListItemsDueBetween(ctx, now, now.Add(s.reminderWindow))
	if err != nil {
		return 0, fmt.Errorf("failed to list due items: %w", err)
	}

	for _, due := range dueItems {
		item := due.Item
		if item.AssignedTo == nil {
			continue
		}
		userID := *item.AssignedTo

		reminded, err := s.notificationRepo.HasReminderSince(ctx, userID, item.ItemID, now.Add(-s.reminderWindow))
		if err != nil {
			s.LogWarn(ctx, "Failed to check reminder suppression",
				slog.String("user_id", userID),
				slog.String("item_id", item.ItemID),
				slog.String("error", err.Error()))
			continue
		}
		if reminded {
			continue
		}

		message := fmt.Sprintf("%q is due soon", item.Title)
		if item.DueDate != nil {
			message = fmt.Sprintf("%q is due %s", item.Title, item.DueDate.Format("Jan 2, 2006"))
		}
		boardID := due.BoardID
		s.deliver(ctx, []string{userID}, domain.NotificationReminder, "Due soon", message, &item.ItemID, &boardID)
	}

	s.LogInfo(ctx, "Due-soon sweep finished", slog.Int("items_checked", len(dueItems)))
	return len(dueItems), nil
}

// ListNotifications returns the user's notifications newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return s.notificationRepo.ListByUserID(ctx, userID, limit, unreadOnly)
}

// UnreadCount returns the user's unread notification count.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, userID)
}

// MarkRead marks one of the user's notifications read.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindByIDForUser(ctx, notificationID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	notification.IsRead = true
	return notification, nil
}

// MarkAllRead marks every notification of the user read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// DeleteNotification removes one of the user's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	if _, err := s.notificationRepo.FindByIDForUser(ctx, notificationID, userID); err != nil {
		return err
	}
	return s.notificationRepo.DeleteNotification(ctx, notificationID)
}
