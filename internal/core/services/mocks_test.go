package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock WorkspaceRepository ---

type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	args := m.Called(ctx, workspaceID)
	var ws *domain.Workspace
	if args.Get(0) != nil {
		ws = args.Get(0).(*domain.Workspace)
	}
	return ws, args.Error(1)
}

func (m *MockWorkspaceRepository) ListWorkspacesByUserID(ctx context.Context, userID string) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	var list []domain.Workspace
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Workspace)
	}
	return list, args.Error(1)
}

func (m *MockWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) UpdateWorkspace(ctx context.Context, workspace domain.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member domain.WorkspaceMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindMember(ctx context.Context, workspaceID, userID string) (*domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID, userID)
	var member *domain.WorkspaceMember
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.WorkspaceMember)
	}
	return member, args.Error(1)
}

func (m *MockWorkspaceRepository) ListMembers(ctx context.Context, workspaceID string) ([]domain.WorkspaceMember, error) {
	args := m.Called(ctx, workspaceID)
	var members []domain.WorkspaceMember
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.WorkspaceMember)
	}
	return members, args.Error(1)
}

func (m *MockWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, memberID string) error {
	args := m.Called(ctx, workspaceID, memberID)
	return args.Error(0)
}

// --- Mock BoardRepository ---

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) SaveBoard(ctx context.Context, board domain.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) FindBoardByID(ctx context.Context, boardID string) (*domain.Board, error) {
	args := m.Called(ctx, boardID)
	var board *domain.Board
	if args.Get(0) != nil {
		board = args.Get(0).(*domain.Board)
	}
	return board, args.Error(1)
}

func (m *MockBoardRepository) ListBoardsByWorkspaceID(ctx context.Context, workspaceID string) ([]domain.Board, error) {
	args := m.Called(ctx, workspaceID)
	var boards []domain.Board
	if args.Get(0) != nil {
		boards = args.Get(0).([]domain.Board)
	}
	return boards, args.Error(1)
}

func (m *MockBoardRepository) UpdateBoard(ctx context.Context, board domain.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) DeleteBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

func (m *MockBoardRepository) WorkspaceIDOf(ctx context.Context, boardID string) (string, error) {
	args := m.Called(ctx, boardID)
	return args.String(0), args.Error(1)
}

// --- Mock GroupRepository ---

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	var group *domain.Group
	if args.Get(0) != nil {
		group = args.Get(0).(*domain.Group)
	}
	return group, args.Error(1)
}

func (m *MockGroupRepository) ListGroupsByBoardID(ctx context.Context, boardID string) ([]domain.Group, error) {
	args := m.Called(ctx, boardID)
	var groups []domain.Group
	if args.Get(0) != nil {
		groups = args.Get(0).([]domain.Group)
	}
	return groups, args.Error(1)
}

func (m *MockGroupRepository) UpdateGroup(ctx context.Context, group domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateGroupPosition(ctx context.Context, groupID string, position int64) error {
	args := m.Called(ctx, groupID, position)
	return args.Error(0)
}

func (m *MockGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockGroupRepository) MaxPosition(ctx context.Context, boardID string) (int64, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGroupRepository) BoardIDOf(ctx context.Context, groupID string) (string, error) {
	args := m.Called(ctx, groupID)
	return args.String(0), args.Error(1)
}

// --- Mock ItemRepository ---

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) ListItemsByGroupIDs(ctx context.Context, groupIDs []string, filter portsrepo.ArchiveFilter) ([]domain.Item, error) {
	args := m.Called(ctx, groupIDs, filter)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) MoveItem(ctx context.Context, itemID string, newGroupID *string, position *int64) error {
	args := m.Called(ctx, itemID, newGroupID, position)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) MaxPosition(ctx context.Context, groupID string) (int64, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) GroupIDOf(ctx context.Context, itemID string) (string, error) {
	args := m.Called(ctx, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockItemRepository) ListItemsAssignedTo(ctx context.Context, userID string) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *MockItemRepository) ListItemsDueBetween(ctx context.Context, from, to time.Time) ([]domain.DueItem, error) {
	args := m.Called(ctx, from, to)
	var items []domain.DueItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.DueItem)
	}
	return items, args.Error(1)
}

func (m *MockItemRepository) ListItemDatesByBoard(ctx context.Context, boardID string) ([]domain.ItemDates, error) {
	args := m.Called(ctx, boardID)
	var dates []domain.ItemDates
	if args.Get(0) != nil {
		dates = args.Get(0).([]domain.ItemDates)
	}
	return dates, args.Error(1)
}

// --- Mock ChecklistRepository ---

type MockChecklistRepository struct {
	mock.Mock
}

func (m *MockChecklistRepository) SaveChecklistItem(ctx context.Context, entry domain.ChecklistItem) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockChecklistRepository) FindChecklistItemByID(ctx context.Context, checklistItemID string) (*domain.ChecklistItem, error) {
	args := m.Called(ctx, checklistItemID)
	var entry *domain.ChecklistItem
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.ChecklistItem)
	}
	return entry, args.Error(1)
}

func (m *MockChecklistRepository) ListByItemID(ctx context.Context, itemID string) ([]domain.ChecklistItem, error) {
	args := m.Called(ctx, itemID)
	var entries []domain.ChecklistItem
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ChecklistItem)
	}
	return entries, args.Error(1)
}

func (m *MockChecklistRepository) UpdateChecklistItem(ctx context.Context, entry domain.ChecklistItem) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockChecklistRepository) DeleteChecklistItem(ctx context.Context, checklistItemID string) error {
	args := m.Called(ctx, checklistItemID)
	return args.Error(0)
}

func (m *MockChecklistRepository) MaxPosition(ctx context.Context, itemID string) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChecklistRepository) ItemIDOf(ctx context.Context, checklistItemID string) (string, error) {
	args := m.Called(ctx, checklistItemID)
	return args.String(0), args.Error(1)
}

// --- Mock CommentRepository ---

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	var comment *domain.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentRepository) ListByItemID(ctx context.Context, itemID string) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *MockCommentRepository) ItemIDOf(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

// --- Mock ActivityRepository ---

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveEntry(ctx context.Context, entry domain.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListByBoardID(ctx context.Context, boardID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, boardID, limit)
	var entries []domain.ActivityEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ActivityEntry)
	}
	return entries, args.Error(1)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByIDForUser(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationRepository) ListByUserID(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) HasReminderSince(ctx context.Context, userID, itemID string, since time.Time) (bool, error) {
	args := m.Called(ctx, userID, itemID, since)
	return args.Bool(0), args.Error(1)
}

// --- Mock ActivitySvc ---

type MockActivitySvc struct {
	mock.Mock
}

func (m *MockActivitySvc) Record(ctx context.Context, actorID string, action domain.ActivityAction, entityType domain.EntityKind, entityID, description, boardID string, itemID *string) error {
	args := m.Called(ctx, actorID, action, entityType, entityID, description, boardID, itemID)
	return args.Error(0)
}

func (m *MockActivitySvc) ListBoardActivity(ctx context.Context, actorID, boardID string, limit int) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, actorID, boardID, limit)
	var entries []domain.ActivityEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ActivityEntry)
	}
	return entries, args.Error(1)
}

// --- Mock NotificationSvc ---

type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) NotifyAssignment(ctx context.Context, item *domain.Item, boardID, assigneeID string) {
	m.Called(ctx, item, boardID, assigneeID)
}

func (m *MockNotificationSvc) NotifyStatusChange(ctx context.Context, item *domain.Item, boardID string, previous, next domain.ItemStatus) {
	m.Called(ctx, item, boardID, previous, next)
}

func (m *MockNotificationSvc) CheckDueSoon(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context, userID string, limit int, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit, unreadOnly)
	var notifications []domain.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *MockNotificationSvc) UnreadCount(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationSvc) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	var notification *domain.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*domain.Notification)
	}
	return notification, args.Error(1)
}

func (m *MockNotificationSvc) MarkAllRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationSvc) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}
