package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/core/services"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockNotificationRepo *MockNotificationRepository
	mockWorkspaceRepo    *MockWorkspaceRepository
	mockBoardRepo        *MockBoardRepository
	mockItemRepo         *MockItemRepository
	service              portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockBoardRepo = new(MockBoardRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.service = services.NewNotificationService(
		suite.mockNotificationRepo, suite.mockWorkspaceRepo, suite.mockBoardRepo, suite.mockItemRepo,
		24*time.Hour,
	)
}

func (suite *NotificationServiceTestSuite) expectWorkspaceOwner(ownerID string) {
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: ownerID}, nil)
}

// --- Fanout ---

func (suite *NotificationServiceTestSuite) TestNotifyAssignment_FansOutToAssigneeAndOwner() {
	ctx := context.Background()
	suite.expectWorkspaceOwner(testOwnerID)

	item := &domain.Item{ItemID: testItemID, Title: "Ship it"}
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "user-2" && n.Type == domain.NotificationAssignment &&
			n.Message == `You have been assigned "Ship it"`
	})).Return(nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == testOwnerID && n.Type == domain.NotificationAssignment
	})).Return(nil).Once()

	suite.service.NotifyAssignment(ctx, item, testBoardID, "user-2")

	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestNotifyAssignment_OwnerAssigneeDeduplicated() {
	ctx := context.Background()
	suite.expectWorkspaceOwner(testOwnerID)

	item := &domain.Item{ItemID: testItemID, Title: "Self serve"}
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == testOwnerID
	})).Return(nil).Once()

	// Owner assigns to themselves: exactly one record.
	suite.service.NotifyAssignment(ctx, item, testBoardID, testOwnerID)

	suite.mockNotificationRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertNumberOfCalls(suite.T(), "SaveNotification", 1)
}

func (suite *NotificationServiceTestSuite) TestNotifyStatusChange_MessageNamesBothStatuses() {
	ctx := context.Background()
	suite.expectWorkspaceOwner(testOwnerID)

	assignee := "user-2"
	item := &domain.Item{ItemID: testItemID, Title: "Ship it", AssignedTo: &assignee}
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Message == `"Ship it" changed from in_progress to done`
	})).Return(nil).Twice()

	suite.service.NotifyStatusChange(ctx, item, testBoardID, domain.StatusInProgress, domain.StatusDone)

	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestFanout_FailedInsertDoesNotStopOthers() {
	ctx := context.Background()
	suite.expectWorkspaceOwner(testOwnerID)

	item := &domain.Item{ItemID: testItemID, Title: "Ship it"}
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "user-2"
	})).Return(errors.New("insert failed")).Once()
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == testOwnerID
	})).Return(nil).Once()

	suite.service.NotifyAssignment(ctx, item, testBoardID, "user-2")

	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestFanout_BrokenChainStillNotifiesPrimary() {
	ctx := context.Background()
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return("", apperrors.ErrNotFound)

	item := &domain.Item{ItemID: testItemID, Title: "Orphan"}
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "user-2"
	})).Return(nil).Once()

	suite.service.NotifyAssignment(ctx, item, testBoardID, "user-2")

	suite.mockNotificationRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertNumberOfCalls(suite.T(), "SaveNotification", 1)
}

// --- Reminder sweep ---

func dueItem(itemID, title string, assignee *string, due time.Time) domain.DueItem {
	return domain.DueItem{
		Item: domain.Item{
			ItemID:     itemID,
			Title:      title,
			AssignedTo: assignee,
			DueDate:    &due,
		},
		BoardID: testBoardID,
	}
}

func (suite *NotificationServiceTestSuite) TestCheckDueSoon_RemindsAssignee() {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	assignee := "user-2"
	due := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)

	suite.mockItemRepo.On("ListItemsDueBetween", mock.Anything, now, now.Add(24*time.Hour)).
		Return([]domain.DueItem{dueItem(testItemID, "Quarterly report", &assignee, due)}, nil).Once()
	suite.mockNotificationRepo.On("HasReminderSince", mock.Anything, assignee, testItemID, now.Add(-24*time.Hour)).
		Return(false, nil).Once()
	suite.mockNotificationRepo.On("SaveNotification", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == assignee && n.Type == domain.NotificationReminder &&
			n.Message == `"Quarterly report" is due Jan 10, 2024`
	})).Return(nil).Once()

	checked, err := suite.service.CheckDueSoon(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, checked)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestCheckDueSoon_SuppressesRecentReminder() {
	ctx := context.Background()
	now := time.Now()
	assignee := "user-2"

	suite.mockItemRepo.On("ListItemsDueBetween", mock.Anything, now, now.Add(24*time.Hour)).
		Return([]domain.DueItem{dueItem(testItemID, "Quarterly report", &assignee, now.Add(6*time.Hour))}, nil).Once()
	suite.mockNotificationRepo.On("HasReminderSince", mock.Anything, assignee, testItemID, mock.Anything).
		Return(true, nil).Once()

	checked, err := suite.service.CheckDueSoon(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, checked)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestCheckDueSoon_SkipsUnassigned() {
	ctx := context.Background()
	now := time.Now()

	suite.mockItemRepo.On("ListItemsDueBetween", mock.Anything, now, now.Add(24*time.Hour)).
		Return([]domain.DueItem{dueItem(testItemID, "Nobody's task", nil, now.Add(time.Hour))}, nil).Once()

	checked, err := suite.service.CheckDueSoon(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, checked)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "HasReminderSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification", mock.Anything, mock.Anything)
}

// --- Consumer surface ---

func (suite *NotificationServiceTestSuite) TestMarkRead_ScopedToOwner() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("FindByIDForUser", mock.Anything, "notif-1", "user-2").
		Return(nil, apperrors.ErrNotFound).Once()

	notification, err := suite.service.MarkRead(ctx, "user-2", "notif-1")

	suite.Require().Error(err)
	suite.Nil(notification)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "MarkRead", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestMarkRead_SetsFlag() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("FindByIDForUser", mock.Anything, "notif-1", "user-2").
		Return(&domain.Notification{NotificationID: "notif-1", UserID: "user-2"}, nil).Once()
	suite.mockNotificationRepo.On("MarkRead", mock.Anything, "notif-1").Return(nil).Once()

	notification, err := suite.service.MarkRead(ctx, "user-2", "notif-1")

	suite.Require().NoError(err)
	suite.True(notification.IsRead)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestListNotifications_DefaultsLimit() {
	ctx := context.Background()
	suite.mockNotificationRepo.On("ListByUserID", mock.Anything, "user-2", 50, false).
		Return([]domain.Notification{}, nil).Once()

	_, err := suite.service.ListNotifications(ctx, "user-2", 0, false)

	suite.Require().NoError(err)
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
