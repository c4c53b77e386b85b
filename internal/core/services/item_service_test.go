package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/core/services"
	"github.com/planlane/task_board_app/internal/dto"
)

const (
	testOwnerID     = "owner-1"
	testWorkspaceID = "ws-1"
	testBoardID     = "board-1"
	testGroupID     = "group-1"
	testItemID      = "item-1"
)

type ItemServiceTestSuite struct {
	suite.Suite
	mockItemRepo      *MockItemRepository
	mockGroupRepo     *MockGroupRepository
	mockBoardRepo     *MockBoardRepository
	mockWorkspaceRepo *MockWorkspaceRepository
	mockActivity      *MockActivitySvc
	mockNotification  *MockNotificationSvc
	service           portssvc.ItemSvcFacade
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockBoardRepo = new(MockBoardRepository)
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockActivity = new(MockActivitySvc)
	suite.mockNotification = new(MockNotificationSvc)

	access := services.NewAccessService(&portsrepo.RepositoryProvider{
		WorkspaceRepo: suite.mockWorkspaceRepo,
		BoardRepo:     suite.mockBoardRepo,
		GroupRepo:     suite.mockGroupRepo,
		ItemRepo:      suite.mockItemRepo,
	})
	suite.service = services.NewItemService(
		suite.mockItemRepo, suite.mockGroupRepo, suite.mockBoardRepo,
		access, suite.mockActivity, suite.mockNotification,
	)
}

// expectOwnerAccessToItem wires the ownership chain item -> group -> board
// -> workspace with the actor as workspace owner.
func (suite *ItemServiceTestSuite) expectOwnerAccessToItem() {
	suite.mockItemRepo.On("GroupIDOf", mock.Anything, testItemID).Return(testGroupID, nil)
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
}

func (suite *ItemServiceTestSuite) expectBoard(isRetainer bool) {
	suite.mockBoardRepo.On("FindBoardByID", mock.Anything, testBoardID).
		Return(&domain.Board{BoardID: testBoardID, WorkspaceID: testWorkspaceID, IsRetainer: isRetainer}, nil)
}

func openItem() *domain.Item {
	return &domain.Item{
		ItemID:   testItemID,
		GroupID:  testGroupID,
		Title:    "Design review",
		Position: 3,
		Status:   domain.StatusInProgress,
		Priority: domain.PriorityMedium,
	}
}

func strPtr(s string) *string { return &s }

// --- CreateItem ---

func (suite *ItemServiceTestSuite) TestCreateItem_AppendsAfterMaxPosition() {
	ctx := context.Background()
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
	suite.expectBoard(false)
	suite.mockItemRepo.On("MaxPosition", mock.Anything, testGroupID).Return(int64(4), nil).Once()
	suite.mockItemRepo.On("SaveItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.Position == 5 && item.Status == domain.StatusTodo && item.Priority == domain.PriorityMedium
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, testOwnerID, domain.ActionCreated, domain.KindItem,
		mock.Anything, mock.Anything, testBoardID, mock.Anything).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, testOwnerID, dto.CreateItemRequest{
		Title:   "New task",
		GroupID: testGroupID,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(5), item.Position)
	suite.False(item.IsArchived)
	suite.Nil(item.CompletedAt)
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_CompletedOnRetainerBoardRejected() {
	ctx := context.Background()
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
	suite.expectBoard(true)

	item, err := suite.service.CreateItem(ctx, testOwnerID, dto.CreateItemRequest{
		Title:   "Already done",
		GroupID: testGroupID,
		Status:  strPtr("done"),
	})

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

// --- UpdateItem lifecycle transitions ---

func (suite *ItemServiceTestSuite) TestUpdateItem_CompleteOnRetainerBoardWithoutHoursFails() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(openItem(), nil).Once()

	item, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status: strPtr("done"),
	})

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Validation happens before any write.
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NegativeHoursFails() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(openItem(), nil).Once()

	hours := decimal.NewFromFloat(-1.5)
	_, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status:        strPtr("done"),
		RetainerHours: dto.Nullable[decimal.Decimal]{Set: true, Value: &hours},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_CompleteOnRetainerBoardWithHours() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(openItem(), nil).Once()

	hours := decimal.NewFromFloat(12.5)
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.Status == domain.StatusDone &&
			item.IsArchived &&
			item.CompletedAt != nil &&
			item.RetainerHours != nil && item.RetainerHours.Equal(hours)
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, testOwnerID, domain.ActionUpdated, domain.KindItem,
		testItemID, mock.Anything, testBoardID, mock.Anything).Return(nil).Once()
	suite.mockNotification.On("NotifyStatusChange", mock.Anything, mock.Anything, testBoardID,
		domain.StatusInProgress, domain.StatusDone).Return().Once()

	item, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status:        strPtr("done"),
		RetainerHours: dto.Nullable[decimal.Decimal]{Set: true, Value: &hours},
	})

	suite.Require().NoError(err)
	suite.True(item.IsArchived)
	suite.NotNil(item.CompletedAt)
	suite.True(item.RetainerHours.Equal(hours))
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockNotification.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_CompleteOnStandardBoardNeedsNoHours() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(false)
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(openItem(), nil).Once()
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.IsArchived && item.CompletedAt != nil && item.RetainerHours == nil
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.mockNotification.On("NotifyStatusChange", mock.Anything, mock.Anything, testBoardID,
		domain.StatusInProgress, domain.StatusDone).Return().Once()

	item, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status: strPtr("done"),
	})

	suite.Require().NoError(err)
	suite.True(item.IsArchived)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_ReopenClearsCompletionState() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)

	completedAt := time.Now().Add(-time.Hour)
	hours := decimal.NewFromInt(8)
	completed := openItem()
	completed.Status = domain.StatusDone
	completed.IsArchived = true
	completed.CompletedAt = &completedAt
	completed.RetainerHours = &hours
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(completed, nil).Once()

	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.Status == domain.StatusTodo &&
			!item.IsArchived &&
			item.CompletedAt == nil &&
			item.RetainerHours == nil
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.mockNotification.On("NotifyStatusChange", mock.Anything, mock.Anything, testBoardID,
		domain.StatusDone, domain.StatusTodo).Return().Once()

	item, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status: strPtr("todo"),
	})

	suite.Require().NoError(err)
	suite.False(item.IsArchived)
	suite.Nil(item.CompletedAt)
	suite.Nil(item.RetainerHours)
	suite.mockItemRepo.AssertExpectations(suite.T())
	suite.mockNotification.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_SameStatusDoesNotRetransition() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)

	completedAt := time.Now().Add(-time.Hour)
	hours := decimal.NewFromInt(8)
	completed := openItem()
	completed.Status = domain.StatusDone
	completed.IsArchived = true
	completed.CompletedAt = &completedAt
	completed.RetainerHours = &hours
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(completed, nil).Once()

	// Re-sending the current status with a title edit keeps the original
	// completion timestamp and hours.
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.Title == "Renamed" &&
			item.CompletedAt != nil && item.CompletedAt.Equal(completedAt) &&
			item.RetainerHours != nil && item.RetainerHours.Equal(hours)
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		Status: strPtr("done"),
		Title:  strPtr("Renamed"),
	})

	suite.Require().NoError(err)
	suite.mockNotification.AssertNotCalled(suite.T(), "NotifyStatusChange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_StandaloneHoursCorrection() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(true)

	completedAt := time.Now().Add(-time.Hour)
	oldHours := decimal.NewFromInt(8)
	completed := openItem()
	completed.Status = domain.StatusDone
	completed.IsArchived = true
	completed.CompletedAt = &completedAt
	completed.RetainerHours = &oldHours
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(completed, nil).Once()

	newHours := decimal.NewFromFloat(10.25)
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.MatchedBy(func(item domain.Item) bool {
		return item.RetainerHours != nil && item.RetainerHours.Equal(newHours) &&
			item.IsArchived && item.CompletedAt != nil && item.Status == domain.StatusDone
	})).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	item, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		RetainerHours: dto.Nullable[decimal.Decimal]{Set: true, Value: &newHours},
	})

	suite.Require().NoError(err)
	suite.True(item.RetainerHours.Equal(newHours))
	suite.mockNotification.AssertNotCalled(suite.T(), "NotifyStatusChange",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_AssignmentChangeNotifies() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.expectBoard(false)
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(openItem(), nil).Once()
	suite.mockItemRepo.On("UpdateItem", mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockActivity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.mockNotification.On("NotifyAssignment", mock.Anything, mock.Anything, testBoardID, "user-2").Return().Once()

	assignee := "user-2"
	_, err := suite.service.UpdateItem(ctx, testOwnerID, testItemID, dto.UpdateItemRequest{
		AssignedTo: dto.Nullable[string]{Set: true, Value: &assignee},
	})

	suite.Require().NoError(err)
	suite.mockNotification.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NonMemberForbidden() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	suite.mockWorkspaceRepo.On("FindMember", mock.Anything, testWorkspaceID, "stranger").
		Return(nil, apperrors.ErrNotFound).Once()

	item, err := suite.service.UpdateItem(ctx, "stranger", testItemID, dto.UpdateItemRequest{
		Title: strPtr("nope"),
	})

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "UpdateItem", mock.Anything, mock.Anything)
}

// --- ReorderItem ---

func (suite *ItemServiceTestSuite) TestReorderItem_RequiresPositionOrGroup() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()

	item, err := suite.service.ReorderItem(ctx, testOwnerID, testItemID, dto.ReorderItemRequest{})

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockItemRepo.AssertNotCalled(suite.T(), "MoveItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestReorderItem_MoveToGroup() {
	ctx := context.Background()
	suite.expectOwnerAccessToItem()
	targetGroup := "group-2"
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, targetGroup).Return(testBoardID, nil)

	pos := int64(2)
	suite.mockItemRepo.On("MoveItem", mock.Anything, testItemID, &targetGroup, &pos).Return(nil).Once()
	moved := openItem()
	moved.GroupID = targetGroup
	moved.Position = pos
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).Return(moved, nil).Once()

	item, err := suite.service.ReorderItem(ctx, testOwnerID, testItemID, dto.ReorderItemRequest{
		NewPosition: &pos,
		NewGroupID:  &targetGroup,
	})

	suite.Require().NoError(err)
	suite.Equal(targetGroup, item.GroupID)
	suite.Equal(pos, item.Position)
	suite.mockItemRepo.AssertExpectations(suite.T())
}

func TestItemService(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
