package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/core/services"
)

type RoadmapServiceTestSuite struct {
	suite.Suite
	mockBoardRepo     *MockBoardRepository
	mockItemRepo      *MockItemRepository
	mockWorkspaceRepo *MockWorkspaceRepository
	service           portssvc.RoadmapSvcFacade
}

func (suite *RoadmapServiceTestSuite) SetupTest() {
	suite.mockBoardRepo = new(MockBoardRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)

	access := services.NewAccessService(&portsrepo.RepositoryProvider{
		WorkspaceRepo: suite.mockWorkspaceRepo,
		BoardRepo:     suite.mockBoardRepo,
		ItemRepo:      suite.mockItemRepo,
	})
	suite.service = services.NewRoadmapService(suite.mockBoardRepo, suite.mockItemRepo, access)
}

func (suite *RoadmapServiceTestSuite) expectOwnerAccess() {
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
}

func day(dayOfMonth int) time.Time {
	return time.Date(2024, 1, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func (suite *RoadmapServiceTestSuite) TestBoardRange_SpansMinStartToMaxEnd() {
	ctx := context.Background()
	suite.expectOwnerAccess()

	// Item A: 10th..15th. Item B: due-only 25th. Item C: dateless.
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, testBoardID).Return([]domain.ItemDates{
		{StartDate: timePtr(day(10)), CompletedAt: timePtr(day(15))},
		{DueDate: timePtr(day(25))},
		{},
	}, nil).Once()

	r, err := suite.service.BoardRange(ctx, testOwnerID, testBoardID)

	suite.Require().NoError(err)
	suite.Require().NotNil(r)
	suite.Equal(day(10), r.Start)
	suite.Equal(day(25), r.End)
}

func (suite *RoadmapServiceTestSuite) TestBoardRange_FallbackOrder() {
	ctx := context.Background()
	suite.expectOwnerAccess()

	// Start falls back startDate -> dueDate -> completedAt; end falls back
	// completedAt -> dueDate -> startDate.
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, testBoardID).Return([]domain.ItemDates{
		{CompletedAt: timePtr(day(5))}, // both ends become the 5th
	}, nil).Once()

	r, err := suite.service.BoardRange(ctx, testOwnerID, testBoardID)

	suite.Require().NoError(err)
	suite.Require().NotNil(r)
	suite.Equal(day(5), r.Start)
	suite.Equal(day(5), r.End)
}

func (suite *RoadmapServiceTestSuite) TestBoardRange_NilWhenNoDatedItems() {
	ctx := context.Background()
	suite.expectOwnerAccess()
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, testBoardID).
		Return([]domain.ItemDates{{}, {}}, nil).Once()

	r, err := suite.service.BoardRange(ctx, testOwnerID, testBoardID)

	suite.Require().NoError(err)
	suite.Nil(r)
}

func (suite *RoadmapServiceTestSuite) TestWorkspaceRoadmap_SortedAscendingByStart() {
	ctx := context.Background()
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)

	suite.mockBoardRepo.On("ListBoardsByWorkspaceID", mock.Anything, testWorkspaceID).Return([]domain.Board{
		{BoardID: "board-late", Name: "Late"},
		{BoardID: "board-early", Name: "Early"},
		{BoardID: "board-empty", Name: "Empty"},
	}, nil).Once()
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, "board-late").
		Return([]domain.ItemDates{{StartDate: timePtr(day(20)), DueDate: timePtr(day(28))}}, nil).Once()
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, "board-early").
		Return([]domain.ItemDates{{StartDate: timePtr(day(2)), DueDate: timePtr(day(8))}}, nil).Once()
	suite.mockItemRepo.On("ListItemDatesByBoard", mock.Anything, "board-empty").
		Return([]domain.ItemDates{}, nil).Once()

	entries, err := suite.service.WorkspaceRoadmap(ctx, testOwnerID, testWorkspaceID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("board-early", entries[0].BoardID)
	suite.Equal("board-late", entries[1].BoardID)
	suite.Equal(day(2), entries[0].StartDate)
	suite.Equal(day(8), entries[0].EndDate)
}

func TestRoadmapService(t *testing.T) {
	suite.Run(t, new(RoadmapServiceTestSuite))
}
