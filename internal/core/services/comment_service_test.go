package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/planlane/task_board_app/internal/apperrors"
	"github.com/planlane/task_board_app/internal/core/domain"
	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/core/services"
	"github.com/planlane/task_board_app/internal/dto"
)

const testCommentID = "comment-1"

type CommentServiceTestSuite struct {
	suite.Suite
	mockCommentRepo   *MockCommentRepository
	mockItemRepo      *MockItemRepository
	mockGroupRepo     *MockGroupRepository
	mockBoardRepo     *MockBoardRepository
	mockWorkspaceRepo *MockWorkspaceRepository
	mockUserRepo      *MockUserRepository
	mockActivity      *MockActivitySvc
	service           portssvc.CommentSvcFacade
}

func (suite *CommentServiceTestSuite) SetupTest() {
	suite.mockCommentRepo = new(MockCommentRepository)
	suite.mockItemRepo = new(MockItemRepository)
	suite.mockGroupRepo = new(MockGroupRepository)
	suite.mockBoardRepo = new(MockBoardRepository)
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockActivity = new(MockActivitySvc)

	access := services.NewAccessService(&portsrepo.RepositoryProvider{
		WorkspaceRepo: suite.mockWorkspaceRepo,
		BoardRepo:     suite.mockBoardRepo,
		GroupRepo:     suite.mockGroupRepo,
		ItemRepo:      suite.mockItemRepo,
		CommentRepo:   suite.mockCommentRepo,
	})
	suite.service = services.NewCommentService(
		suite.mockCommentRepo, suite.mockItemRepo, suite.mockGroupRepo, suite.mockUserRepo,
		access, suite.mockActivity,
	)
}

// expectMemberAccessToComment wires comment -> item -> group -> board ->
// workspace with the named user as a plain member.
func (suite *CommentServiceTestSuite) expectMemberAccessToComment(memberID string) {
	suite.mockCommentRepo.On("ItemIDOf", mock.Anything, testCommentID).Return(testItemID, nil)
	suite.mockItemRepo.On("GroupIDOf", mock.Anything, testItemID).Return(testGroupID, nil)
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
	suite.mockWorkspaceRepo.On("FindMember", mock.Anything, testWorkspaceID, memberID).
		Return(&domain.WorkspaceMember{WorkspaceID: testWorkspaceID, UserID: memberID}, nil)
}

func (suite *CommentServiceTestSuite) TestCreateComment_RecordsActivity() {
	ctx := context.Background()
	suite.mockItemRepo.On("GroupIDOf", mock.Anything, testItemID).Return(testGroupID, nil)
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
	suite.mockUserRepo.On("FindUserByID", mock.Anything, testOwnerID).
		Return(&domain.User{UserID: testOwnerID, Name: "Ana"}, nil).Once()
	suite.mockCommentRepo.On("SaveComment", mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
		return c.ItemID == testItemID && c.UserID == testOwnerID && c.UserName == "Ana" && c.Content == "Looks good"
	})).Return(nil).Once()
	suite.mockItemRepo.On("FindItemByID", mock.Anything, testItemID).
		Return(&domain.Item{ItemID: testItemID, Title: "Design review"}, nil).Once()
	suite.mockActivity.On("Record", mock.Anything, testOwnerID, domain.ActionCommented, domain.KindComment,
		mock.Anything, `commented on "Design review"`, testBoardID, mock.Anything).Return(nil).Once()

	comment, err := suite.service.CreateComment(ctx, testOwnerID, dto.CreateCommentRequest{
		ItemID:  testItemID,
		Content: "Looks good",
	})

	suite.Require().NoError(err)
	suite.Equal("Ana", comment.UserName)
	suite.mockCommentRepo.AssertExpectations(suite.T())
	suite.mockActivity.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestUpdateComment_NonAuthorMemberForbidden() {
	ctx := context.Background()
	suite.expectMemberAccessToComment("member-2")
	suite.mockCommentRepo.On("FindCommentByID", mock.Anything, testCommentID).
		Return(&domain.Comment{CommentID: testCommentID, UserID: "author-1"}, nil).Once()

	comment, err := suite.service.UpdateComment(ctx, "member-2", testCommentID, "hijacked")

	suite.Require().Error(err)
	suite.Nil(comment)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "UpdateComment", mock.Anything, mock.Anything)
}

func (suite *CommentServiceTestSuite) TestUpdateComment_AuthorSucceeds() {
	ctx := context.Background()
	suite.expectMemberAccessToComment("author-1")
	suite.mockCommentRepo.On("FindCommentByID", mock.Anything, testCommentID).
		Return(&domain.Comment{CommentID: testCommentID, UserID: "author-1", Content: "old"}, nil).Once()
	suite.mockCommentRepo.On("UpdateComment", mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
		return c.Content == "new text"
	})).Return(nil).Once()

	comment, err := suite.service.UpdateComment(ctx, "author-1", testCommentID, "new text")

	suite.Require().NoError(err)
	suite.Equal("new text", comment.Content)
	suite.mockCommentRepo.AssertExpectations(suite.T())
}

func (suite *CommentServiceTestSuite) TestDeleteComment_OwnerButNotAuthorForbidden() {
	ctx := context.Background()
	// Even the workspace owner cannot delete someone else's comment.
	suite.mockCommentRepo.On("ItemIDOf", mock.Anything, testCommentID).Return(testItemID, nil)
	suite.mockItemRepo.On("GroupIDOf", mock.Anything, testItemID).Return(testGroupID, nil)
	suite.mockGroupRepo.On("BoardIDOf", mock.Anything, testGroupID).Return(testBoardID, nil)
	suite.mockBoardRepo.On("WorkspaceIDOf", mock.Anything, testBoardID).Return(testWorkspaceID, nil)
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, OwnerID: testOwnerID}, nil)
	suite.mockCommentRepo.On("FindCommentByID", mock.Anything, testCommentID).
		Return(&domain.Comment{CommentID: testCommentID, UserID: "author-1"}, nil).Once()

	err := suite.service.DeleteComment(ctx, testOwnerID, testCommentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockCommentRepo.AssertNotCalled(suite.T(), "DeleteComment", mock.Anything, mock.Anything)
}

func TestCommentService(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
