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

type WorkspaceServiceTestSuite struct {
	suite.Suite
	mockWorkspaceRepo *MockWorkspaceRepository
	mockUserRepo      *MockUserRepository
	access            portssvc.AccessSvcFacade
	service           portssvc.WorkspaceSvcFacade
}

func (suite *WorkspaceServiceTestSuite) SetupTest() {
	suite.mockWorkspaceRepo = new(MockWorkspaceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.access = services.NewAccessService(&portsrepo.RepositoryProvider{
		WorkspaceRepo: suite.mockWorkspaceRepo,
	})
	suite.service = services.NewWorkspaceService(suite.mockWorkspaceRepo, suite.mockUserRepo, suite.access)
}

func (suite *WorkspaceServiceTestSuite) expectWorkspace() {
	suite.mockWorkspaceRepo.On("FindWorkspaceByID", mock.Anything, testWorkspaceID).
		Return(&domain.Workspace{WorkspaceID: testWorkspaceID, Name: "Agency", OwnerID: testOwnerID}, nil)
}

func (suite *WorkspaceServiceTestSuite) TestCreateWorkspace_SetsOwner() {
	ctx := context.Background()
	suite.mockWorkspaceRepo.On("SaveWorkspace", mock.Anything, mock.MatchedBy(func(ws domain.Workspace) bool {
		return ws.OwnerID == testOwnerID && ws.Name == "Agency" && ws.WorkspaceID != ""
	})).Return(nil).Once()

	ws, err := suite.service.CreateWorkspace(ctx, testOwnerID, dto.CreateWorkspaceRequest{Name: "Agency"})

	suite.Require().NoError(err)
	suite.Equal(testOwnerID, ws.OwnerID)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestUpdateWorkspace_MemberForbidden() {
	ctx := context.Background()
	suite.expectWorkspace()

	name := "Renamed"
	ws, err := suite.service.UpdateWorkspace(ctx, "member-2", testWorkspaceID, dto.UpdateWorkspaceRequest{Name: &name})

	suite.Require().Error(err)
	suite.Nil(ws)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "UpdateWorkspace", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestDeleteWorkspace_OwnerOnly() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockWorkspaceRepo.On("DeleteWorkspace", mock.Anything, testWorkspaceID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteWorkspace(ctx, testOwnerID, testWorkspaceID))
	suite.ErrorIs(suite.service.DeleteWorkspace(ctx, "member-2", testWorkspaceID), apperrors.ErrForbidden)
	suite.mockWorkspaceRepo.AssertExpectations(suite.T())
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_UnknownEmail() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	member, err := suite.service.AddMember(ctx, testOwnerID, testWorkspaceID, dto.AddMemberRequest{Email: "ghost@example.com"})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_OwnerCannotBeMember() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "owner@example.com").
		Return(&domain.User{UserID: testOwnerID, Email: "owner@example.com"}, nil).Once()

	member, err := suite.service.AddMember(ctx, testOwnerID, testWorkspaceID, dto.AddMemberRequest{Email: "owner@example.com"})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockWorkspaceRepo.AssertNotCalled(suite.T(), "AddMember", mock.Anything, mock.Anything)
}

func (suite *WorkspaceServiceTestSuite) TestAddMember_DuplicateConflict() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockUserRepo.On("FindUserByEmail", mock.Anything, "dev@example.com").
		Return(&domain.User{UserID: "user-2", Name: "Dev", Email: "dev@example.com"}, nil).Once()
	suite.mockWorkspaceRepo.On("AddMember", mock.Anything, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	member, err := suite.service.AddMember(ctx, testOwnerID, testWorkspaceID, dto.AddMemberRequest{Email: "dev@example.com"})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *WorkspaceServiceTestSuite) TestRemoveMember_RevocationIsImmediate() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockWorkspaceRepo.On("RemoveMember", mock.Anything, testWorkspaceID, "member-rec-1").Return(nil).Once()

	suite.Require().NoError(suite.service.RemoveMember(ctx, testOwnerID, testWorkspaceID, "member-rec-1"))

	// The next access check re-reads the live membership table and denies.
	suite.mockWorkspaceRepo.On("FindMember", mock.Anything, testWorkspaceID, "user-2").
		Return(nil, apperrors.ErrNotFound).Once()
	err := suite.access.RequireAccess(ctx, "user-2", domain.EntityRef{Kind: domain.KindWorkspace, ID: testWorkspaceID})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *WorkspaceServiceTestSuite) TestListMembers_ReturnsOwnerAndMembers() {
	ctx := context.Background()
	suite.expectWorkspace()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, testOwnerID).
		Return(&domain.User{UserID: testOwnerID, Name: "Ana"}, nil).Once()
	suite.mockWorkspaceRepo.On("ListMembers", mock.Anything, testWorkspaceID).
		Return([]domain.WorkspaceMember{{UserID: "user-2"}}, nil).Once()

	owner, members, err := suite.service.ListMembers(ctx, testOwnerID, testWorkspaceID)

	suite.Require().NoError(err)
	suite.Equal("Ana", owner.Name)
	suite.Len(members, 1)
}

func TestWorkspaceService(t *testing.T) {
	suite.Run(t, new(WorkspaceServiceTestSuite))
}
