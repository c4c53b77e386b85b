package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	boardService     portssvc.BoardSvcFacade
	roadmapService   portssvc.RoadmapSvcFacade
}

func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade, bs portssvc.BoardSvcFacade, rs portssvc.RoadmapSvcFacade) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
		boardService:     bs,
		roadmapService:   rs,
	}
}

// registerWorkspaceRoutes registers routes for workspaces, their members,
// their board listing and the workspace roadmap.
func registerWorkspaceRoutes(rg *gin.RouterGroup, ws portssvc.WorkspaceSvcFacade, bs portssvc.BoardSvcFacade, rs portssvc.RoadmapSvcFacade) {
	h := newWorkspaceHandler(ws, bs, rs)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", h.createWorkspace)
		workspaces.GET("", h.listUserWorkspaces)
	}

	workspace := rg.Group("/workspaces/:workspace_id")
	{
		workspace.GET("", h.getWorkspace)
		workspace.PUT("", h.updateWorkspace)
		workspace.DELETE("", h.deleteWorkspace)

		workspace.GET("/members", h.listMembers)
		workspace.POST("/members", h.addMember)
		workspace.DELETE("/members/:member_id", h.removeMember)

		workspace.GET("/boards", h.listBoards)
		workspace.GET("/roadmap", h.workspaceRoadmap)
	}
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a new workspace owned by the caller.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.WorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

// listUserWorkspaces godoc
// @Summary List workspaces for current user
// @Description Retrieves every workspace the caller owns or is a member of.
// @Tags workspaces
// @Produce json
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listUserWorkspaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspaces, err := h.workspaceService.ListUserWorkspaces(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// getWorkspace godoc
// @Summary Get workspace
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [get]
func (h *workspaceHandler) getWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workspace, err := h.workspaceService.GetWorkspace(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// updateWorkspace godoc
// @Summary Update workspace
// @Description Owner-only partial update of name and description.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param workspace body dto.UpdateWorkspaceRequest true "Updates"
// @Success 200 {object} dto.WorkspaceResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [put]
func (h *workspaceHandler) updateWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

// deleteWorkspace godoc
// @Summary Delete workspace
// @Description Owner-only. Removes the workspace and everything under it.
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), userID, c.Param("workspace_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// listMembers godoc
// @Summary List workspace members
// @Description Returns the workspace owner and the member list.
// @Tags workspaces
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.MembersResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [get]
func (h *workspaceHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	owner, members, err := h.workspaceService.ListMembers(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list members")
		return
	}

	resp := dto.MembersResponse{
		Owner:   dto.ToUserResponse(owner),
		Members: make([]dto.MemberResponse, len(members)),
	}
	for i := range members {
		resp.Members[i] = dto.ToMemberResponse(&members[i])
	}
	c.JSON(http.StatusOK, resp)
}

// addMember godoc
// @Summary Add workspace member
// @Description Owner-only. Adds a user by email.
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Param member body dto.AddMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members [post]
func (h *workspaceHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	member, err := h.workspaceService.AddMember(c.Request.Context(), userID, c.Param("workspace_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// removeMember godoc
// @Summary Remove workspace member
// @Description Owner-only. Revocation is immediate for subsequent requests.
// @Tags workspaces
// @Param workspace_id path string true "Workspace ID"
// @Param member_id path string true "Member ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/members/{member_id} [delete]
func (h *workspaceHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workspaceService.RemoveMember(c.Request.Context(), userID, c.Param("workspace_id"), c.Param("member_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}

// listBoards godoc
// @Summary List boards of a workspace
// @Tags boards
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.BoardResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/boards [get]
func (h *workspaceHandler) listBoards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	boards, err := h.boardService.ListBoards(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list boards")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBoardsResponse(boards))
}

// workspaceRoadmap godoc
// @Summary Workspace roadmap
// @Description Per-board derived date ranges, sorted ascending by start.
// @Tags roadmap
// @Produce json
// @Param workspace_id path string true "Workspace ID"
// @Success 200 {array} dto.RoadmapEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/roadmap [get]
func (h *workspaceHandler) workspaceRoadmap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.roadmapService.WorkspaceRoadmap(c.Request.Context(), userID, c.Param("workspace_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build roadmap")
		return
	}
	c.JSON(http.StatusOK, dto.ToRoadmapResponse(entries))
}
