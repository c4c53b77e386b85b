package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// groupHandler handles HTTP requests related to groups.
type groupHandler struct {
	groupService portssvc.GroupSvcFacade
}

func newGroupHandler(gs portssvc.GroupSvcFacade) *groupHandler {
	return &groupHandler{groupService: gs}
}

func registerGroupRoutes(rg *gin.RouterGroup, gs portssvc.GroupSvcFacade) {
	h := newGroupHandler(gs)

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.PUT("/:group_id", h.updateGroup)
		groups.DELETE("/:group_id", h.deleteGroup)
		groups.PUT("/:group_id/reorder", h.reorderGroup)
	}
}

// createGroup godoc
// @Summary Create a new group
// @Description Creates a group at the end of the board's ordering.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// updateGroup godoc
// @Summary Update group
// @Description Partial update of name and color.
// @Tags groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param group body dto.UpdateGroupRequest true "Updates"
// @Success 200 {object} dto.GroupResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{group_id} [put]
func (h *groupHandler) updateGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), userID, c.Param("group_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// deleteGroup godoc
// @Summary Delete group
// @Description Removes the group and its items. Other groups keep their positions.
// @Tags groups
// @Param group_id path string true "Group ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{group_id} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), userID, c.Param("group_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete group")
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderGroup godoc
// @Summary Reorder group
// @Description Overwrites the group's position. Duplicate positions resolve
// @Description deterministically by creation time at render.
// @Tags groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param reorder body dto.ReorderGroupRequest true "New position"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{group_id}/reorder [put]
func (h *groupHandler) reorderGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReorderGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	group, err := h.groupService.ReorderGroup(c.Request.Context(), userID, c.Param("group_id"), req.NewPosition)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reorder group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}
