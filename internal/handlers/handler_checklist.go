package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// checklistHandler handles HTTP requests related to checklist entries.
type checklistHandler struct {
	checklistService portssvc.ChecklistSvcFacade
}

func newChecklistHandler(cs portssvc.ChecklistSvcFacade) *checklistHandler {
	return &checklistHandler{checklistService: cs}
}

func registerChecklistRoutes(rg *gin.RouterGroup, cs portssvc.ChecklistSvcFacade) {
	h := newChecklistHandler(cs)

	rg.GET("/items/:item_id/checklist", h.listChecklist)

	checklist := rg.Group("/checklist")
	{
		checklist.POST("", h.createChecklistItem)
		checklist.PUT("/:checklist_item_id", h.updateChecklistItem)
		checklist.DELETE("/:checklist_item_id", h.deleteChecklistItem)
	}
}

// listChecklist godoc
// @Summary List checklist entries of an item
// @Tags checklist
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {array} dto.ChecklistItemResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id}/checklist [get]
func (h *checklistHandler) listChecklist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.checklistService.ListChecklist(c.Request.Context(), userID, c.Param("item_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checklist")
		return
	}
	c.JSON(http.StatusOK, dto.ToListChecklistResponse(entries))
}

// createChecklistItem godoc
// @Summary Create a checklist entry
// @Description Appends an entry to the item's checklist.
// @Tags checklist
// @Accept json
// @Produce json
// @Param entry body dto.CreateChecklistItemRequest true "Entry details"
// @Success 201 {object} dto.ChecklistItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /checklist [post]
func (h *checklistHandler) createChecklistItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.checklistService.CreateChecklistItem(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create checklist entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToChecklistItemResponse(entry))
}

// updateChecklistItem godoc
// @Summary Update a checklist entry
// @Description Partial update of text, done flag and hours estimate.
// @Tags checklist
// @Accept json
// @Produce json
// @Param checklist_item_id path string true "Checklist entry ID"
// @Param entry body dto.UpdateChecklistItemRequest true "Updates"
// @Success 200 {object} dto.ChecklistItemResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checklist/{checklist_item_id} [put]
func (h *checklistHandler) updateChecklistItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.checklistService.UpdateChecklistItem(c.Request.Context(), userID, c.Param("checklist_item_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update checklist entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToChecklistItemResponse(entry))
}

// deleteChecklistItem godoc
// @Summary Delete a checklist entry
// @Tags checklist
// @Param checklist_item_id path string true "Checklist entry ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /checklist/{checklist_item_id} [delete]
func (h *checklistHandler) deleteChecklistItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.checklistService.DeleteChecklistItem(c.Request.Context(), userID, c.Param("checklist_item_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete checklist entry")
		return
	}
	c.Status(http.StatusNoContent)
}
