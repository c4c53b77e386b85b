package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// itemHandler handles HTTP requests related to items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// RegisterItemRoutes registers item CRUD, reorder and my-items routes.
// Exported so handler tests can mount the routes on a bare router.
func RegisterItemRoutes(rg *gin.RouterGroup, is portssvc.ItemSvcFacade) {
	h := newItemHandler(is)

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("/:item_id", h.getItem)
		items.PUT("/:item_id", h.updateItem)
		items.DELETE("/:item_id", h.deleteItem)
		items.PUT("/:item_id/reorder", h.reorderItem)
	}

	rg.GET("/my-items", h.listMyItems)
}

// createItem godoc
// @Summary Create a new item
// @Description Creates an item at the end of the group's ordering. Status
// @Description defaults to todo and priority to medium.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// getItem godoc
// @Summary Get item
// @Tags items
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), userID, c.Param("item_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update item
// @Description Partial update. Changing status to done or complete archives
// @Description the item and stamps its completion time; on retainer boards
// @Description that transition requires a non-negative retainerHours.
// @Description Reopening clears archive state, completion time and hours.
// @Tags items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param item body dto.UpdateItemRequest true "Updates"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), userID, c.Param("item_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete item
// @Description Removes the item with its checklist and comments. Activity
// @Description entries referencing it survive.
// @Tags items
// @Param item_id path string true "Item ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), userID, c.Param("item_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete item")
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderItem godoc
// @Summary Reorder or move item
// @Description Overwrites the item's position and optionally moves it to
// @Description another group in the same write. At least one of newPosition
// @Description and newGroupId is required.
// @Tags items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param reorder body dto.ReorderItemRequest true "New position and/or group"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id}/reorder [put]
func (h *itemHandler) reorderItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReorderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.ReorderItem(c.Request.Context(), userID, c.Param("item_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reorder item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// listMyItems godoc
// @Summary List items assigned to the current user
// @Description Unarchived items assigned to the caller across every
// @Description workspace, due date ascending with undated items last.
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /my-items [get]
func (h *itemHandler) listMyItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.itemService.ListMyItems(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListItemsResponse(items))
}
