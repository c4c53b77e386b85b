package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// commentHandler handles HTTP requests related to comments.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(cs portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{commentService: cs}
}

func registerCommentRoutes(rg *gin.RouterGroup, cs portssvc.CommentSvcFacade) {
	h := newCommentHandler(cs)

	rg.GET("/items/:item_id/comments", h.listComments)

	comments := rg.Group("/comments")
	{
		comments.POST("", h.createComment)
		comments.PUT("/:comment_id", h.updateComment)
		comments.DELETE("/:comment_id", h.deleteComment)
	}
}

// listComments godoc
// @Summary List comments of an item
// @Description Comments in chronological order, oldest first.
// @Tags comments
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /items/{item_id}/comments [get]
func (h *commentHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), userID, c.Param("item_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentsResponse(comments))
}

// createComment godoc
// @Summary Add a comment to an item
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment details"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments [post]
func (h *commentHandler) createComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// updateComment godoc
// @Summary Edit a comment
// @Description Author-only. Replaces the comment's content.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment_id path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{comment_id} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), userID, c.Param("comment_id"), req.Content)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a comment
// @Description Author-only.
// @Tags comments
// @Param comment_id path string true "Comment ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{comment_id} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), userID, c.Param("comment_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}
