package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/planlane/task_board_app/internal/core/ports/repositories"
	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// boardHandler handles HTTP requests related to boards.
type boardHandler struct {
	boardService    portssvc.BoardSvcFacade
	activityService portssvc.ActivitySvcFacade
	roadmapService  portssvc.RoadmapSvcFacade
}

func newBoardHandler(bs portssvc.BoardSvcFacade, as portssvc.ActivitySvcFacade, rs portssvc.RoadmapSvcFacade) *boardHandler {
	return &boardHandler{
		boardService:    bs,
		activityService: as,
		roadmapService:  rs,
	}
}

// registerBoardRoutes registers routes for board CRUD, the activity feed
// and the board date range.
func registerBoardRoutes(rg *gin.RouterGroup, bs portssvc.BoardSvcFacade, as portssvc.ActivitySvcFacade, rs portssvc.RoadmapSvcFacade) {
	h := newBoardHandler(bs, as, rs)

	boards := rg.Group("/boards")
	{
		boards.POST("", h.createBoard)
		boards.GET("/:board_id", h.getBoard)
		boards.PUT("/:board_id", h.updateBoard)
		boards.DELETE("/:board_id", h.deleteBoard)
		boards.GET("/:board_id/activity", h.boardActivity)
		boards.GET("/:board_id/range", h.boardRange)
	}
}

// archiveFilterFromQuery maps the optional ?archived query onto the item
// listing filter. Absent or unrecognized values select active items.
func archiveFilterFromQuery(c *gin.Context) portsrepo.ArchiveFilter {
	switch c.Query("archived") {
	case "true":
		return portsrepo.ArchivedItems
	case "all":
		return portsrepo.AllItems
	default:
		return portsrepo.ActiveItems
	}
}

// createBoard godoc
// @Summary Create a new board
// @Description Creates a board inside a workspace. Boards default to non-retainer.
// @Tags boards
// @Accept json
// @Produce json
// @Param board body dto.CreateBoardRequest true "Board details"
// @Success 201 {object} dto.BoardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards [post]
func (h *boardHandler) createBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create board")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBoardResponse(board))
}

// getBoard godoc
// @Summary Get board with groups and items
// @Description Returns the board expanded into its groups and their items
// @Description in render order. ?archived=true returns archived items only,
// @Description ?archived=all returns both.
// @Tags boards
// @Produce json
// @Param board_id path string true "Board ID"
// @Param archived query string false "Item filter: true or all"
// @Success 200 {object} dto.BoardDetailResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards/{board_id} [get]
func (h *boardHandler) getBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	detail, err := h.boardService.GetBoard(c.Request.Context(), userID, c.Param("board_id"), archiveFilterFromQuery(c))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load board")
		return
	}
	c.JSON(http.StatusOK, dto.ToBoardDetailResponse(detail))
}

// updateBoard godoc
// @Summary Update board
// @Description Partial update of name, description and the retainer flag.
// @Tags boards
// @Accept json
// @Produce json
// @Param board_id path string true "Board ID"
// @Param board body dto.UpdateBoardRequest true "Updates"
// @Success 200 {object} dto.BoardResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards/{board_id} [put]
func (h *boardHandler) updateBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), userID, c.Param("board_id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update board")
		return
	}
	c.JSON(http.StatusOK, dto.ToBoardResponse(board))
}

// deleteBoard godoc
// @Summary Delete board
// @Description Workspace-owner-only. Removes the board and everything under it.
// @Tags boards
// @Param board_id path string true "Board ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards/{board_id} [delete]
func (h *boardHandler) deleteBoard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), userID, c.Param("board_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete board")
		return
	}
	c.Status(http.StatusNoContent)
}

// boardActivity godoc
// @Summary Board activity feed
// @Description Audit entries for the board, newest first.
// @Tags activity
// @Produce json
// @Param board_id path string true "Board ID"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} dto.ActivityEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards/{board_id}/activity [get]
func (h *boardHandler) boardActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	entries, err := h.activityService.ListBoardActivity(c.Request.Context(), userID, c.Param("board_id"), limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to load activity")
		return
	}
	c.JSON(http.StatusOK, dto.ToListActivityResponse(entries))
}

// boardRange godoc
// @Summary Board date range
// @Description Derived [start, end] span of the board's items. 204 when the
// @Description board has no dated items.
// @Tags roadmap
// @Produce json
// @Param board_id path string true "Board ID"
// @Success 200 {object} dto.BoardRangeResponse
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /boards/{board_id}/range [get]
func (h *boardHandler) boardRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rng, err := h.roadmapService.BoardRange(c.Request.Context(), userID, c.Param("board_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute board range")
		return
	}
	if rng == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.BoardRangeResponse{Start: rng.Start, End: rng.End})
}
