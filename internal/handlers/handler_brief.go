package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
	"github.com/planlane/task_board_app/internal/platform/config"
)

// briefHandler handles HTTP requests for AI brief generation.
type briefHandler struct {
	briefService portssvc.BriefSvcFacade
}

func newBriefHandler(bs portssvc.BriefSvcFacade) *briefHandler {
	return &briefHandler{briefService: bs}
}

// registerBriefRoutes sets up the AI brief routes. Generation proxies an
// external provider, so it gets its own rate limit.
func registerBriefRoutes(rg *gin.RouterGroup, cfg *config.Config, bs portssvc.BriefSvcFacade) {
	h := newBriefHandler(bs)

	briefLimiter, err := middleware.NewIPRateLimiter(cfg.BriefRateLimit)
	if err != nil {
		panic("invalid brief rate limit config: " + err.Error())
	}
	limitMiddleware := middleware.RateLimit(briefLimiter)

	ai := rg.Group("/ai")
	{
		ai.POST("/brief", limitMiddleware, h.generateBrief)
		ai.POST("/brief/apply", h.applyBrief)
	}
}

// generateBrief godoc
// @Summary Generate a structured brief from free text
// @Description Sends the text to the AI provider using the caller's stored
// @Description API key and returns a normalized brief. 403 when no key is
// @Description configured, 502 when the provider fails or answers with
// @Description unparseable output.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.GenerateBriefRequest true "Requirement text"
// @Success 200 {object} domain.Brief
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /ai/brief [post]
func (h *briefHandler) generateBrief(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.GenerateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	brief, err := h.briefService.GenerateBrief(c.Request.Context(), userID, req.InputText, req.Context)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate brief")
		return
	}
	c.JSON(http.StatusOK, brief)
}

// applyBrief godoc
// @Summary Apply a brief to an item
// @Description Writes the brief's summary into the item's description and
// @Description appends the steps as checklist entries.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.ApplyBriefRequest true "Item and brief"
// @Success 200 {object} dto.ApplyBriefResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ai/brief/apply [post]
func (h *briefHandler) applyBrief(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ApplyBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, checklist, err := h.briefService.ApplyBriefToItem(c.Request.Context(), userID, req.ItemID, req.Brief)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to apply brief")
		return
	}
	c.JSON(http.StatusOK, dto.ApplyBriefResponse{
		Item:      dto.ToItemResponse(item),
		Checklist: dto.ToListChecklistResponse(checklist),
	})
}
