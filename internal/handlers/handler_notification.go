package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/planlane/task_board_app/internal/core/ports/services"
	"github.com/planlane/task_board_app/internal/dto"
	"github.com/planlane/task_board_app/internal/middleware"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

func registerNotificationRoutes(rg *gin.RouterGroup, ns portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(ns)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/unread-count", h.unreadCount)
		notifications.PUT("/read-all", h.markAllRead)
		notifications.POST("/check-upcoming", h.checkUpcoming)
		notifications.PUT("/:notification_id/read", h.markRead)
		notifications.DELETE("/:notification_id", h.deleteNotification)
	}
}

// listNotifications godoc
// @Summary List notifications for the current user
// @Description Newest first. ?unread=true restricts to unread notifications.
// @Tags notifications
// @Produce json
// @Param limit query int false "Max entries (default 50)"
// @Param unread query bool false "Unread only"
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
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
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), userID, limit, unreadOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListNotificationsResponse(notifications))
}

// unreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *notificationHandler) unreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	count, err := h.notificationService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to count notifications")
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// markRead godoc
// @Summary Mark a notification read
// @Description Idempotent. Marking an already read notification succeeds.
// @Tags notifications
// @Produce json
// @Param notification_id path string true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notification_id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), userID, c.Param("notification_id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// markAllRead godoc
// @Summary Mark all notifications read
// @Tags notifications
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to mark notifications read")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{notification_id} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), userID, c.Param("notification_id")); err != nil {
		respondServiceError(c, logger, err, "Failed to delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}

// checkUpcoming godoc
// @Summary Run the due-soon reminder sweep
// @Description Scans items due within the reminder window and emits reminder
// @Description notifications to their assignees. A (user, item) pair already
// @Description reminded inside the window is skipped. The same sweep runs on
// @Description a schedule; this endpoint triggers it on demand.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.RemindersCheckedResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/check-upcoming [post]
func (h *notificationHandler) checkUpcoming(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	checked, err := h.notificationService.CheckDueSoon(c.Request.Context(), time.Now())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check upcoming items")
		return
	}
	c.JSON(http.StatusOK, dto.RemindersCheckedResponse{
		Checked: checked,
		Message: "Checked " + strconv.Itoa(checked) + " upcoming items",
	})
}
