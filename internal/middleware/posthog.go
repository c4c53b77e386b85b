package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/planlane/task_board_app/internal/utils"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware tracks successful authenticated API calls as product
// events. A nil or uninitialized client makes this a no-op.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/workspaces/:workspace_id" -> "api_v1_workspaces_:workspace_id"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method": c.Request.Method,
			"status": c.Writer.Status(),
			"path":   c.FullPath(),
		}
		if workspaceID := c.Param("workspace_id"); workspaceID != "" {
			props["workspace_id"] = workspaceID
		}
		if boardID := c.Param("board_id"); boardID != "" {
			props["board_id"] = boardID
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
