package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/finance_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware reports successful ledger mutations to PostHog, keyed by
// the identity that proved ownership. Reads are never tracked.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		identity, exists := GetIdentityFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/users/:identity/assets" -> "api_v1_users_:identity_assets"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if goalIndex := c.Param("goalIndex"); goalIndex != "" {
			props["goal_index"] = goalIndex
		}

		posthogClient.Enqueue(identity.String(), eventName, props)
	}
}
