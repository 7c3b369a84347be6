package middleware

import (
	"log/slog"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader carries a static "identity.secret" key for machine callers.
const APIKeyHeader = "x-api-key"

// APIKeyAuth is a middleware that authenticates requests using API keys.
// A missing or invalid key leaves the request to the bearer token middleware.
func APIKeyAuth(keys portssvc.APIKeySvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(APIKeyHeader)
		if rawKey == "" {
			c.Next()
			return
		}

		identity, err := keys.ValidateAPIKey(c.Request.Context(), rawKey)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected", slog.String("error", err.Error()))
			c.Next()
			return
		}

		setProvenIdentity(c, identity, "api_key")
		c.Next()
	}
}
