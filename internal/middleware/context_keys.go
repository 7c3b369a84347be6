package middleware

import (
	"context"

	"github.com/SscSPs/finance_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the proven caller identity.
// Using a custom type prevents collisions.
const identityKey = contextKey("identity")

// authMethodKey records which middleware proved the identity.
const authMethodKey = "authMethod"

// WithProvenIdentity returns a context carrying an identity the caller has proven.
func WithProvenIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetProvenIdentity retrieves the identity proven by the caller, if any.
func GetProvenIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok || identity == "" {
		return "", false
	}
	return identity, true
}

// GetIdentityFromContext retrieves the proven identity from the Gin request context.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	return GetProvenIdentity(c.Request.Context())
}

// setProvenIdentity stores identity on the request and enriches the request logger with it.
func setProvenIdentity(c *gin.Context, identity domain.Identity, method string) {
	ctx := WithProvenIdentity(c.Request.Context(), identity)
	logger := GetLoggerFromCtx(ctx).With("identity", identity.String(), "auth_method", method)
	c.Request = c.Request.WithContext(WithLogger(ctx, logger))
	c.Set(authMethodKey, method)
}
