package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authRateLimit bounds token minting per client IP.
const authRateLimit = "5-M"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{tokenService: tokens}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) error {
	rate, err := limiter.NewRateFromFormatted(authRateLimit)
	if err != nil {
		return err
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	h := NewAuthHandler(services.TokenService)
	g := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.TokenService)

	auth := rg.Group("/auth")
	{
		auth.POST("/token", limitMiddleware, h.IssueToken)
		auth.GET("/google/login", limitMiddleware, g.LoginGoogle)
		auth.POST("/google/exchange-code", limitMiddleware, g.ExchangeCodeGoogle)
	}
	return nil
}

// IssueToken godoc
// @Summary Exchange an API key for a bearer token
// @Description Mints a short-lived JWT for the identity proven by the x-api-key header.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		logger.Warn("Token requested without proof of identity")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "A valid API key is required"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), identity)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate access token"})
		return
	}

	logger.Info("Issued access token", slog.Time("expires_at", expiresAt))
	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		Identity:  identity.String(),
		ExpiresAt: expiresAt,
	})
}
