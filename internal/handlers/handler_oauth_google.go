package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google OAuth related requests.
// A verified Google account becomes a ledger identity of the form "google:<sub>".
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		tokenService:       tokenService,
	}
}

// OAuthStateCookie carries the CSRF state from the login redirect to the code exchange.
const OAuthStateCookie = "oauth_state"

const oauthStateTTL = 10 * time.Minute

// GoogleIdentity maps a Google subject to the ledger identity it proves.
func GoogleIdentity(subject string) domain.Identity {
	return domain.Identity("google:" + subject)
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Sets a CSRF state cookie and redirects to Google's consent page.
// @Description The front-end echoes the state back to exchange-code.
// @Tags auth
// @Success 307 {string} string "Redirect to Google"
// @Failure 500 {object} ErrorResponse "Failed to start Google sign-in"
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to start Google sign-in.")
		c.JSON(appErr.Code, appErr)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(OAuthStateCookie, state, int(oauthStateTTL.Seconds()), "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// ExchangeCodeGoogle handles the POST request from the frontend containing the authorization code from Google.
// It exchanges the code for Google tokens, validates the ID token and returns
// an application JWT for the Google identity.
// @Summary Exchange authorization code for access token
// @Description Exchange a Google authorization code for a ledger bearer token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code or state"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 504 {object} ErrorResponse "Failed to reach Google"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		appErr := apperrors.NewBadRequestError("Invalid request payload: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	if req.State != "" {
		cookieState, err := c.Cookie(OAuthStateCookie)
		if err != nil || cookieState != req.State {
			logger.Warn("OAuth state mismatch on code exchange")
			appErr := apperrors.NewBadRequestError("OAuth state does not match the login request.")
			c.JSON(appErr.Code, appErr)
			return
		}
		c.SetCookie(OAuthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		// An invalid code is the client's fault in this flow.
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token.")
		c.JSON(appErr.Code, appErr)
		return
	}
	if payload.Subject == "" {
		logger.Error("Subject missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	identity := GoogleIdentity(payload.Subject)
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, identity)
	if err != nil {
		logger.Error("Failed to generate application access token", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to generate access token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Info("Issued access token for Google identity", slog.String("identity", identity.String()))
	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     accessToken,
		Identity:  identity.String(),
		ExpiresAt: expiresAt,
	})
}
