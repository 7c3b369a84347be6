package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_ledger/internal/apperrors"
	"github.com/SscSPs/finance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/finance_ledger/internal/core/ports/services"
	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the ledger's administrator singleton
// and every per-owner list.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers the administrator routes.
func registerLedgerRoutes(rg *gin.RouterGroup, h *ledgerHandler, mutation ...gin.HandlerFunc) {
	ledger := rg.Group("/ledger")
	{
		ledger.POST("/initialize", withMutation(mutation, h.initialize)...)
		ledger.GET("/admins/:identity", h.isAdmin)
	}
}

// initialize godoc
// @Summary Initialize the ledger
// @Description Installs the administrator. Succeeds once per deployment; the caller must prove the admin identity.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   request body dto.InitializeLedgerRequest true "Administrator identity"
// @Success 201 {object} dto.InitializeLedgerResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Already initialized"
// @Failure 500 {object} map[string]string "Failed to initialize ledger"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /ledger/initialize [post]
func (h *ledgerHandler) initialize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InitializeLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Initialize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	admin := domain.Identity(req.Admin)
	logger.Info("Received request to initialize ledger", slog.String("admin", admin.String()))

	if err := h.ledgerService.Initialize(c.Request.Context(), admin); err != nil {
		respondWithError(c, err, "Failed to initialize ledger")
		return
	}

	c.JSON(http.StatusCreated, dto.InitializeLedgerResponse{Admin: admin.String()})
}

// isAdmin godoc
// @Summary Check the administrator
// @Description Reports whether the identity is the installed administrator
// @Tags ledger
// @Produce  json
// @Param   identity path string true "Identity"
// @Success 200 {object} dto.AdminStatusResponse
// @Failure 412 {object} map[string]string "Ledger not initialized"
// @Failure 500 {object} map[string]string "Failed to check administrator"
// @Router /ledger/admins/{identity} [get]
func (h *ledgerHandler) isAdmin(c *gin.Context) {
	identity := domain.Identity(c.Param("identity"))

	isAdmin, err := h.ledgerService.IsAdmin(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err, "Failed to check administrator")
		return
	}

	c.JSON(http.StatusOK, dto.AdminStatusResponse{Identity: identity.String(), IsAdmin: isAdmin})
}

// withMutation returns a fresh chain of the mutation middleware followed by h.
func withMutation(mutation []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(mutation)+1)
	chain = append(chain, mutation...)
	return append(chain, h)
}

// ownerFromPath reads the :identity segment. Blank identities never reach the service.
func ownerFromPath(c *gin.Context) (domain.Identity, bool) {
	owner := domain.Identity(c.Param("identity"))
	if err := owner.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity is required"})
		return "", false
	}
	return owner, true
}

// respondWithError writes the status the error maps to. Server faults hide
// their detail from the caller.
func respondWithError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}
