package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerAssetRoutes registers routes for an owner's assets and net worth.
func registerAssetRoutes(owner *gin.RouterGroup, h *ledgerHandler, mutation ...gin.HandlerFunc) {
	owner.POST("/assets", withMutation(mutation, h.addAsset)...)
	owner.GET("/assets", h.getAssets)
	owner.GET("/net-worth", h.calculateNetWorth)
	owner.GET("/summary", h.getSummary)
}

// addAsset godoc
// @Summary Add an asset
// @Description Appends an asset to the owner's list. A negative amount records a liability.
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Param   asset body dto.AddAssetRequest true "Asset details"
// @Success 201 {array} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to add asset"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /users/{identity}/assets [post]
func (h *ledgerHandler) addAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	var req dto.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amount, err := req.AmountValue()
	if err != nil {
		respondWithError(c, err, "Invalid amount")
		return
	}

	ctx := c.Request.Context()
	if err := h.ledgerService.AddAsset(ctx, owner, req.AssetType, amount, req.Description); err != nil {
		respondWithError(c, err, "Failed to add asset")
		return
	}

	assets, err := h.ledgerService.GetAssets(ctx, owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve assets")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListAssetResponse(assets))
}

// getAssets godoc
// @Summary List assets
// @Description Returns the owner's assets in insertion order; empty when none were added
// @Tags assets
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Success 200 {array} dto.AssetResponse
// @Failure 500 {object} map[string]string "Failed to retrieve assets"
// @Router /users/{identity}/assets [get]
func (h *ledgerHandler) getAssets(c *gin.Context) {
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	assets, err := h.ledgerService.GetAssets(c.Request.Context(), owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve assets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// calculateNetWorth godoc
// @Summary Calculate net worth
// @Description Sums the amounts of the owner's assets; 0 when none were added
// @Tags assets
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Success 200 {object} dto.NetWorthResponse
// @Failure 422 {object} map[string]string "Sum exceeds the 128-bit range"
// @Failure 500 {object} map[string]string "Failed to calculate net worth"
// @Router /users/{identity}/net-worth [get]
func (h *ledgerHandler) calculateNetWorth(c *gin.Context) {
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	netWorth, err := h.ledgerService.CalculateNetWorth(c.Request.Context(), owner)
	if err != nil {
		respondWithError(c, err, "Failed to calculate net worth")
		return
	}
	c.JSON(http.StatusOK, dto.NetWorthResponse{Owner: owner.String(), NetWorth: netWorth.String()})
}

// getSummary godoc
// @Summary Get ledger summary
// @Description Returns every list of the owner together with the net worth, read at one point in time
// @Tags assets
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Success 200 {object} dto.LedgerSummaryResponse
// @Failure 422 {object} map[string]string "Net worth exceeds the 128-bit range"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Router /users/{identity}/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.GetSummary(c.Request.Context(), owner)
	if err != nil {
		respondWithError(c, err, "Failed to build summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerSummaryResponse(summary))
}
