package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerTransactionRoutes registers routes for an owner's transactions.
func registerTransactionRoutes(owner *gin.RouterGroup, h *ledgerHandler, mutation ...gin.HandlerFunc) {
	owner.POST("/transactions", withMutation(mutation, h.recordTransaction)...)
	owner.GET("/transactions", h.getTransactions)
}

// recordTransaction godoc
// @Summary Record a transaction
// @Description Appends a transaction stamped with the server clock
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Param   transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record transaction"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /users/{identity}/transactions [post]
func (h *ledgerHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amount, err := req.AmountValue()
	if err != nil {
		respondWithError(c, err, "Invalid amount")
		return
	}

	ctx := c.Request.Context()
	if err := h.ledgerService.RecordTransaction(ctx, owner, req.TransactionType, amount, req.Description); err != nil {
		respondWithError(c, err, "Failed to record transaction")
		return
	}

	txns, err := h.ledgerService.GetTransactions(ctx, owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transactions")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListTransactionResponse(txns))
}

// getTransactions godoc
// @Summary List transactions
// @Description Returns the owner's transactions in insertion order; empty when none were recorded
// @Tags transactions
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to retrieve transactions"
// @Router /users/{identity}/transactions [get]
func (h *ledgerHandler) getTransactions(c *gin.Context) {
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	txns, err := h.ledgerService.GetTransactions(c.Request.Context(), owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}
