package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/finance_ledger/internal/dto"
	"github.com/SscSPs/finance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

var errGoalVanished = errors.New("updated goal missing from list")

// registerGoalRoutes registers routes for an owner's savings goals.
func registerGoalRoutes(owner *gin.RouterGroup, h *ledgerHandler, mutation ...gin.HandlerFunc) {
	owner.POST("/goals", withMutation(mutation, h.createGoal)...)
	owner.GET("/goals", h.getGoals)
	owner.POST("/goals/:goalIndex/progress", withMutation(mutation, h.updateGoalProgress)...)
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Appends a goal with zero progress. Its index is its position in the list.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {array} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /users/{identity}/goals [post]
func (h *ledgerHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	target, err := req.TargetAmountValue()
	if err != nil {
		respondWithError(c, err, "Invalid target amount")
		return
	}

	ctx := c.Request.Context()
	if err := h.ledgerService.CreateGoal(ctx, owner, req.Name, target, req.Deadline); err != nil {
		respondWithError(c, err, "Failed to create goal")
		return
	}

	goals, err := h.ledgerService.GetGoals(ctx, owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve goals")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListGoalResponse(goals))
}

// updateGoalProgress godoc
// @Summary Update goal progress
// @Description Adds an increment (possibly negative) to the goal at the given index
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Param   goalIndex path int true "Goal index"
// @Param   progress body dto.UpdateGoalProgressRequest true "Increment"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input or goal index out of bounds"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No goals found"
// @Failure 422 {object} map[string]string "Progress exceeds the 128-bit range"
// @Failure 500 {object} map[string]string "Failed to update goal progress"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /users/{identity}/goals/{goalIndex}/progress [post]
func (h *ledgerHandler) updateGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	goalIndex, err := strconv.ParseUint(c.Param("goalIndex"), 10, 32)
	if err != nil {
		logger.Warn("Invalid goal index", slog.String("goal_index", c.Param("goalIndex")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "goalIndex must be an unsigned 32-bit integer"})
		return
	}

	var req dto.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGoalProgress", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	amountAdded, err := req.AmountAddedValue()
	if err != nil {
		respondWithError(c, err, "Invalid amount")
		return
	}

	ctx := c.Request.Context()
	if err := h.ledgerService.UpdateGoalProgress(ctx, owner, uint32(goalIndex), amountAdded); err != nil {
		respondWithError(c, err, "Failed to update goal progress")
		return
	}

	goals, err := h.ledgerService.GetGoals(ctx, owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve goals")
		return
	}
	if int(goalIndex) >= len(goals) {
		// Goals are never deleted, so the list cannot have shrunk.
		respondWithError(c, errGoalVanished, "Failed to retrieve goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(int(goalIndex), goals[goalIndex]))
}

// getGoals godoc
// @Summary List savings goals
// @Description Returns the owner's goals in insertion order; empty when none were created
// @Tags goals
// @Produce  json
// @Param   identity path string true "Owner identity"
// @Success 200 {array} dto.GoalResponse
// @Failure 500 {object} map[string]string "Failed to retrieve goals"
// @Router /users/{identity}/goals [get]
func (h *ledgerHandler) getGoals(c *gin.Context) {
	owner, ok := ownerFromPath(c)
	if !ok {
		return
	}

	goals, err := h.ledgerService.GetGoals(c.Request.Context(), owner)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}
