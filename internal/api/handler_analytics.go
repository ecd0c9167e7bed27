package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, logger: logger}
}

// habitIDFilter parses the optional habit_id query parameter. A second
// return of false means the parameter was present but malformed.
func habitIDFilter(c *gin.Context) (*int, bool) {
	raw := c.Query("habit_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// CompletionRate handles GET /analytics/completion-rate?habit_id=&days=.
func (h *AnalyticsHandler) CompletionRate(c *gin.Context) {
	habitID, ok := habitIDFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit_id"})
		return
	}

	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
			return
		}
		days = parsed
	}

	results, err := h.analyticsService.CompletionRates(c.Request.Context(), userID(c), habitID, days)
	if err != nil {
		h.logger.Error("CompletionRate failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute completion rate"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// Streaks handles GET /analytics/streaks?habit_id=.
func (h *AnalyticsHandler) Streaks(c *gin.Context) {
	habitID, ok := habitIDFilter(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit_id"})
		return
	}

	results, err := h.analyticsService.Streaks(c.Request.Context(), userID(c), habitID)
	if err != nil {
		h.logger.Error("Streaks failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute streaks"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// Summary handles GET /analytics/summary.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	result, err := h.analyticsService.Summary(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("Summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, result)
}
