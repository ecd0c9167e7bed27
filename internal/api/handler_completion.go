package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/model"
	"github.com/Hari569/habit-tracker/internal/service"
)

type CompletionHandler struct {
	completionService *service.CompletionService
	logger            *zap.Logger
}

func NewCompletionHandler(completionService *service.CompletionService, logger *zap.Logger) *CompletionHandler {
	return &CompletionHandler{completionService: completionService, logger: logger}
}

func completionJSON(rec model.CompletionRecord) gin.H {
	return gin.H{
		"habit_id":        rec.HabitID,
		"completion_date": engine.FormatDate(rec.Date),
	}
}

func completionsJSON(records []model.CompletionRecord) []gin.H {
	out := make([]gin.H, 0, len(records))
	for _, rec := range records {
		out = append(out, completionJSON(rec))
	}
	return out
}

// Create handles POST /completions/. Recording the same (habit, date)
// twice returns the same 200 as the first time.
func (h *CompletionHandler) Create(c *gin.Context) {
	var req struct {
		HabitID        int    `json:"habit_id" binding:"required"`
		CompletionDate string `json:"completion_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	date, err := engine.ParseDate(req.CompletionDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	rec, err := h.completionService.Complete(c.Request.Context(), userID(c), req.HabitID, date)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		h.logger.Error("Complete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record completion"})
		return
	}

	c.JSON(http.StatusOK, completionJSON(rec))
}

// List handles GET /completions/.
func (h *CompletionHandler) List(c *gin.Context) {
	records, err := h.completionService.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("List completions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch completions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": completionsJSON(records)})
}

// ListForHabit handles GET /completions/habit/:id.
func (h *CompletionHandler) ListForHabit(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return
	}

	records, err := h.completionService.ListForHabit(c.Request.Context(), userID(c), habitID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
			return
		}
		h.logger.Error("ListForHabit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch completions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": completionsJSON(records)})
}

// Delete handles DELETE /completions/?habit_id=&completion_date=.
func (h *CompletionHandler) Delete(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Query("habit_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit_id"})
		return
	}

	date, err := engine.ParseDate(c.Query("completion_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	if err := h.completionService.Uncomplete(c.Request.Context(), userID(c), habitID, date); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "completion not found"})
			return
		}
		h.logger.Error("Uncomplete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove completion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "completion removed"})
}
