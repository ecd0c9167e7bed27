package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/engine"
	"github.com/Hari569/habit-tracker/internal/service"
)

type HabitHandler struct {
	habitService *service.HabitService
	logger       *zap.Logger
}

func NewHabitHandler(habitService *service.HabitService, logger *zap.Logger) *HabitHandler {
	return &HabitHandler{habitService: habitService, logger: logger}
}

type habitRequest struct {
	Name          string   `json:"name" binding:"required"`
	ScheduledDays []string `json:"scheduled_days" binding:"required"`
	Tags          []string `json:"tags"`
}

// Create handles POST /habits/.
func (h *HabitHandler) Create(c *gin.Context) {
	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	habit, err := h.habitService.Create(c.Request.Context(), userID(c), service.HabitInput{
		Name:          req.Name,
		ScheduledDays: req.ScheduledDays,
		Tags:          req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Create habit failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create habit"})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List handles GET /habits/.
func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.habitService.List(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("List habits failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch habits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

// Get handles GET /habits/:id.
func (h *HabitHandler) Get(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return
	}

	habit, err := h.habitService.Get(c.Request.Context(), userID(c), habitID)
	if err != nil {
		h.respondError(c, err, "failed to fetch habit")
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Update handles PUT /habits/:id.
func (h *HabitHandler) Update(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return
	}

	var req habitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	habit, err := h.habitService.Update(c.Request.Context(), userID(c), habitID, service.HabitInput{
		Name:          req.Name,
		ScheduledDays: req.ScheduledDays,
		Tags:          req.Tags,
	})
	if err != nil {
		h.respondError(c, err, "failed to update habit")
		return
	}

	c.JSON(http.StatusOK, habit)
}

// Delete handles DELETE /habits/:id.
func (h *HabitHandler) Delete(c *gin.Context) {
	habitID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid habit id"})
		return
	}

	if err := h.habitService.Delete(c.Request.Context(), userID(c), habitID); err != nil {
		h.respondError(c, err, "failed to delete habit")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "habit deleted"})
}

// DueOn handles GET /habits/date/:date.
func (h *HabitHandler) DueOn(c *gin.Context) {
	date, err := engine.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	habits, err := h.habitService.DueOn(c.Request.Context(), userID(c), date)
	if err != nil {
		h.logger.Error("DueOn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch habits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (h *HabitHandler) respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
