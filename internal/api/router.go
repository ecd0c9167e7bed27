package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Hari569/habit-tracker/internal/mq"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	habitHandler *HabitHandler,
	completionHandler *CompletionHandler,
	analyticsHandler *AnalyticsHandler,
	jwtSecret string,
	logger *zap.Logger,
	db *pgxpool.Pool,
	publisher *mq.Publisher,
) *Router {
	r := gin.Default()

	r.Use(RequestLogMiddleware(logger))

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/habits/", habitHandler.Create)
		auth.GET("/habits/", habitHandler.List)
		auth.GET("/habits/:id", habitHandler.Get)
		auth.PUT("/habits/:id", habitHandler.Update)
		auth.DELETE("/habits/:id", habitHandler.Delete)
		auth.GET("/habits/date/:date", habitHandler.DueOn)

		auth.POST("/completions/", completionHandler.Create)
		auth.GET("/completions/", completionHandler.List)
		auth.DELETE("/completions/", completionHandler.Delete)
		auth.GET("/completions/habit/:id", completionHandler.ListForHabit)

		auth.GET("/analytics/completion-rate", analyticsHandler.CompletionRate)
		auth.GET("/analytics/streaks", analyticsHandler.Streaks)
		auth.GET("/analytics/summary", analyticsHandler.Summary)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
