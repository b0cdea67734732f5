package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spfmatch/spfmatch/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
		errorHandlingMiddleware(logger),
	)

	api := router.Group("/api/v1")
	{
		api.GET("/quiz/questions", handler.Questions)
		api.POST("/quiz/evaluate", handler.Evaluate)
		api.GET("/uv", handler.UVReport)
		api.POST("/reminders", handler.StartReminder)
		api.GET("/reminders/:id", handler.ReminderStatus)
		api.POST("/reminders/:id/restart", handler.RestartReminder)
		api.DELETE("/reminders/:id", handler.CancelReminder)
		api.GET("/resources", handler.Resources)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
