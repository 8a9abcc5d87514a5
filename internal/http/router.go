package http

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"english-tutor/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	chatH *ChatHandler,
	catalogH *CatalogHandler,
	limiter service.SessionLimiter,
	trustedProxies []string,
) *gin.Engine {
	r := gin.New()

	// Sin proxies confiables ClientIP usa RemoteAddr e ignora X-Forwarded-For.
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, ignoring forwarded headers", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/plans", catalogH.ListPlans)
	r.GET("/topics", catalogH.ListTopics)

	sessions := r.Group("/sessions")
	sessions.POST("", rateLimitMiddleware(logger, limiter), chatH.CreateSession)
	sessions.GET("/:id", chatH.GetSession)
	sessions.POST("/:id/messages", chatH.PostMessage)
	sessions.DELETE("/:id/messages", chatH.ClearHistory)
	sessions.PUT("/:id/plan", chatH.SelectPlan)
	sessions.GET("/:id/transcript", chatH.GetTranscript)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// rateLimitMiddleware limita por IP; sin limiter configurado deja pasar todo.
func rateLimitMiddleware(logger *zap.Logger, limiter service.SessionLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		decision := limiter.Allow(c.Request.Context(), c.ClientIP())
		if !decision.Allowed {
			logger.Warn("rate limited",
				zap.String("client_ip", c.ClientIP()),
				zap.Duration("retry_after", decision.RetryAfter),
			)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many sessions, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
