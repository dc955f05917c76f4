package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice-service/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// TokenResolver resolves a bearer token to a user id. The redis client
// satisfies it.
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (int64, error)
	TouchToken(ctx context.Context, token string, ttl time.Duration) error
}

// authRequired resolves the bearer token and stores the caller's user
// id in the request context. Token TTL slides on each authenticated
// request.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Error:   "Token de acesso ausente",
			})
			return
		}

		userID, err := h.tokens.ResolveToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{
				Success: false,
				Error:   "Token de acesso invalido",
			})
			return
		}

		if err := h.tokens.TouchToken(c.Request.Context(), token, h.tokenTTL); err != nil {
			util.GetLogger().Warn("Failed to extend token TTL", zap.Error(err))
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID reads the authenticated user id set by authRequired
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
