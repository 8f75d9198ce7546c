package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"perkpal-backend/internal/shared/utils"
)

type contextKey string

const clientIPKey contextKey = "client_ip"

// ClientIPMiddleware resolves the real client IP (proxy headers first) and
// makes it available on both the gin context and the request context, so the
// lead service can record it without touching HTTP types.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set("client_ip", clientIP)
		ctx := context.WithValue(c.Request.Context(), clientIPKey, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext returns the IP stored by ClientIPMiddleware, or ""
// when the middleware did not run.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
