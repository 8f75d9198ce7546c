package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"perkpal-backend/internal/shared/response"
	"perkpal-backend/pkg/jwt"
)

// AuthMiddleware validates the bearer token and stores identity claims on the
// gin context for downstream handlers.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. AuthMiddleware must run
// first so the role claim is present.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowed[role]; !ok {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: insufficient role",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
