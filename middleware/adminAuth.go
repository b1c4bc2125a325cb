package middleware

import (
	"net/http"
	"strings"

	"homeserve/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware validates a static console token and resolves the
// admin sub-role it carries. Tokens come from configuration, not source
// constants.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		role, ok := config.AppConfig.AdminTokens[tokenString]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminRole", role)
		c.Next()
	}
}
