package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware ensures the caller has the admin role. It must run after
// AuthMiddleware. No route mounts it yet; role enforcement is not part of
// the current API surface.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "No autenticado"})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Se requieren privilegios de administrador"})
			c.Abort()
			return
		}

		c.Next()
	}
}
