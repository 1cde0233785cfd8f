package middleware

import (
	"net/http"

	"motorent/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates admin operations on the role claim set by
// JWTAuthMiddleware. It must run after it.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access only"})
			return
		}
		c.Next()
	}
}
