package middleware

import (
	"context"
	"net/http"
	"strings"

	"motorent/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and sets userID and role in
// the request context. The token hash is checked against the auth cache so a
// revoked token stops working before its expiry; when the cache has no entry
// the signed claims alone are trusted.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractIdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		cacheKey := utils.AuthCachePrefix + userID
		cachedHash, err := utils.GetAuthCacheClient().Get(context.Background(), cacheKey).Result()
		switch {
		case err == nil:
			if cachedHash != utils.HashToken(tokenString) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
		case err != redis.Nil:
			zap.L().Warn("auth cache unavailable, trusting signed claims", zap.Error(err))
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}
