package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"quickmed/utils"
)

// ContextEmailKey is where the authenticated account email lands in the
// request context.
const ContextEmailKey = "email"

// JWTAuth verifies the bearer token and stores the subject email in the
// context. A missing credential is Unauthorized; a credential that fails
// verification is Forbidden.
//
// Verified tokens are cached in Redis by their hash so repeat requests
// skip signature verification; on a miss the token is verified locally
// and the hash cached until the token expires. A nil cache disables the
// fast path.
func JWTAuth(cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Kind:    string(utils.KindUnauthorized),
				Message: "unauthorized access",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		cacheKey := utils.AuthCacheKey(utils.HashToken(tokenString))

		if cache != nil {
			email, err := cache.Get(c.Request.Context(), cacheKey).Result()
			if err == nil && email != "" {
				c.Set(ContextEmailKey, email)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("auth cache read failed", zap.Error(err))
			}
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Kind:    string(utils.KindForbidden),
				Message: "forbidden access",
			})
			return
		}

		if cache != nil {
			// The cache entry must not outlive the token.
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				if err := cache.Set(c.Request.Context(), cacheKey, claims.Email, ttl).Err(); err != nil {
					utils.GetLogger().Warn("auth cache write failed", zap.Error(err))
				}
			}
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}
