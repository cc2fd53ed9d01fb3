package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"quickmed/services/account"
	"quickmed/utils"
)

// RequireRole gates a route on a capability resolved through the role
// store. Must run after JWTAuth.
func RequireRole(store account.RoleStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)

		ok, err := store.HasRole(c.Request.Context(), email, role)
		if err != nil {
			utils.GetLogger().Error("role resolution failed",
				zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
				Kind:    string(utils.KindInfrastructure),
				Message: "could not verify access",
			})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Kind:    string(utils.KindForbidden),
				Message: "forbidden access",
			})
			return
		}

		c.Next()
	}
}
