package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"chronowalker/pkg/utils"
)

func JWTAuthMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if !claims.IsActive {
			utils.RespondError(c, http.StatusForbidden, "Inactive user")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Set("is_superuser", claims.IsSuperuser)
		c.Next()
	}
}

func SuperuserMiddleware() gin.HandlerFunc {

	return func(c *gin.Context) {
		if !c.GetBool("is_superuser") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
