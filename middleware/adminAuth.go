package middleware

import (
	"net/http"

	"skillswap/config"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates a route group to users whose email sits on the
// configured allow-list. It must run after JWTAuthUserMiddleware, which sets
// "userEmail".
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")
		if email == "" || !config.AppConfig.IsAdminEmail(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("adminEmail", email)
		c.Next()
	}
}
