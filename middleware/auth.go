package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pirouette/utils"
)

// JWTAuthMiddleware resolves the acting account from the bearer token and
// stores it on the context. Token issuance and role resolution live in the
// external auth service; this only consumes its tokens.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("accountID", accountID)
		c.Next()
	}
}
