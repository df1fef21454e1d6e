package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventapi/utils"
)

// Authenticate validates the bearer token on protected routes and injects
// userId/username into the context. The response never says which check
// failed.
func Authenticate(jm *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
			return
		}

		userID, username, err := jm.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized."})
			return
		}

		c.Set("userId", userID)
		c.Set("username", username)
		c.Next()
	}
}
