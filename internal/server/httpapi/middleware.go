package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/finledger/internal/server/auth"
)

const userIDKey = "user_id"

// authRequired extracts the bearer credential from the Authorization header,
// verifies it, and stores the asserted user id in the request context.
// The handlers behind it never see an unauthenticated request.
func (s *HTTPServer) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid auth header format"})
			return
		}

		userID, err := auth.GetUserIDFromToken(parts[1], s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func assertedUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
