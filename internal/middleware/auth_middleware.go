package middleware

import (
	"net/http"
	"strings"

	"boardsvc/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

// UserIDHeader carries the authenticated user id set by the gateway. The
// gateway strips it from external traffic, so its presence is trusted.
const UserIDHeader = "X-User-ID"

// InternalKeyHeader carries the shared secret for service-to-service calls.
const InternalKeyHeader = "X-Internal-Key"

// AuthMiddleware resolves the caller's identity. The gateway header takes
// priority; without it the request must carry a Bearer token signed with
// the configured secret.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader(UserIDHeader); header != "" {
			userID, err := uuid.Parse(header)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID header"})
				c.Abort()
				return
			}
			c.Set(UserIDKey, userID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		userIDStr, err := auth.ParseToken(parts[1], jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// InternalAuthMiddleware guards service-to-service endpoints with a shared
// secret. Requests failing the check never reach the engine.
func InternalAuthMiddleware(internalKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if internalKey == "" || c.GetHeader(InternalKeyHeader) != internalKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid internal key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
