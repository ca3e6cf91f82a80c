package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID. The custom key type keeps
// it from colliding with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user's ID, checking the
// Gin context first and falling back to the request context where the auth
// middleware stores it.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	if v := c.Request.Context().Value(userIDKey); v != nil {
		id, ok := v.(string)
		return id, ok && id != ""
	}
	return "", false
}
