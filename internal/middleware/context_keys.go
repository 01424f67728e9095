package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey namespaces values this package stores in a request context.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID set by AuthMiddleware.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserRoleFromContext retrieves the role claim of the authenticated user.
func GetUserRoleFromContext(c *gin.Context) string {
	if v, exists := c.Get(string(userRoleKey)); exists {
		if role, ok := v.(string); ok {
			return role
		}
	}
	role, _ := c.Request.Context().Value(userRoleKey).(string)
	return role
}

// withUser stores the authenticated identity in both the gin and the request context.
func withUser(c *gin.Context, userID, role string) {
	c.Set(string(userIDKey), userID)
	c.Set(string(userRoleKey), role)
	ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, userRoleKey, role)
	c.Request = c.Request.WithContext(ctx)
}
