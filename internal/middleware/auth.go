// Package middleware provides HTTP middleware for the contact management
// service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/models"
	"github.com/mrifkiw/contact-management/internal/service"
	"go.uber.org/zap"
)

// UserKey is the gin context key under which the authenticated user is
// stored by RequireAuth.
const UserKey = "currentUser"

// AuthMiddleware resolves the Authorization header to a user identity.
type AuthMiddleware struct {
	users service.UserService
	log   *zap.SugaredLogger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(users service.UserService, log *zap.SugaredLogger) *AuthMiddleware {
	return &AuthMiddleware{users: users, log: log.With("middleware", "auth")}
}

// RequireAuth aborts with 401 unless the Authorization header equals a
// stored user token. The matched user is placed on the request context for
// the handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.users.Authenticate(c.Request.Context(), extractToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"errors": gin.H{"message": []string{"unauthorized"}},
			})
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil when the
// request did not pass through it.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(UserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// extractToken reads the raw Authorization header. Clients send the token
// as-is; an optional "Bearer " prefix is tolerated and stripped.
func extractToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
