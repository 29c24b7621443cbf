package middleware

import (
	"errors"
	"net/http"

	"lawmatters-backend/models"
	"lawmatters-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "lm_session"

const principalKey = "principal"

// Auth resolves the session cookie to a principal.
type Auth struct {
	AuthService *service.AuthService
	Logger      *zap.Logger
}

// RequireAuth aborts with 401 unless the request carries a valid session.
// On success the resolved user is attached to the context.
func (m *Auth) RequireAuth(c *gin.Context) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	user, err := m.AuthService.Authenticate(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		m.Logger.Error("session lookup failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.Set(principalKey, user)
	c.Next()
}

// GetPrincipal returns the authenticated user attached by RequireAuth.
func GetPrincipal(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
