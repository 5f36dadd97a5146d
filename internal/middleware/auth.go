package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-scheduler/pkg/response"
	"task-scheduler/pkg/scope"
)

const (
	contextUserIDKey = "auth.user_id"
	contextEmailKey  = "auth.email"
)

// Auth resolves the bearer token to a user identity and puts it on the
// request context. Requests without a valid session get 401 and never reach
// the handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "auth: token rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, payload.UserID)
		c.Set(contextEmailKey, payload.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Cookie fallback for browser clients.
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie
	}
	return ""
}

// UserID returns the authenticated user's ID set by Auth, or "" when the
// route is unauthenticated.
func UserID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

// Email returns the authenticated user's email set by Auth.
func Email(c *gin.Context) string {
	return c.GetString(contextEmailKey)
}

// SetIdentity seeds the request identity directly. Intended for tests.
func SetIdentity(c *gin.Context, payload scope.Payload) {
	c.Set(contextUserIDKey, payload.UserID)
	c.Set(contextEmailKey, payload.Email)
}
