package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
)

// SessionContextKey is where the resolved session lives in the gin context.
const SessionContextKey = "session"

// SessionMiddleware gates protected routes on a live session: the request
// must carry the session cookie, the cookie must verify, and the session row
// it references must still exist. Anything else is a 401 and the cookie is
// expired so the browser falls back to the login screen.
func SessionMiddleware(sessions *service.SessionService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(cookieName)
		if err != nil || cookie == "" {
			response.Unauthorized(c, "Login required")
			c.Abort()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), cookie)
		if err != nil {
			ClearSessionCookie(c, cookieName)
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession extracts the resolved session from the gin context.
func GetSession(c *gin.Context) *entity.Session {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*entity.Session)
	if !ok {
		return nil
	}
	return session
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, cookieName string) {
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
