package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/export"
	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/middleware"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Guard gives every protected handler the same two moves: read the session
// the middleware resolved, and funnel every failure through one exit.
type Guard struct {
	Sessions   *service.SessionService
	CookieName string
}

// Session returns the request's resolved session, answering 401 when the
// middleware did not provide one.
func (g *Guard) Session(c *gin.Context) *entity.Session {
	session := middleware.GetSession(c)
	if session == nil {
		response.Unauthorized(c, "Login required")
		c.Abort()
	}
	return session
}

// Fail is the single exit point for failed operations. A 401 from the
// backend means the stored token has gone stale, so the session is
// destroyed and the cookie expired; every screen lands back on login the
// same way.
func (g *Guard) Fail(c *gin.Context, session *entity.Session, err error) {
	if apperror.IsAuthError(err) && session != nil {
		_ = g.Sessions.Invalidate(c.Request.Context(), session.ID)
		middleware.ClearSessionCookie(c, g.CookieName)
	}
	response.Error(c, err)
}

// sendWorkbook serves an export file as an attachment download.
func sendWorkbook(c *gin.Context, file *export.File) {
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(200, xlsxContentType, file.Content.Bytes())
}
