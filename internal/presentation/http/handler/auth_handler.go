package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/request"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/middleware"
)

// AuthHandler handles login, logout and registration.
type AuthHandler struct {
	sessions     *service.SessionService
	cookieName   string
	cookieMaxAge int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessions *service.SessionService, cookieName string, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		sessions:     sessions,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// Register handles account creation
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.sessions.Register(c.Request.Context(), &service.CredentialsInput{
		UserID:   req.UserID,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message, nil)
}

// Login authenticates and plants the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.sessions.Login(c.Request.Context(), &service.CredentialsInput{
		UserID:   req.UserID,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(h.cookieName, result.CookieToken, h.cookieMaxAge, "/", "", false, true)
	response.OK(c, result.Message, gin.H{"userId": req.UserID})
}

// Logout destroys the session and expires the cookie. It succeeds whatever
// state the cookie is in; there is nothing useful to report about a logout
// that was already effective.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie != "" {
		if session, err := h.sessions.Resolve(c.Request.Context(), cookie); err == nil {
			_ = h.sessions.Invalidate(c.Request.Context(), session.ID)
		}
	}
	middleware.ClearSessionCookie(c, h.cookieName)
	response.OK(c, "Logged out", nil)
}
