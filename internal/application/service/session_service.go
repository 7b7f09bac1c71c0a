package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/internal/domain/repository"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
	"github.com/auditdesk/backoffice-api/pkg/utils"
)

// SessionService owns the login/logout lifecycle. The upstream token never
// leaves the gateway: the browser holds a signed cookie referencing a
// session row, and the row holds the token.
type SessionService struct {
	auth     backend.AuthAPI
	sessions repository.SessionRepository
	jwt      *utils.JWTManager
}

// NewSessionService creates a new session service
func NewSessionService(auth backend.AuthAPI, sessions repository.SessionRepository, jwt *utils.JWTManager) *SessionService {
	return &SessionService{auth: auth, sessions: sessions, jwt: jwt}
}

// CredentialsInput represents the login/register input
type CredentialsInput struct {
	UserID   string
	Password string
}

func (in *CredentialsInput) validate() error {
	var fieldErrors []apperror.FieldError
	if in.UserID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "UserId", Message: "is required"})
	}
	if in.Password == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "Password", Message: "is required"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Register forwards account creation to the backend.
func (s *SessionService) Register(ctx context.Context, input *CredentialsInput) (string, error) {
	if err := input.validate(); err != nil {
		return "", err
	}
	message, err := s.auth.Register(ctx, backend.Credentials{UserID: input.UserID, Password: input.Password})
	if err != nil {
		return "", err
	}
	if message == "" {
		message = "Account created"
	}
	return message, nil
}

// LoginResult carries what the login handler needs: the signed cookie value
// and the backend's greeting.
type LoginResult struct {
	CookieToken string
	Message     string
}

// Login authenticates against the backend, persists the returned token in a
// new session row, and signs a cookie token referencing it.
func (s *SessionService) Login(ctx context.Context, input *CredentialsInput) (*LoginResult, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	res, err := s.auth.Login(ctx, backend.Credentials{UserID: input.UserID, Password: input.Password})
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Token:     res.Token,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	cookieToken, err := s.jwt.GenerateSessionToken(session.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{CookieToken: cookieToken, Message: res.Message}, nil
}

// Resolve maps a cookie token back to its live session. Any failure along
// the way means the caller is not logged in.
func (s *SessionService) Resolve(ctx context.Context, cookieToken string) (*entity.Session, error) {
	sessionID, err := s.jwt.ValidateSessionToken(cookieToken)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.ErrSessionExpired
	}
	return session, nil
}

// Invalidate destroys a session row. Logout and 401-triggered invalidation
// both land here; deleting an already-gone session is not an error.
func (s *SessionService) Invalidate(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Delete(ctx, sessionID)
}
