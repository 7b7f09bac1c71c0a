package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auditdesk/backoffice-api/pkg/apperror"
	"github.com/auditdesk/backoffice-api/pkg/utils"
)

func newSessionService() (*SessionService, *fakeSessions) {
	sessions := newFakeSessions()
	jwt := utils.NewJWTManager("test-secret", 24*time.Hour)
	return NewSessionService(newFakeAuth(), sessions, jwt), sessions
}

func TestLoginCreatesSession(t *testing.T) {
	svc, sessions := newSessionService()

	res, err := svc.Login(context.Background(), &CredentialsInput{UserID: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.CookieToken == "" {
		t.Fatal("no cookie token issued")
	}
	if res.Message != "Welcome admin" {
		t.Errorf("message = %q", res.Message)
	}
	if len(sessions.rows) != 1 {
		t.Fatalf("session rows = %d, want 1", len(sessions.rows))
	}
	for _, row := range sessions.rows {
		if row.Token != "token-admin" {
			t.Errorf("stored token = %q, want the backend's", row.Token)
		}
		if row.UserID != "admin" {
			t.Errorf("stored user = %q", row.UserID)
		}
	}
}

func TestLoginValidatesInput(t *testing.T) {
	svc, sessions := newSessionService()

	_, err := svc.Login(context.Background(), &CredentialsInput{})
	if !apperror.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	appErr := apperror.GetAppError(err)
	if len(appErr.Errors) != 2 {
		t.Errorf("field errors = %d, want 2", len(appErr.Errors))
	}
	if len(sessions.rows) != 0 {
		t.Error("session created for invalid input")
	}
}

func TestLoginRejectedLeavesNoSession(t *testing.T) {
	svc, sessions := newSessionService()

	_, err := svc.Login(context.Background(), &CredentialsInput{UserID: "admin", Password: "wrong"})
	if !errors.Is(err, errLogin) {
		t.Fatalf("err = %v, want the backend's", err)
	}
	if len(sessions.rows) != 0 {
		t.Error("session created for rejected login")
	}
}

func TestResolveRoundTrip(t *testing.T) {
	svc, _ := newSessionService()

	res, err := svc.Login(context.Background(), &CredentialsInput{UserID: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	session, err := svc.Resolve(context.Background(), res.CookieToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if session.Token != "token-admin" {
		t.Errorf("resolved token = %q", session.Token)
	}
}

func TestResolveGarbageCookie(t *testing.T) {
	svc, _ := newSessionService()

	if _, err := svc.Resolve(context.Background(), "not-a-jwt"); !apperror.IsAuthError(err) {
		t.Fatalf("err = %v, want auth error", err)
	}
}

func TestResolveAfterInvalidate(t *testing.T) {
	svc, _ := newSessionService()

	res, err := svc.Login(context.Background(), &CredentialsInput{UserID: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	session, err := svc.Resolve(context.Background(), res.CookieToken)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := svc.Invalidate(context.Background(), session.ID); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), res.CookieToken); !errors.Is(err, apperror.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	// Invalidating twice is harmless.
	if err := svc.Invalidate(context.Background(), session.ID); err != nil {
		t.Fatalf("second Invalidate: %v", err)
	}
}

func TestRegister(t *testing.T) {
	svc, _ := newSessionService()

	msg, err := svc.Register(context.Background(), &CredentialsInput{UserID: "new", Password: "pw"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if msg == "" {
		t.Error("empty confirmation message")
	}

	if _, err := svc.Register(context.Background(), &CredentialsInput{UserID: "new"}); !apperror.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
