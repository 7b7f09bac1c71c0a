package upstream

import (
	"context"
	"net/http"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

// Register creates a backend account and returns its confirmation message.
func (c *Client) Register(ctx context.Context, creds backend.Credentials) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/register", "", creds)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Login authenticates against the backend. A rejected login surfaces the
// backend's message when it sends one, the generic invalid-credentials
// message otherwise.
func (c *Client) Login(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", "", creds)
	if err != nil {
		if apperror.IsAuthError(err) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}
	if env.Token == "" {
		return nil, apperror.ErrInvalidCredentials
	}
	return &backend.LoginResult{Token: env.Token, Message: env.Message}, nil
}
