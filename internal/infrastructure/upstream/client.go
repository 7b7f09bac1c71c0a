// Package upstream implements the backend API contracts over HTTP. One
// client, one configured base URL, one timeout; the token travels in the
// Authorization header exactly as the backend expects it, with no scheme
// prefix.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

// Client talks to the backend REST service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. Every request is
// bounded by timeout; the backend itself never enforces one.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the backend's response wrapper. Some endpoints return it,
// some return a bare payload; Success is a pointer so its absence is
// distinguishable from false.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

// do sends one request and decodes the response into an envelope. Bare
// payloads (the receipts list endpoint returns a naked array) are folded
// into the Data field so callers see one shape.
func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrUpstreamDown
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrUpstreamDown
	}

	env := decode(raw)

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, apperror.ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		return nil, apperror.NewUpstreamError(resp.StatusCode, env.Message)
	}
	// The transport can say 200 while the envelope says failure.
	if env.Success != nil && !*env.Success {
		return nil, apperror.NewUpstreamError(http.StatusBadGateway, env.Message)
	}
	return env, nil
}

// decode folds the two response shapes the backend uses into one envelope.
func decode(raw []byte) *envelope {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &envelope{}
	}
	if trimmed[0] == '[' {
		return &envelope{Data: json.RawMessage(trimmed)}
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return &envelope{}
	}
	if env.Data == nil && env.Success == nil && env.Message == "" && env.Token == "" {
		// A bare object payload with none of the envelope keys.
		env.Data = json.RawMessage(trimmed)
	}
	return &env
}

// payload decodes the envelope's data into out. Endpoints that wrap the
// record in {data: ...} and endpoints that return it bare both end up here.
func (e *envelope) payload(out any) error {
	if e.Data == nil {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}
