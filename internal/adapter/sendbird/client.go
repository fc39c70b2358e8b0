package sendbird

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bvminh-dev/send-bird/internal/domain"
	"github.com/bvminh-dev/send-bird/internal/port"
)

// Each Sendbird application gets its own API host.
const baseURLTemplate = "https://api-%s.sendbird.com/v3"

// Client implements port.ChatProvider against the Sendbird Platform API.
// It holds only immutable configuration, so a single instance is safe to
// share across request handlers.
type Client struct {
	apiToken   string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Sendbird client for the given application. Both values
// are required for every call, so an empty one is rejected up front rather
// than surfacing as a failed request later.
func NewClient(appID, apiToken string) (*Client, error) {
	if appID == "" {
		return nil, errors.New("sendbird: application ID is required")
	}
	if apiToken == "" {
		return nil, errors.New("sendbird: API token is required")
	}
	return &Client{
		apiToken:   apiToken,
		baseURL:    fmt.Sprintf(baseURLTemplate, appID),
		httpClient: &http.Client{},
	}, nil
}

// CreateUserToken issues an access token for the given user ID. Sendbird
// creates a fresh token on every call, so this doubles as "fetch".
func (c *Client) CreateUserToken(ctx context.Context, userID string) (json.RawMessage, error) {
	path := "/users/" + url.PathEscape(userID) + "/token"
	return c.post(ctx, path, struct{}{})
}

// CreateUser registers a new user. The record is forwarded as-is; a second
// call with the same user_id surfaces Sendbird's own duplicate-user error.
func (c *Client) CreateUser(ctx context.Context, user domain.UserRecord) (json.RawMessage, error) {
	return c.post(ctx, "/users", user)
}

// post sends one JSON request and returns the raw response body on 2xx.
// Non-2xx answers become *port.UpstreamError carrying the platform's status
// and message so the handler layer can map them onto the outbound response.
func (c *Client) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Token", c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, upstreamError(resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}

// upstreamError decodes Sendbird's error shape {"error":true,"code":N,"message":S}
// when possible and falls back to the raw body otherwise.
func upstreamError(status int, body []byte) *port.UpstreamError {
	e := &port.UpstreamError{Status: status}

	var parsed struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		e.Code = parsed.Code
		e.Detail = parsed.Message
		return e
	}

	e.Detail = string(bytes.TrimSpace(body))
	return e
}
