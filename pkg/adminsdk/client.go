package adminsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the NexusAdmin API without a session.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API served at baseURL (without the
// /api prefix).
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an existing session token.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var data AuthData
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{client: c, token: data.Token, user: data.User}, nil
}

// VerifyInvite reports the email and role an invite token was issued for.
func (c *Client) VerifyInvite(ctx context.Context, token string) (*InviteStatus, error) {
	var data InviteStatus
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify-invite/"+token, "", nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data, nil
}

// RegisterViaInvite creates the invited account and returns its Session.
func (c *Client) RegisterViaInvite(ctx context.Context, req RegisterRequest) (*Session, error) {
	var data AuthData
	if err := c.do(ctx, http.MethodPost, "/api/auth/register-via-invite", "", req, &data, http.StatusCreated); err != nil {
		return nil, err
	}
	return &Session{client: c, token: data.Token, user: data.User}, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getRaw(ctx, "/livez", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service and its database are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getRaw(ctx, "/readyz", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetInfo returns the API banner served at /api.
func (c *Client) GetInfo(ctx context.Context) (*APIInfo, error) {
	var info APIInfo
	if err := c.getRaw(ctx, "/api", &info); err != nil {
		return nil, err
	}
	return &info, nil
}
