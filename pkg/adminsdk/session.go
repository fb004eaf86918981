package adminsdk

import (
	"context"
	"net/http"
)

// Session performs requests on behalf of a logged in user.
type Session struct {
	client *Client
	token  string
	user   User
}

// Token returns the session token.
func (s *Session) Token() string { return s.token }

// User returns the user the session was created for. It is empty for
// sessions built with NewSession.
func (s *Session) User() User { return s.user }

func (s *Session) do(ctx context.Context, method, path string, body, out any, expectedStatus int) error {
	return s.client.do(ctx, method, path, s.token, body, out, expectedStatus)
}

// Me returns the current user.
func (s *Session) Me(ctx context.Context) (*User, error) {
	var data UserData
	if err := s.do(ctx, http.MethodGet, "/api/auth/me", nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// CreateInvite invites a new user. Requires ADMIN.
func (s *Session) CreateInvite(ctx context.Context, req InviteRequest) (*InviteData, error) {
	var data InviteData
	if err := s.do(ctx, http.MethodPost, "/api/auth/invite", req, &data, http.StatusCreated); err != nil {
		return nil, err
	}
	return &data, nil
}
