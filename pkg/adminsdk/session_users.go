package adminsdk

import (
	"context"
	"net/http"
)

// ListUsers returns one page of users. Requires ADMIN.
func (s *Session) ListUsers(ctx context.Context, params ListUsersParams) (*UserList, error) {
	var data UserList
	if err := s.do(ctx, http.MethodGet, "/api/users"+query(params), nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data, nil
}

// UserStats returns user counts. Requires ADMIN.
func (s *Session) UserStats(ctx context.Context) (*UserStats, error) {
	var data UserStatsData
	if err := s.do(ctx, http.MethodGet, "/api/users/stats", nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.Stats, nil
}

// GetUser returns a user by id. Requires ADMIN.
func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	var data UserData
	if err := s.do(ctx, http.MethodGet, "/api/users/"+id, nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// UpdateUserRole changes the role of another user. Requires ADMIN.
func (s *Session) UpdateUserRole(ctx context.Context, id, role string) (*User, error) {
	var data UserData
	if err := s.do(ctx, http.MethodPatch, "/api/users/"+id+"/role", UpdateRoleRequest{Role: role}, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.User, nil
}

// UpdateUserStatus activates or deactivates a user. Requires ADMIN.
func (s *Session) UpdateUserStatus(ctx context.Context, id, status string) (*User, error) {
	var data UserData
	if err := s.do(ctx, http.MethodPatch, "/api/users/"+id+"/status", UpdateStatusRequest{Status: status}, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.User, nil
}
