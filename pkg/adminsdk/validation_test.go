package adminsdk

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/require"
)

// fieldErrors flattens ozzo errors into field -> message.
func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	verrs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)

	out := map[string]string{}
	for k, v := range verrs {
		out[k] = v.Error()
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoginRequest{Email: " a@example.com ", Password: "secret"}.Validate())

	errs := fieldErrors(t, LoginRequest{}.Validate())
	require.Equal(t, "Email is required", errs["email"])
	require.Equal(t, "Password is required", errs["password"])

	errs = fieldErrors(t, LoginRequest{Email: "not-an-email", Password: "12345"}.Validate())
	require.Equal(t, "Please provide a valid email address", errs["email"])
	require.Equal(t, "Password must be at least 6 characters", errs["password"])
}

func TestInviteRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, InviteRequest{Email: "x@example.com", Role: RoleManager}.Validate())

	errs := fieldErrors(t, InviteRequest{Email: "x@example.com", Role: "OWNER"}.Validate())
	require.Equal(t, map[string]string{"role": "Role must be ADMIN, MANAGER, or STAFF"}, errs)

	errs = fieldErrors(t, InviteRequest{Email: "x@example.com"}.Validate())
	require.Equal(t, "Role is required", errs["role"])
}

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("ab", 32)
	require.NoError(t, RegisterRequest{Token: token, Name: "Jo", Password: "Secret1"}.Validate())

	tests := []struct {
		name  string
		req   RegisterRequest
		field string
		msg   string
	}{
		{"short token", RegisterRequest{Token: "abc", Name: "Jo", Password: "Secret1"}, "token", "Invalid invite token format"},
		{"missing token", RegisterRequest{Name: "Jo", Password: "Secret1"}, "token", "Invite token is required"},
		{"short name", RegisterRequest{Token: token, Name: " J ", Password: "Secret1"}, "name", "Name must be between 2 and 50 characters"},
		{"long name", RegisterRequest{Token: token, Name: strings.Repeat("n", 51), Password: "Secret1"}, "name", "Name must be between 2 and 50 characters"},
		{"no upper", RegisterRequest{Token: token, Name: "Jo", Password: "secret1"}, "password", msgPasswordWeak},
		{"no digit", RegisterRequest{Token: token, Name: "Jo", Password: "Secrets"}, "password", msgPasswordWeak},
		{"too short", RegisterRequest{Token: token, Name: "Jo", Password: "Se1"}, "password", "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := fieldErrors(t, tt.req.Validate())
			require.Equal(t, tt.msg, errs[tt.field])
		})
	}
}

func TestInviteTokenValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateInviteToken(strings.Repeat("f", 64)))
	require.EqualError(t, ValidateInviteToken(strings.Repeat("f", 63)), "Invalid invite token format")
	require.EqualError(t, ValidateInviteToken(""), "Invite token is required")
}

func TestProjectRequestsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, CreateProjectRequest{Name: "Apollo"}.Validate())

	errs := fieldErrors(t, CreateProjectRequest{Name: "A", Description: strings.Repeat("d", 501)}.Validate())
	require.Equal(t, "Project name must be between 2 and 100 characters", errs["name"])
	require.Equal(t, "Description cannot exceed 500 characters", errs["description"])

	require.NoError(t, UpdateProjectRequest{}.Validate())
	require.NoError(t, UpdateProjectRequest{Status: ptr(ProjectArchived)}.Validate())

	errs = fieldErrors(t, UpdateProjectRequest{Name: ptr(""), Status: ptr(ProjectDeleted)}.Validate())
	require.Equal(t, "Project name must be between 2 and 100 characters", errs["name"])
	require.Equal(t, "Status must be ACTIVE or ARCHIVED", errs["status"])
}

func TestListParamsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, ListUsersParams{}.Validate())
	require.NoError(t, ListUsersParams{Page: "2", Limit: "100", Role: RoleStaff, Status: UserInactive}.Validate())

	errs := fieldErrors(t, ListUsersParams{Page: "0", Limit: "101", Search: strings.Repeat("s", 101), Role: "ROOT", Status: "GONE"}.Validate())
	require.Equal(t, map[string]string{
		"page":   "Page must be a positive integer",
		"limit":  "Limit must be between 1 and 100",
		"search": "Search query cannot exceed 100 characters",
		"role":   "Role must be ADMIN, MANAGER, or STAFF",
		"status": "Status must be ACTIVE or INACTIVE",
	}, errs)

	errs = fieldErrors(t, ListProjectsParams{Limit: "ten", Status: ProjectDeleted, IncludeDeleted: "yes"}.Validate())
	require.Equal(t, map[string]string{
		"limit":          "Limit must be between 1 and 100",
		"status":         "Status must be ACTIVE or ARCHIVED",
		"includeDeleted": "includeDeleted must be true or false",
	}, errs)
}
