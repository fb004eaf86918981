package adminsdk

import "time"

// Roles and statuses as they appear on the wire.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"

	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"

	ProjectActive   = "ACTIVE"
	ProjectArchived = "ARCHIVED"
	ProjectDeleted  = "DELETED"
)

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the body of every API response.
type Envelope[T any] struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    T            `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ============================================================================
// Requests
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest is a partial update; nil fields are left unchanged.
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ListUsersParams are the query parameters of GET /api/users. Empty values
// are omitted.
type ListUsersParams struct {
	Page   string `json:"page"`
	Limit  string `json:"limit"`
	Search string `json:"search"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

// ListProjectsParams are the query parameters of GET /api/projects.
type ListProjectsParams struct {
	Page           string `json:"page"`
	Limit          string `json:"limit"`
	Search         string `json:"search"`
	Status         string `json:"status"`
	IncludeDeleted string `json:"includeDeleted"`
}

// ============================================================================
// Resources
// ============================================================================

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	InvitedAt *time.Time `json:"invitedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Invite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	InvitedBy string    `json:"invitedBy"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type Creator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedBy   *Creator  `json:"createdBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type UserStats struct {
	Total    int         `json:"total"`
	Active   int         `json:"active"`
	Inactive int         `json:"inactive"`
	ByRole   []RoleCount `json:"byRole"`
}

type ProjectStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
	Deleted  int `json:"deleted"`
}

// ============================================================================
// Response payloads (the "data" member of the envelope)
// ============================================================================

type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type InviteData struct {
	Invite      Invite `json:"invite"`
	InviteToken string `json:"inviteToken"`
	InviteLink  string `json:"inviteLink"`
}

type InviteStatus struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type UserData struct {
	User User `json:"user"`
}

type UserList struct {
	Items      []User     `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type UserStatsData struct {
	Stats UserStats `json:"stats"`
}

type ProjectData struct {
	Project Project `json:"project"`
}

type ProjectList struct {
	Items      []Project  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type ProjectStatsData struct {
	Stats ProjectStats `json:"stats"`
}

// ============================================================================
// System
// ============================================================================

// APIInfo is returned by GET /api and GET /api/health.
type APIInfo struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Queue    string `json:"queue,omitempty"`
}
