package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
)

const msgInvalidUserID = "Invalid user ID format"

type UserHandler struct {
	UserService *service.UserService
}

// queryInt parses an already validated numeric query value. Empty means zero.
func queryInt(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

// HandleListUsers godoc
//
//	@Summary		List users
//	@Description	Paginated user listing, newest first. Admin only.
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int		false	"Page number (default 1)"
//	@Param			limit	query		int		false	"Page size, 1 to 100 (default 10)"
//	@Param			search	query		string	false	"Case-insensitive match on name or email"
//	@Param			role	query		string	false	"ADMIN, MANAGER or STAFF"
//	@Param			status	query		string	false	"ACTIVE or INACTIVE"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.UserList]	"items, pagination"
//	@Failure		400		{object}	adminsdk.Envelope[any]				"validation failed"
//	@Failure		401		{object}	adminsdk.Envelope[any]				"not authenticated"
//	@Failure		403		{object}	adminsdk.Envelope[any]				"not an admin"
//	@Security		BearerAuth
//	@Router			/api/users [get].
func (h *UserHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := adminsdk.ListUsersParams{
		Page:   q.Get("page"),
		Limit:  q.Get("limit"),
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
	}
	if err := httpx.ValidationFailed(params.Validate()); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	page, err := h.UserService.ListUsers(r.Context(), domain.UserFilter{
		Search: params.Search,
		Role:   domain.Role(params.Role),
		Status: domain.UserStatus(params.Status),
		Page:   queryInt(params.Page),
		Limit:  queryInt(params.Limit),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	items := make([]adminsdk.User, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, toUser(u))
	}
	httpx.WriteSuccess(w, http.StatusOK, "Users retrieved successfully", adminsdk.UserList{
		Items:      items,
		Pagination: toPagination(page),
	})
}

// HandleUserStats godoc
//
//	@Summary	User statistics
//	@Tags		Users
//	@Produce	json
//	@Success	200	{object}	adminsdk.Envelope[adminsdk.UserStatsData]	"stats"
//	@Failure	401	{object}	adminsdk.Envelope[any]						"not authenticated"
//	@Failure	403	{object}	adminsdk.Envelope[any]						"not an admin"
//	@Security	BearerAuth
//	@Router		/api/users/stats [get].
func (h *UserHandler) HandleUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.UserService.Stats(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "User stats retrieved successfully", adminsdk.UserStatsData{Stats: toUserStats(stats)})
}

// HandleGetUser godoc
//
//	@Summary	Get a user
//	@Tags		Users
//	@Produce	json
//	@Param		id	path		string								true	"User ID"
//	@Success	200	{object}	adminsdk.Envelope[adminsdk.UserData]	"user"
//	@Failure	400	{object}	adminsdk.Envelope[any]				"malformed id"
//	@Failure	404	{object}	adminsdk.Envelope[any]				"user not found"
//	@Security	BearerAuth
//	@Router		/api/users/{id} [get].
func (h *UserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, msgInvalidUserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	u, err := h.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "User retrieved successfully", adminsdk.UserData{User: toUser(u)})
}

// HandleUpdateRole godoc
//
//	@Summary		Change a user's role
//	@Description	Admins cannot change their own role.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"User ID"
//	@Param			request	body		adminsdk.UpdateRoleRequest			true	"New role"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.UserData]	"user"
//	@Failure		400		{object}	adminsdk.Envelope[any]				"validation failed or own account"
//	@Failure		404		{object}	adminsdk.Envelope[any]				"user not found"
//	@Security		BearerAuth
//	@Router			/api/users/{id}/role [patch].
func (h *UserHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	id, err := pathID(r, msgInvalidUserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req adminsdk.UpdateRoleRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	u, err := h.UserService.UpdateUserRole(r.Context(), caller.UserID, id, domain.Role(req.Role))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "User role updated successfully", adminsdk.UserData{User: toUser(u)})
}

// HandleUpdateStatus godoc
//
//	@Summary		Activate or deactivate a user
//	@Description	Admins cannot deactivate their own account.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"User ID"
//	@Param			request	body		adminsdk.UpdateStatusRequest		true	"New status"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.UserData]	"user"
//	@Failure		400		{object}	adminsdk.Envelope[any]				"validation failed or own account"
//	@Failure		404		{object}	adminsdk.Envelope[any]				"user not found"
//	@Security		BearerAuth
//	@Router			/api/users/{id}/status [patch].
func (h *UserHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	id, err := pathID(r, msgInvalidUserID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req adminsdk.UpdateStatusRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	status := domain.UserStatus(req.Status)
	u, err := h.UserService.UpdateUserStatus(r.Context(), caller.UserID, id, status)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	msg := "User deactivated successfully"
	if status == domain.UserActive {
		msg = "User activated successfully"
	}
	httpx.WriteSuccess(w, http.StatusOK, msg, adminsdk.UserData{User: toUser(u)})
}
