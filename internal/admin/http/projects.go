package http

import (
	"net/http"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
)

const msgInvalidProjectID = "Invalid project ID format"

type ProjectHandler struct {
	ProjectService *service.ProjectService
}

// HandleListProjects godoc
//
//	@Summary		List projects
//	@Description	Paginated project listing, newest first. Deleted projects are hidden unless includeDeleted=true.
//	@Tags			Projects
//	@Produce		json
//	@Param			page			query		int		false	"Page number (default 1)"
//	@Param			limit			query		int		false	"Page size, 1 to 100 (default 10)"
//	@Param			search			query		string	false	"Case-insensitive match on name or description"
//	@Param			status			query		string	false	"ACTIVE, ARCHIVED or DELETED"
//	@Param			includeDeleted	query		bool	false	"Include soft-deleted projects"
//	@Success		200				{object}	adminsdk.Envelope[adminsdk.ProjectList]	"items, pagination"
//	@Failure		400				{object}	adminsdk.Envelope[any]					"validation failed"
//	@Failure		401				{object}	adminsdk.Envelope[any]					"not authenticated"
//	@Security		BearerAuth
//	@Router			/api/projects [get].
func (h *ProjectHandler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := adminsdk.ListProjectsParams{
		Page:           q.Get("page"),
		Limit:          q.Get("limit"),
		Search:         q.Get("search"),
		Status:         q.Get("status"),
		IncludeDeleted: q.Get("includeDeleted"),
	}
	if err := httpx.ValidationFailed(params.Validate()); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	page, err := h.ProjectService.ListProjects(r.Context(), domain.ProjectFilter{
		Search:         params.Search,
		Status:         domain.ProjectStatus(params.Status),
		IncludeDeleted: params.IncludeDeleted == "true",
		Page:           queryInt(params.Page),
		Limit:          queryInt(params.Limit),
	})
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	items := make([]adminsdk.Project, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toProject(p))
	}
	httpx.WriteSuccess(w, http.StatusOK, "Projects retrieved successfully", adminsdk.ProjectList{
		Items:      items,
		Pagination: toPagination(page),
	})
}

// HandleProjectStats godoc
//
//	@Summary	Project statistics
//	@Tags		Projects
//	@Produce	json
//	@Success	200	{object}	adminsdk.Envelope[adminsdk.ProjectStatsData]	"stats"
//	@Failure	401	{object}	adminsdk.Envelope[any]							"not authenticated"
//	@Security	BearerAuth
//	@Router		/api/projects/stats [get].
func (h *ProjectHandler) HandleProjectStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ProjectService.Stats(r.Context())
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Project stats retrieved successfully", adminsdk.ProjectStatsData{Stats: toProjectStats(stats)})
}

// HandleCreateProject godoc
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Param		request	body		adminsdk.CreateProjectRequest			true	"Project"
//	@Success	201		{object}	adminsdk.Envelope[adminsdk.ProjectData]	"project"
//	@Failure	400		{object}	adminsdk.Envelope[any]					"validation failed"
//	@Security	BearerAuth
//	@Router		/api/projects [post].
func (h *ProjectHandler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	caller, err := identity(r)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req adminsdk.CreateProjectRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	p, err := h.ProjectService.CreateProject(r.Context(), caller.UserID, req.Name, req.Description)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "Project created successfully", adminsdk.ProjectData{Project: toProject(p)})
}

// HandleGetProject godoc
//
//	@Summary	Get a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string									true	"Project ID"
//	@Success	200	{object}	adminsdk.Envelope[adminsdk.ProjectData]	"project"
//	@Failure	400	{object}	adminsdk.Envelope[any]					"malformed id"
//	@Failure	404	{object}	adminsdk.Envelope[any]					"project not found or deleted"
//	@Security	BearerAuth
//	@Router		/api/projects/{id} [get].
func (h *ProjectHandler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, msgInvalidProjectID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	p, err := h.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Project retrieved successfully", adminsdk.ProjectData{Project: toProject(p)})
}

// HandleUpdateProject godoc
//
//	@Summary		Update a project
//	@Description	Partial update of name, description and status.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string									true	"Project ID"
//	@Param			request	body		adminsdk.UpdateProjectRequest			true	"Changes"
//	@Success		200		{object}	adminsdk.Envelope[adminsdk.ProjectData]	"project"
//	@Failure		400		{object}	adminsdk.Envelope[any]					"validation failed"
//	@Failure		403		{object}	adminsdk.Envelope[any]					"not an admin"
//	@Failure		404		{object}	adminsdk.Envelope[any]					"project not found or deleted"
//	@Security		BearerAuth
//	@Router			/api/projects/{id} [patch].
func (h *ProjectHandler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, msgInvalidProjectID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	var req adminsdk.UpdateProjectRequest
	if err := decodeRequest(r, &req); err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	upd := domain.ProjectUpdate{Name: req.Name, Description: req.Description}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		upd.Status = &status
	}

	p, err := h.ProjectService.UpdateProject(r.Context(), id, upd)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Project updated successfully", adminsdk.ProjectData{Project: toProject(p)})
}

// HandleDeleteProject godoc
//
//	@Summary		Delete a project
//	@Description	Soft delete. The record is kept with status DELETED. Admin only.
//	@Tags			Projects
//	@Produce		json
//	@Param			id	path		string									true	"Project ID"
//	@Success		200	{object}	adminsdk.Envelope[adminsdk.ProjectData]	"project"
//	@Failure		400	{object}	adminsdk.Envelope[any]					"malformed id"
//	@Failure		403	{object}	adminsdk.Envelope[any]					"not an admin"
//	@Failure		404	{object}	adminsdk.Envelope[any]					"project not found or deleted"
//	@Security		BearerAuth
//	@Router			/api/projects/{id} [delete].
func (h *ProjectHandler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, msgInvalidProjectID)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}

	p, err := h.ProjectService.DeleteProject(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "Project deleted successfully", adminsdk.ProjectData{Project: toProject(p)})
}
