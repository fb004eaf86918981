package adminsdk

import (
	"context"
	"net/http"
)

func (s *Session) ListProjects(ctx context.Context, params ListProjectsParams) (*ProjectList, error) {
	var data ProjectList
	if err := s.do(ctx, http.MethodGet, "/api/projects"+query(params), nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *Session) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	var data ProjectStatsData
	if err := s.do(ctx, http.MethodGet, "/api/projects/stats", nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.Stats, nil
}

func (s *Session) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var data ProjectData
	if err := s.do(ctx, http.MethodPost, "/api/projects", req, &data, http.StatusCreated); err != nil {
		return nil, err
	}
	return &data.Project, nil
}

func (s *Session) GetProject(ctx context.Context, id string) (*Project, error) {
	var data ProjectData
	if err := s.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.Project, nil
}

// UpdateProject applies a partial update. Requires ADMIN.
func (s *Session) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*Project, error) {
	var data ProjectData
	if err := s.do(ctx, http.MethodPatch, "/api/projects/"+id, req, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.Project, nil
}

// DeleteProject soft deletes a project. Requires ADMIN.
func (s *Session) DeleteProject(ctx context.Context, id string) (*Project, error) {
	var data ProjectData
	if err := s.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, &data, http.StatusOK); err != nil {
		return nil, err
	}
	return &data.Project, nil
}
