package admin_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

// TestProjectLifecycle creates, archives and soft deletes a project.
func TestProjectLifecycle(t *testing.T) {
	baseURL, cleanup := setupAdminContainer(t)
	defer cleanup()

	client := adminsdk.NewClient(baseURL)
	admin := loginAdmin(t, client)
	staff := onboardUser(t, client, admin, "Sam Staff", "staff@example.com", adminsdk.RoleStaff)

	project, err := staff.CreateProject(t.Context(), adminsdk.CreateProjectRequest{Name: "Apollo", Description: "Moon shot"})
	require.NoError(t, err)
	require.Equal(t, adminsdk.ProjectActive, project.Status)
	require.NotNil(t, project.CreatedBy)
	require.Equal(t, "staff@example.com", project.CreatedBy.Email)

	archived := adminsdk.ProjectArchived
	_, err = staff.UpdateProject(t.Context(), project.ID, adminsdk.UpdateProjectRequest{Status: &archived})
	assertStatus(t, err, http.StatusForbidden)

	updated, err := admin.UpdateProject(t.Context(), project.ID, adminsdk.UpdateProjectRequest{Status: &archived})
	require.NoError(t, err)
	require.Equal(t, adminsdk.ProjectArchived, updated.Status)

	deleted, err := admin.DeleteProject(t.Context(), project.ID)
	require.NoError(t, err)
	require.True(t, deleted.IsDeleted)

	_, err = staff.GetProject(t.Context(), project.ID)
	assertStatus(t, err, http.StatusNotFound)

	visible, err := staff.ListProjects(t.Context(), adminsdk.ListProjectsParams{})
	require.NoError(t, err)
	require.Empty(t, visible.Items)

	stats, err := staff.ProjectStats(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Deleted)
	require.Equal(t, 0, stats.Total)
}
