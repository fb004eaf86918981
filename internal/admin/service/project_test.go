package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

func ptr[T any](v T) *T { return &v }

func TestProjectLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.seedUser(t, "Mia Manager", "mia@example.com", domain.RoleManager, domain.UserActive)

	p, err := f.projects.CreateProject(ctx, owner.ID, "  Apollo ", "Moon shot")
	require.NoError(t, err)
	require.Equal(t, "Apollo", p.Name)
	require.Equal(t, domain.ProjectActive, p.Status)
	require.False(t, p.IsDeleted)
	require.NotNil(t, p.Creator)
	require.Equal(t, owner.Email, p.Creator.Email)

	t.Run("partial update", func(t *testing.T) {
		f.clock.Advance(time.Minute)
		got, err := f.projects.UpdateProject(ctx, p.ID, domain.ProjectUpdate{Status: ptr(domain.ProjectArchived)})
		require.NoError(t, err)
		require.Equal(t, "Apollo", got.Name)
		require.Equal(t, "Moon shot", got.Description)
		require.Equal(t, domain.ProjectArchived, got.Status)
		require.True(t, got.UpdatedAt.After(p.UpdatedAt))

		stored, err := f.projects.GetProject(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, domain.ProjectArchived, stored.Status)
	})

	t.Run("status cannot be set to deleted directly", func(t *testing.T) {
		_, err := f.projects.UpdateProject(ctx, p.ID, domain.ProjectUpdate{Status: ptr(domain.ProjectDeleted)})
		var serr *Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, KindBadRequest, serr.Kind)
	})

	t.Run("soft delete hides the project", func(t *testing.T) {
		deleted, err := f.projects.DeleteProject(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, deleted.IsDeleted)
		require.Equal(t, domain.ProjectDeleted, deleted.Status)

		_, err = f.projects.GetProject(ctx, p.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)
		_, err = f.projects.UpdateProject(ctx, p.ID, domain.ProjectUpdate{Name: ptr("Gemini")})
		require.ErrorIs(t, err, ErrProjectNotFound)
		_, err = f.projects.DeleteProject(ctx, p.ID)
		require.ErrorIs(t, err, ErrProjectNotFound)

		stored, err := f.store.Projects().GetProjectByID(ctx, p.ID)
		require.NoError(t, err)
		require.True(t, stored.IsDeleted)
	})
}

func TestListProjectsAndStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	owner := f.seedUser(t, "Mia Manager", "mia@example.com", domain.RoleManager, domain.UserActive)

	create := func(name, desc string) domain.Project {
		p, err := f.projects.CreateProject(ctx, owner.ID, name, desc)
		require.NoError(t, err)
		f.clock.Advance(time.Second)
		return p
	}
	create("Apollo", "moon")
	gemini := create("Gemini", "orbit")
	mercury := create("Mercury", "first flights")
	create("Skylab", "station")

	_, err := f.projects.UpdateProject(ctx, gemini.ID, domain.ProjectUpdate{Status: ptr(domain.ProjectArchived)})
	require.NoError(t, err)
	_, err = f.projects.DeleteProject(ctx, mercury.ID)
	require.NoError(t, err)

	t.Run("deleted projects are excluded by default", func(t *testing.T) {
		page, err := f.projects.ListProjects(ctx, domain.ProjectFilter{})
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Equal(t, "Skylab", page.Items[0].Name)
		for _, p := range page.Items {
			require.False(t, p.IsDeleted)
		}

		page, err = f.projects.ListProjects(ctx, domain.ProjectFilter{IncludeDeleted: true})
		require.NoError(t, err)
		require.Equal(t, 4, page.Total)
	})

	t.Run("search and status filter", func(t *testing.T) {
		page, err := f.projects.ListProjects(ctx, domain.ProjectFilter{Search: "ORBIT"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, gemini.ID, page.Items[0].ID)

		page, err = f.projects.ListProjects(ctx, domain.ProjectFilter{Status: domain.ProjectActive})
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := f.projects.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.ProjectStats{Total: 3, Active: 2, Archived: 1, Deleted: 1}, stats)
	})
}
