package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

func TestListUsers(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	f.seedUser(t, "Bob Manager", "bob@example.com", domain.RoleManager, domain.UserActive)
	f.seedUser(t, "Carol Staff", "carol@example.com", domain.RoleStaff, domain.UserInactive)

	t.Run("defaults and newest first", func(t *testing.T) {
		page, err := f.users.ListUsers(ctx, domain.UserFilter{})
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Equal(t, domain.DefaultPage, page.Page)
		require.Equal(t, domain.DefaultLimit, page.Limit)
		require.Len(t, page.Items, 3)
		require.Equal(t, "carol@example.com", page.Items[0].Email)
		require.Equal(t, "alice@example.com", page.Items[2].Email)
	})

	t.Run("paging", func(t *testing.T) {
		page, err := f.users.ListUsers(ctx, domain.UserFilter{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Equal(t, 2, page.TotalPages())
		require.False(t, page.HasNext())
		require.True(t, page.HasPrev())
		require.Len(t, page.Items, 1)
	})

	t.Run("filters", func(t *testing.T) {
		page, err := f.users.ListUsers(ctx, domain.UserFilter{Search: "BOB"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)

		page, err = f.users.ListUsers(ctx, domain.UserFilter{Status: domain.UserInactive})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "carol@example.com", page.Items[0].Email)

		page, err = f.users.ListUsers(ctx, domain.UserFilter{Role: domain.RoleAdmin})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	staff := f.seedUser(t, "Sam Staff", "sam@example.com", domain.RoleStaff, domain.UserActive)

	t.Run("promote another user", func(t *testing.T) {
		u, err := f.users.UpdateUserRole(ctx, admin.ID, staff.ID, domain.RoleManager)
		require.NoError(t, err)
		require.Equal(t, domain.RoleManager, u.Role)
	})

	t.Run("cannot change own role", func(t *testing.T) {
		_, err := f.users.UpdateUserRole(ctx, admin.ID, admin.ID, domain.RoleStaff)
		require.ErrorIs(t, err, ErrSelfRoleChange)

		u, err := f.users.GetUserByID(ctx, admin.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)
	})

	t.Run("cannot deactivate self but may reactivate self", func(t *testing.T) {
		_, err := f.users.UpdateUserStatus(ctx, admin.ID, admin.ID, domain.UserInactive)
		require.ErrorIs(t, err, ErrSelfDeactivate)

		u, err := f.users.UpdateUserStatus(ctx, admin.ID, admin.ID, domain.UserActive)
		require.NoError(t, err)
		require.Equal(t, domain.UserActive, u.Status)
	})

	t.Run("deactivation revokes the session", func(t *testing.T) {
		u, err := f.users.UpdateUserStatus(ctx, admin.ID, staff.ID, domain.UserInactive)
		require.NoError(t, err)
		require.Equal(t, domain.UserInactive, u.Status)

		_, err = f.auth.CheckSession(ctx, staff.ID)
		require.ErrorIs(t, err, ErrAccountDeactivated)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.users.UpdateUserRole(ctx, admin.ID, "01HZZZZZZZZZZZZZZZZZZZZZZZ", domain.RoleStaff)
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = f.users.GetUserByID(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	f.seedUser(t, "A", "a@example.com", domain.RoleAdmin, domain.UserActive)
	f.seedUser(t, "B", "b@example.com", domain.RoleStaff, domain.UserActive)
	f.seedUser(t, "C", "c@example.com", domain.RoleStaff, domain.UserInactive)

	stats, err := f.users.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Active)
	require.Equal(t, 1, stats.Inactive)

	byRole := map[domain.Role]int{}
	for _, rc := range stats.ByRole {
		byRole[rc.Role] = rc.Count
	}
	require.Equal(t, map[domain.Role]int{domain.RoleAdmin: 1, domain.RoleStaff: 2}, byRole)
}

func TestSeedAdmin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	svc := &BootstrapService{Store: f.store, Now: f.clock.Now}

	u, created, err := svc.SeedAdmin(ctx, "Root", " Root@Example.com", "Adm1nPass")
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "root@example.com", u.Email)
	require.Equal(t, domain.RoleAdmin, u.Role)
	require.Equal(t, domain.UserActive, u.Status)

	again, created, err := svc.SeedAdmin(ctx, "Root", "root@example.com", "different")
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, u.ID, again.ID)

	sess, err := f.auth.Login(ctx, "root@example.com", "Adm1nPass")
	require.NoError(t, err)
	require.Equal(t, u.ID, sess.User.ID)

	_, _, err = svc.SeedAdmin(ctx, "Root", "", "x")
	require.Error(t, err)
}
