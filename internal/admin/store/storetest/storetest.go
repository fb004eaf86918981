// Package storetest holds the behaviour every store.Store driver must share.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
)

// Factory returns an empty, migrated store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

// Run exercises a store driver against the shared expectations.
func Run(t *testing.T, newStore Factory) {
	t.Run("migrations", func(t *testing.T) { testMigrations(t, newStore(t)) })
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("list users", func(t *testing.T) { testListUsersAndCounts(t, newStore(t)) })
	t.Run("invites", func(t *testing.T) { testInvites(t, newStore(t)) })
	t.Run("projects", func(t *testing.T) { testProjects(t, newStore(t)) })
	t.Run("transactions", func(t *testing.T) { testWithTx(t, newStore(t)) })
}

func newUser(email string, role domain.Role, at time.Time) domain.User {
	return domain.User{
		ID:           idx.NewAt(at).String(),
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
		Status:       domain.UserActive,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

func testMigrations(t *testing.T, s store.Store) {
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	u := newUser("alice@example.com", domain.RoleAdmin, now)
	invited := now.Add(-time.Hour)
	u.InvitedAt = &invited
	require.NoError(t, s.Users().CreateUser(ctx, u))

	t.Run("get by id and email", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)
		require.Equal(t, domain.RoleAdmin, got.Role)
		require.WithinDuration(t, now, got.CreatedAt, time.Millisecond)
		require.NotNil(t, got.InvitedAt)
		require.WithinDuration(t, invited, *got.InvitedAt, time.Millisecond)

		got, err = s.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := newUser("alice@example.com", domain.RoleStaff, now)
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update role and status", func(t *testing.T) {
		later := now.Add(time.Minute)
		require.NoError(t, s.Users().UpdateUserRole(ctx, u.ID, domain.RoleManager, later))
		require.NoError(t, s.Users().UpdateUserStatus(ctx, u.ID, domain.UserInactive, later))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleManager, got.Role)
		require.Equal(t, domain.UserInactive, got.Status)
		require.WithinDuration(t, later, got.UpdatedAt, time.Millisecond)

		require.ErrorIs(t, s.Users().UpdateUserRole(ctx, idx.New().String(), domain.RoleStaff, later), store.ErrNotFound)
		require.ErrorIs(t, s.Users().UpdateUserStatus(ctx, idx.New().String(), domain.UserActive, later), store.ErrNotFound)
	})
}

func testListUsersAndCounts(t *testing.T, s store.Store) {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	for i := range 12 {
		role := domain.RoleStaff
		if i%4 == 0 {
			role = domain.RoleManager
		}
		u := newUser(fmt.Sprintf("user%02d@example.com", i), role, base.Add(time.Duration(i)*time.Minute))
		if i%3 == 0 {
			u.Status = domain.UserInactive
		}
		require.NoError(t, s.Users().CreateUser(ctx, u))
	}
	special := newUser("percent_100%@example.com", domain.RoleAdmin, base.Add(time.Hour))
	special.Name = "Zed Percent"
	require.NoError(t, s.Users().CreateUser(ctx, special))

	t.Run("newest first with paging", func(t *testing.T) {
		users, total, err := s.Users().ListUsers(ctx, domain.UserFilter{Page: 1, Limit: 5})
		require.NoError(t, err)
		require.Equal(t, 13, total)
		require.Len(t, users, 5)
		require.Equal(t, special.ID, users[0].ID)
		require.Equal(t, "user11@example.com", users[1].Email)

		users, _, err = s.Users().ListUsers(ctx, domain.UserFilter{Page: 3, Limit: 5})
		require.NoError(t, err)
		require.Len(t, users, 3)
	})

	t.Run("filters", func(t *testing.T) {
		_, total, err := s.Users().ListUsers(ctx, domain.UserFilter{Role: domain.RoleManager})
		require.NoError(t, err)
		require.Equal(t, 3, total)

		_, total, err = s.Users().ListUsers(ctx, domain.UserFilter{Status: domain.UserInactive})
		require.NoError(t, err)
		require.Equal(t, 4, total)

		users, total, err := s.Users().ListUsers(ctx, domain.UserFilter{Search: "USER1"})
		require.NoError(t, err)
		require.Equal(t, 2, total) // user10, user11
		require.Len(t, users, 2)

		_, total, err = s.Users().ListUsers(ctx, domain.UserFilter{Search: "zed"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("search escapes wildcards", func(t *testing.T) {
		users, total, err := s.Users().ListUsers(ctx, domain.UserFilter{Search: "_100%"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, special.ID, users[0].ID)

		_, total, err = s.Users().ListUsers(ctx, domain.UserFilter{Search: "%"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("counts", func(t *testing.T) {
		n, err := s.Users().CountUsers(ctx, "")
		require.NoError(t, err)
		require.Equal(t, 13, n)

		n, err = s.Users().CountUsers(ctx, domain.UserActive)
		require.NoError(t, err)
		require.Equal(t, 9, n)

		byRole, err := s.Users().CountUsersByRole(ctx)
		require.NoError(t, err)
		require.ElementsMatch(t, []domain.RoleCount{
			{Role: domain.RoleAdmin, Count: 1},
			{Role: domain.RoleManager, Count: 3},
			{Role: domain.RoleStaff, Count: 9},
		}, byRole)
	})
}

func testInvites(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	admin := newUser("admin@example.com", domain.RoleAdmin, now)
	require.NoError(t, s.Users().CreateUser(ctx, admin))

	inv := domain.Invite{
		ID:        idx.New().String(),
		Email:     "new@example.com",
		Role:      domain.RoleStaff,
		TokenHash: "hash-1",
		InvitedBy: admin.ID,
		ExpiresAt: now.Add(48 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Invites().CreateInvite(ctx, inv))

	t.Run("duplicate token hash", func(t *testing.T) {
		dup := inv
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Invites().CreateInvite(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("lookup", func(t *testing.T) {
		got, err := s.Invites().GetInviteByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.Nil(t, got.AcceptedAt)
		require.WithinDuration(t, inv.ExpiresAt, got.ExpiresAt, time.Millisecond)

		_, err = s.Invites().GetInviteByTokenHash(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("accept once", func(t *testing.T) {
		open, err := s.Invites().ListUnacceptedInvites(ctx, "new@example.com")
		require.NoError(t, err)
		require.Len(t, open, 1)

		require.NoError(t, s.Invites().MarkInviteAccepted(ctx, inv.ID, now))
		require.ErrorIs(t, s.Invites().MarkInviteAccepted(ctx, inv.ID, now), store.ErrNotFound)

		got, err := s.Invites().GetInviteByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
		require.NotNil(t, got.AcceptedAt)

		open, err = s.Invites().ListUnacceptedInvites(ctx, "new@example.com")
		require.NoError(t, err)
		require.Empty(t, open)
	})

	t.Run("delete expired", func(t *testing.T) {
		stale := inv
		stale.ID = idx.New().String()
		stale.TokenHash = "hash-stale"
		stale.ExpiresAt = now.Add(-72 * time.Hour)
		require.NoError(t, s.Invites().CreateInvite(ctx, stale))

		recent := inv
		recent.ID = idx.New().String()
		recent.TokenHash = "hash-recent"
		recent.ExpiresAt = now.Add(-time.Hour)
		require.NoError(t, s.Invites().CreateInvite(ctx, recent))

		n, err := s.Invites().DeleteExpiredInvites(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		_, err = s.Invites().GetInviteByTokenHash(ctx, "hash-stale")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = s.Invites().GetInviteByTokenHash(ctx, "hash-recent")
		require.NoError(t, err)

		// Accepted invites survive even when long expired
		n, err = s.Invites().DeleteExpiredInvites(ctx, now.Add(365*24*time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
		_, err = s.Invites().GetInviteByTokenHash(ctx, "hash-1")
		require.NoError(t, err)
	})

	t.Run("inviter must exist", func(t *testing.T) {
		orphan := inv
		orphan.ID = idx.New().String()
		orphan.TokenHash = "hash-2"
		orphan.InvitedBy = idx.New().String()
		require.Error(t, s.Invites().CreateInvite(ctx, orphan))
	})
}

func testProjects(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC().Add(-time.Hour)

	owner := newUser("owner@example.com", domain.RoleManager, now)
	require.NoError(t, s.Users().CreateUser(ctx, owner))

	var ids []string
	for i := range 6 {
		p := domain.Project{
			ID:          idx.New().String(),
			Name:        fmt.Sprintf("Project %d", i),
			Description: fmt.Sprintf("desc %d", i),
			Status:      domain.ProjectActive,
			CreatedBy:   owner.ID,
			CreatedAt:   now.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   now.Add(time.Duration(i) * time.Minute),
		}
		if i >= 4 {
			p.Status = domain.ProjectArchived
		}
		require.NoError(t, s.Projects().CreateProject(ctx, p))
		ids = append(ids, p.ID)
	}

	got, err := s.Projects().GetProjectByID(ctx, ids[0])
	require.NoError(t, err)
	require.NotNil(t, got.Creator)
	require.Equal(t, owner.Email, got.Creator.Email)

	got.IsDeleted = true
	got.Status = domain.ProjectDeleted
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.Projects().UpdateProject(ctx, got))

	got, err = s.Projects().GetProjectByID(ctx, ids[0])
	require.NoError(t, err)
	require.True(t, got.IsDeleted)

	missing := got
	missing.ID = idx.New().String()
	require.ErrorIs(t, s.Projects().UpdateProject(ctx, missing), store.ErrNotFound)

	t.Run("list hides deleted by default", func(t *testing.T) {
		projects, total, err := s.Projects().ListProjects(ctx, domain.ProjectFilter{})
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Equal(t, ids[5], projects[0].ID)

		_, total, err = s.Projects().ListProjects(ctx, domain.ProjectFilter{IncludeDeleted: true})
		require.NoError(t, err)
		require.Equal(t, 6, total)

		_, total, err = s.Projects().ListProjects(ctx, domain.ProjectFilter{Status: domain.ProjectArchived})
		require.NoError(t, err)
		require.Equal(t, 2, total)

		projects, total, err = s.Projects().ListProjects(ctx, domain.ProjectFilter{Search: "DESC 3"})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, ids[3], projects[0].ID)
	})

	t.Run("counts", func(t *testing.T) {
		n, err := s.Projects().CountProjects(ctx, "", false)
		require.NoError(t, err)
		require.Equal(t, 5, n)

		n, err = s.Projects().CountProjects(ctx, domain.ProjectActive, false)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		n, err = s.Projects().CountProjects(ctx, "", true)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}

func testWithTx(t *testing.T, s store.Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("rollback on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Users().CreateUser(ctx, newUser("rollback@example.com", domain.RoleStaff, now)))
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Users().GetUserByEmail(ctx, "rollback@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("commit on success", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, newUser("commit@example.com", domain.RoleStaff, now))
		})
		require.NoError(t, err)

		_, err = s.Users().GetUserByEmail(ctx, "commit@example.com")
		require.NoError(t, err)
	})

	t.Run("nested transactions are rejected", func(t *testing.T) {
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.WithTx(ctx, func(store.Tx) error { return nil })
		})
		require.Error(t, err)
	})
}
