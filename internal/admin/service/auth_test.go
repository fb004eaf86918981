package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/notify"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	active := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	f.seedUser(t, "Ivan Inactive", "ivan@example.com", domain.RoleStaff, domain.UserInactive)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		sess, err := f.auth.Login(ctx, "  ALICE@example.com ", testPassword)
		require.NoError(t, err)
		require.Equal(t, active.ID, sess.User.ID)
		require.NotEmpty(t, sess.Token)

		claims, err := f.codec.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, active.ID, claims.UserID())
		require.Equal(t, "ADMIN", claims.Role)
		require.Equal(t, f.clock.Now().Add(time.Hour), sess.ExpiresAt)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		_, errUnknown := f.auth.Login(ctx, "nobody@example.com", testPassword)
		_, errWrong := f.auth.Login(ctx, "alice@example.com", "wrong-password")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "ivan@example.com", testPassword)
		require.ErrorIs(t, err, ErrAccountDeactivated)

		var serr *Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, http.StatusUnauthorized, serr.StatusCode())
	})
}

func TestCreateInvite(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)

	created, err := f.auth.CreateInvite(ctx, "New.Hire@Example.com", domain.RoleStaff, admin.ID)
	require.NoError(t, err)

	t.Run("returns a raw token and stores its fingerprint", func(t *testing.T) {
		require.Len(t, created.Token, 64)
		require.Equal(t, "new.hire@example.com", created.Invite.Email)
		require.Equal(t, domain.RoleStaff, created.Invite.Role)
		require.Equal(t, cryptox.FingerprintToken(created.Token), created.Invite.TokenHash)
		require.Equal(t, f.clock.Now().Add(DefaultInviteTTL), created.Invite.ExpiresAt)
		require.Equal(t, "http://localhost:3000/register?token="+created.Token, created.Link)

		stored, err := f.store.Invites().GetInviteByTokenHash(ctx, created.Invite.TokenHash)
		require.NoError(t, err)
		require.Equal(t, created.Invite.ID, stored.ID)
	})

	t.Run("dispatches the invite email", func(t *testing.T) {
		sent := f.dispatcher.messages()
		require.Len(t, sent, 1)
		require.Equal(t, notify.KindInvite, sent[0].Kind)
		require.Equal(t, "new.hire@example.com", sent[0].To)
		require.Contains(t, sent[0].Text, created.Link)
		require.Contains(t, sent[0].Text, "Alice Admin")
	})

	t.Run("pending invite conflicts", func(t *testing.T) {
		_, err := f.auth.CreateInvite(ctx, "new.hire@example.com", domain.RoleManager, admin.ID)
		require.ErrorIs(t, err, ErrInvitePending)
	})

	t.Run("existing user conflicts", func(t *testing.T) {
		_, err := f.auth.CreateInvite(ctx, "ALICE@example.com", domain.RoleStaff, admin.ID)
		require.ErrorIs(t, err, ErrEmailTaken)

		var serr *Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, http.StatusConflict, serr.StatusCode())
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := f.auth.CreateInvite(ctx, "x@example.com", domain.Role("OWNER"), admin.ID)
		var serr *Error
		require.ErrorAs(t, err, &serr)
		require.Equal(t, KindBadRequest, serr.Kind)
	})
}

func TestCreateInviteAfterExpiry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)

	first, err := f.auth.CreateInvite(ctx, "late@example.com", domain.RoleStaff, admin.ID)
	require.NoError(t, err)

	f.clock.Advance(DefaultInviteTTL)

	second, err := f.auth.CreateInvite(ctx, "late@example.com", domain.RoleStaff, admin.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)
}

func TestVerifyInvite(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	created, err := f.auth.CreateInvite(ctx, "bob@example.com", domain.RoleManager, admin.ID)
	require.NoError(t, err)

	t.Run("pending invite is valid", func(t *testing.T) {
		inv, err := f.auth.VerifyInvite(ctx, created.Token)
		require.NoError(t, err)
		require.Equal(t, "bob@example.com", inv.Email)
		require.Equal(t, domain.RoleManager, inv.Role)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := f.auth.VerifyInvite(ctx, strings.Repeat("0", 64))
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("expired at exactly the expiry instant", func(t *testing.T) {
		f2 := newFixture(t)
		admin2 := f2.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
		c, err := f2.auth.CreateInvite(ctx, "carol@example.com", domain.RoleStaff, admin2.ID)
		require.NoError(t, err)

		f2.clock.Advance(DefaultInviteTTL - time.Second)
		_, err = f2.auth.VerifyInvite(ctx, c.Token)
		require.NoError(t, err)

		f2.clock.Advance(time.Second)
		_, err = f2.auth.VerifyInvite(ctx, c.Token)
		require.ErrorIs(t, err, ErrInviteExpired)
	})

	t.Run("used is reported before expired", func(t *testing.T) {
		f2 := newFixture(t)
		admin2 := f2.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
		c, err := f2.auth.CreateInvite(ctx, "dave@example.com", domain.RoleStaff, admin2.ID)
		require.NoError(t, err)

		_, err = f2.auth.RegisterViaInvite(ctx, c.Token, "Dave", "Secret123")
		require.NoError(t, err)

		f2.clock.Advance(2 * DefaultInviteTTL)
		_, err = f2.auth.VerifyInvite(ctx, c.Token)
		require.ErrorIs(t, err, ErrInviteUsed)
	})
}

func TestRegisterViaInvite(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	created, err := f.auth.CreateInvite(ctx, "erin@example.com", domain.RoleManager, admin.ID)
	require.NoError(t, err)
	f.clock.Advance(time.Minute)

	sess, err := f.auth.RegisterViaInvite(ctx, created.Token, "  Erin Example ", "Secret123")
	require.NoError(t, err)

	t.Run("creates an active user with the invite's email and role", func(t *testing.T) {
		u := sess.User
		require.Equal(t, "Erin Example", u.Name)
		require.Equal(t, "erin@example.com", u.Email)
		require.Equal(t, domain.RoleManager, u.Role)
		require.Equal(t, domain.UserActive, u.Status)
		require.NotNil(t, u.InvitedAt)
		require.True(t, created.Invite.CreatedAt.Equal(*u.InvitedAt))
		require.NoError(t, cryptox.VerifyPassword("Secret123", u.PasswordHash))

		stored, err := f.store.Users().GetUserByEmail(ctx, "erin@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, stored.ID)
	})

	t.Run("marks the invite accepted", func(t *testing.T) {
		inv, err := f.store.Invites().GetInviteByTokenHash(ctx, created.Invite.TokenHash)
		require.NoError(t, err)
		require.NotNil(t, inv.AcceptedAt)
		require.True(t, f.clock.Now().Equal(*inv.AcceptedAt))
	})

	t.Run("issues a usable session", func(t *testing.T) {
		claims, err := f.codec.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, claims.UserID())
		require.Equal(t, "MANAGER", claims.Role)

		loggedIn, err := f.auth.Login(ctx, "erin@example.com", "Secret123")
		require.NoError(t, err)
		require.Equal(t, sess.User.ID, loggedIn.User.ID)
	})

	t.Run("sends a welcome email", func(t *testing.T) {
		sent := f.dispatcher.messages()
		require.Len(t, sent, 2)
		require.Equal(t, notify.KindWelcome, sent[1].Kind)
		require.Contains(t, sent[1].Text, "http://localhost:3000/login")
	})

	t.Run("token cannot be reused", func(t *testing.T) {
		_, err := f.auth.RegisterViaInvite(ctx, created.Token, "Erin Again", "Secret123")
		require.ErrorIs(t, err, ErrInviteUsed)
	})
}

func TestRegisterViaInviteExpired(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	created, err := f.auth.CreateInvite(ctx, "gina@example.com", domain.RoleStaff, admin.ID)
	require.NoError(t, err)

	// Never verified before the deadline passes
	f.clock.Advance(DefaultInviteTTL + time.Second)

	_, err = f.auth.RegisterViaInvite(ctx, created.Token, "Gina", "Secret123")
	require.ErrorIs(t, err, ErrInviteExpired)

	_, err = f.store.Users().GetUserByEmail(ctx, "gina@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	inv, err := f.store.Invites().GetInviteByTokenHash(ctx, created.Invite.TokenHash)
	require.NoError(t, err)
	require.Nil(t, inv.AcceptedAt)
}

func TestRegisterViaInviteEmailTaken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	admin := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	created, err := f.auth.CreateInvite(ctx, "frank@example.com", domain.RoleStaff, admin.ID)
	require.NoError(t, err)

	// The address was registered by other means after the invite was sent.
	f.seedUser(t, "Frank", "frank@example.com", domain.RoleStaff, domain.UserActive)

	_, err = f.auth.RegisterViaInvite(ctx, created.Token, "Frank Two", "Secret123")
	require.ErrorIs(t, err, ErrEmailTaken)

	inv, err := f.store.Invites().GetInviteByTokenHash(ctx, created.Invite.TokenHash)
	require.NoError(t, err)
	require.Nil(t, inv.AcceptedAt)
}

func TestCurrentUserAndSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	active := f.seedUser(t, "Alice Admin", "alice@example.com", domain.RoleAdmin, domain.UserActive)
	inactive := f.seedUser(t, "Ivan Inactive", "ivan@example.com", domain.RoleStaff, domain.UserInactive)

	u, err := f.auth.GetCurrentUser(ctx, active.ID)
	require.NoError(t, err)
	require.Equal(t, active.Email, u.Email)

	_, err = f.auth.GetCurrentUser(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, ErrUserNotFound)

	role, err := f.auth.CheckSession(ctx, active.ID)
	require.NoError(t, err)
	require.Equal(t, "ADMIN", role)

	_, err = f.auth.CheckSession(ctx, inactive.ID)
	require.ErrorIs(t, err, ErrAccountDeactivated)

	_, err = f.auth.CheckSession(ctx, "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, ErrUserGone)
}
