package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/metrics"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/notify"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

const (
	// DefaultInviteTTL is how long an invite stays redeemable.
	DefaultInviteTTL = 48 * time.Hour

	// inviteTokenAttempts bounds retries on a token fingerprint collision.
	inviteTokenAttempts = 3
)

// AuthService handles login and the invite based onboarding flow.
type AuthService struct {
	Store      store.Store
	Codec      *jwtx.Codec
	Dispatcher notify.Dispatcher

	InviteTTL time.Duration
	PublicURL string // frontend base URL used in email links

	Now func() time.Time
}

// Session is the result of a successful login or registration.
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// CreatedInvite carries the raw invite token. It is the only time the token
// is available; the store keeps its fingerprint.
type CreatedInvite struct {
	Invite domain.Invite
	Token  string
	Link   string
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *AuthService) inviteTTL() time.Duration {
	if s.InviteTTL > 0 {
		return s.InviteTTL
	}
	return DefaultInviteTTL
}

func (s *AuthService) link(path string) string {
	return strings.TrimRight(s.PublicURL, "/") + path
}

// Login verifies email and password and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	// 1. Look up the user
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		metrics.LoginAttempts.WithLabelValues("unknown_email").Inc()
		log.Warn("login failed: unknown email", slog.String("email", email))
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}

	// 2. Deactivated accounts are rejected before the password check
	if !u.IsActive() {
		metrics.LoginAttempts.WithLabelValues("deactivated").Inc()
		log.Warn("login failed: account deactivated", slog.String("user_id", u.ID))
		return Session{}, ErrAccountDeactivated
	}

	// 3. Verify the password
	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			metrics.LoginAttempts.WithLabelValues("bad_password").Inc()
			log.Warn("login failed: wrong password", slog.String("user_id", u.ID))
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, fmt.Errorf("verify password: %w", err)
	}

	// 4. Issue the session token
	sess, err := s.issueSession(u)
	if err != nil {
		return Session{}, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	log.Info("user logged in", slog.String("user_id", u.ID))
	return sess, nil
}

func (s *AuthService) issueSession(u domain.User) (Session, error) {
	token, claims, err := s.Codec.Issue(u.ID, u.Role.String())
	if err != nil {
		return Session{}, fmt.Errorf("issue session token: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// CreateInvite records an invite for email and sends the invite email.
// invitedBy is the id of the admin creating it.
func (s *AuthService) CreateInvite(ctx context.Context, email string, role domain.Role, invitedBy string) (CreatedInvite, error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)
	now := s.now()

	if !role.Valid() {
		return CreatedInvite{}, invalidField("role", "Role must be ADMIN, MANAGER, or STAFF")
	}

	// 1. The email must not belong to a user
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Warn("invite rejected: email already registered", slog.String("email", email))
		return CreatedInvite{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return CreatedInvite{}, fmt.Errorf("get user by email: %w", err)
	}

	// 2. Nor have a pending invite
	existing, err := s.Store.Invites().ListUnacceptedInvites(ctx, email)
	if err != nil {
		return CreatedInvite{}, fmt.Errorf("list invites: %w", err)
	}
	for _, inv := range existing {
		if inv.IsPending(now) {
			log.Warn("invite rejected: pending invite exists", slog.String("email", email))
			return CreatedInvite{}, ErrInvitePending
		}
	}

	// 3. Generate a token and persist the invite, retrying on the rare
	// fingerprint collision
	var (
		token string
		inv   domain.Invite
	)
	for attempt := 1; ; attempt++ {
		token, err = cryptox.GenerateInviteToken()
		if err != nil {
			return CreatedInvite{}, err
		}

		inv = domain.Invite{
			ID:        idx.NewAt(now).String(),
			Email:     email,
			Role:      role,
			TokenHash: cryptox.FingerprintToken(token),
			InvitedBy: invitedBy,
			ExpiresAt: now.Add(s.inviteTTL()),
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = s.Store.Invites().CreateInvite(ctx, inv)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrAlreadyExists) || attempt >= inviteTokenAttempts {
			return CreatedInvite{}, fmt.Errorf("create invite: %w", err)
		}
		log.Warn("invite token collision, regenerating", slog.Int("attempt", attempt))
	}

	link := s.link("/register?token=" + url.QueryEscape(token))

	// 4. Email the invite
	if s.Dispatcher != nil {
		var inviterName string
		if inviter, err := s.Store.Users().GetUserByID(ctx, invitedBy); err == nil {
			inviterName = inviter.Name
		}
		s.Dispatcher.Dispatch(ctx, notify.InviteEmail(email, inviterName, role.String(), link, s.inviteTTL()))
	}

	metrics.InvitesCreated.Inc()
	log.Info("invite created",
		slog.String("invite_id", inv.ID),
		slog.String("email", email),
		slog.String("role", role.String()),
	)
	return CreatedInvite{Invite: inv, Token: token, Link: link}, nil
}

// VerifyInvite returns the invite for token if it can still be redeemed.
func (s *AuthService) VerifyInvite(ctx context.Context, token string) (domain.Invite, error) {
	inv, err := s.Store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invite{}, ErrInviteNotFound
	}
	if err != nil {
		return domain.Invite{}, fmt.Errorf("get invite: %w", err)
	}

	if inv.IsAccepted() {
		return domain.Invite{}, ErrInviteUsed
	}
	if inv.IsExpired(s.now()) {
		return domain.Invite{}, ErrInviteExpired
	}
	return inv, nil
}

// RegisterViaInvite creates the invited user and consumes the invite.
func (s *AuthService) RegisterViaInvite(ctx context.Context, token, name, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the invite
	inv, err := s.VerifyInvite(ctx, token)
	if err != nil {
		return Session{}, err
	}

	// 2. The email may have been registered since the invite was created
	if _, err := s.Store.Users().GetUserByEmail(ctx, inv.Email); err == nil {
		return Session{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, fmt.Errorf("get user by email: %w", err)
	}

	// 3. Hash the password
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	// 4. Create the user and consume the invite atomically
	now := s.now()
	invitedAt := inv.CreatedAt
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         strings.TrimSpace(name),
		Email:        inv.Email,
		PasswordHash: hash,
		Role:         inv.Role,
		Status:       domain.UserActive,
		InvitedAt:    &invitedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return tx.Invites().MarkInviteAccepted(ctx, inv.ID, now)
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return Session{}, ErrEmailTaken
	case errors.Is(err, store.ErrNotFound):
		// Another request redeemed the invite first.
		return Session{}, ErrInviteUsed
	case err != nil:
		return Session{}, fmt.Errorf("register user: %w", err)
	}

	metrics.Registrations.Inc()
	log.Info("user registered via invite",
		slog.String("user_id", u.ID),
		slog.String("invite_id", inv.ID),
	)

	// 5. Welcome email
	if s.Dispatcher != nil {
		s.Dispatcher.Dispatch(ctx, notify.WelcomeEmail(u.Email, u.Name, s.link("/login")))
	}

	// 6. Issue the session token
	return s.issueSession(u)
}

// GetCurrentUser returns the user behind an authenticated request.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// CheckSession confirms the subject of a verified token still exists and
// is active, and returns their current role. It backs the authentication
// middleware.
func (s *AuthService) CheckSession(ctx context.Context, userID string) (string, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUserGone
	}
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if !u.IsActive() {
		return "", ErrAccountDeactivated
	}
	return string(u.Role), nil
}
