package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

// BootstrapService seeds the first administrator so invites can be sent.
type BootstrapService struct {
	Store store.Store
	Now   func() time.Time
}

// SeedAdmin creates an active ADMIN with the given credentials unless a
// user already owns the email. created is false when nothing was written.
func (s *BootstrapService) SeedAdmin(ctx context.Context, name, email, password string) (u domain.User, created bool, err error) {
	log := slogx.FromContext(ctx)
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return domain.User{}, false, errors.New("seed admin: email and password are required")
	}

	// 1. Skip if the account already exists
	existing, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		log.Info("admin account already exists", slog.String("user_id", existing.ID))
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, fmt.Errorf("get user by email: %w", err)
	}

	// 2. Hash password
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("hash admin password: %w", err)
	}

	// 3. Create the admin
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}
	if strings.TrimSpace(name) == "" {
		name = "Admin"
	}
	u = domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = s.Store.Users().CreateUser(ctx, u)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with another seeder.
		existing, err := s.Store.Users().GetUserByEmail(ctx, email)
		return existing, false, err
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("create admin: %w", err)
	}

	log.Info("admin account created", slog.String("user_id", u.ID), slog.String("email", email))
	return u, true, nil
}
