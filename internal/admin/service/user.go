package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

// UserService manages existing users. Callers are expected to be admins.
type UserService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *UserService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// ListUsers returns one page of users matching f, newest first.
func (s *UserService) ListUsers(ctx context.Context, f domain.UserFilter) (domain.Page[domain.User], error) {
	f.Page, f.Limit = domain.NormalizePaging(f.Page, f.Limit)

	users, total, err := s.Store.Users().ListUsers(ctx, f)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("list users: %w", err)
	}
	return domain.Page[domain.User]{Items: users, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUserRole changes the role of userID. actorID may not change their
// own role.
func (s *UserService) UpdateUserRole(ctx context.Context, actorID, userID string, role domain.Role) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if actorID == userID {
		log.Warn("rejected self role change", slog.String("user_id", userID))
		return domain.User{}, ErrSelfRoleChange
	}
	if !role.Valid() {
		return domain.User{}, invalidField("role", "Role must be ADMIN, MANAGER, or STAFF")
	}

	err := s.Store.Users().UpdateUserRole(ctx, userID, role, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("update user role: %w", err)
	}

	log.Info("user role updated", slog.String("target_user_id", userID), slog.String("role", role.String()))
	return s.GetUserByID(ctx, userID)
}

// UpdateUserStatus activates or deactivates userID. actorID may not
// deactivate themselves.
func (s *UserService) UpdateUserStatus(ctx context.Context, actorID, userID string, status domain.UserStatus) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if actorID == userID && status == domain.UserInactive {
		log.Warn("rejected self deactivation", slog.String("user_id", userID))
		return domain.User{}, ErrSelfDeactivate
	}
	if !status.Valid() {
		return domain.User{}, invalidField("status", "Status must be ACTIVE or INACTIVE")
	}

	err := s.Store.Users().UpdateUserStatus(ctx, userID, status, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("update user status: %w", err)
	}

	log.Info("user status updated", slog.String("target_user_id", userID), slog.String("status", status.String()))
	return s.GetUserByID(ctx, userID)
}

// Stats counts users overall, by status and by role.
func (s *UserService) Stats(ctx context.Context) (domain.UserStats, error) {
	var stats domain.UserStats
	users := s.Store.Users()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = users.CountUsers(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		stats.Active, err = users.CountUsers(gctx, domain.UserActive)
		return err
	})
	g.Go(func() (err error) {
		stats.Inactive, err = users.CountUsers(gctx, domain.UserInactive)
		return err
	})
	g.Go(func() (err error) {
		stats.ByRole, err = users.CountUsersByRole(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserStats{}, fmt.Errorf("user stats: %w", err)
	}
	return stats, nil
}
