package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a transaction-scoped Store
// can be handed to code that would otherwise use the root one.
type Store interface {
	Users() Users
	Invites() Invites
	Projects() Projects

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalized (lowercase) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns one page of users, newest first, plus the total
	// number of users matching the filter.
	ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)

	UpdateUserRole(ctx context.Context, id string, role domain.Role, now time.Time) error
	UpdateUserStatus(ctx context.Context, id string, status domain.UserStatus, now time.Time) error

	// CountUsers counts users with the given status, or all users when
	// status is empty.
	CountUsers(ctx context.Context, status domain.UserStatus) (int, error)

	// CountUsersByRole returns one entry per role that has at least one user.
	CountUsersByRole(ctx context.Context) ([]domain.RoleCount, error)
}

type Invites interface {
	// CreateInvite writes a new invite. A duplicate token hash yields
	// ErrAlreadyExists.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)

	// ListUnacceptedInvites returns every invite for email that has not been
	// accepted, expired or not.
	ListUnacceptedInvites(ctx context.Context, email string) ([]domain.Invite, error)

	// MarkInviteAccepted sets accepted_at on an unaccepted invite. It
	// returns ErrNotFound when no unaccepted invite has that id.
	MarkInviteAccepted(ctx context.Context, id string, at time.Time) error

	// DeleteExpiredInvites removes unaccepted invites that expired before
	// cutoff and reports how many were deleted. Accepted invites are kept.
	DeleteExpiredInvites(ctx context.Context, cutoff time.Time) (int64, error)
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error

	// GetProjectByID returns the project with its creator populated,
	// including soft-deleted ones.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// ListProjects returns one page of projects, newest first, plus the
	// total number of projects matching the filter.
	ListProjects(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, int, error)

	// UpdateProject writes name, description, status and is_deleted.
	UpdateProject(ctx context.Context, p domain.Project) error

	// CountProjects counts projects by deletion flag and, when status is
	// non-empty, by status.
	CountProjects(ctx context.Context, status domain.ProjectStatus, deleted bool) (int, error)
}
