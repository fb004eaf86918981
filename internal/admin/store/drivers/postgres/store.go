package postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
)

// Store is a PostgreSQL implementation of store.Store backed by gorm.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// NewStore connects to the database described by dsn. Slow queries and
// errors are written through the default slog logger.
func NewStore(dsn string) (*Store, error) {
	gormLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Store{db: db}, nil
}

// ApplyMigrations creates or updates the schema from the gorm models.
func (s *Store) ApplyMigrations() error {
	return s.db.AutoMigrate(&userModel{}, &inviteModel{}, &projectModel{})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &txStore{db: tx}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db} }
func (s *Store) Invites() store.Invites   { return &invitesRepo{db: s.db} }
func (s *Store) Projects() store.Projects { return &projectsRepo{db: s.db} }

type txStore struct {
	db *gorm.DB
}

func (t *txStore) Commit() error   { return t.db.Commit().Error }
func (t *txStore) Rollback() error { return t.db.Rollback().Error }

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
func (t *txStore) ApplyMigrations() error         { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, gorm.ErrInvalidTransaction }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return gorm.ErrInvalidTransaction
}

func (t *txStore) Users() store.Users       { return &usersRepo{db: t.db} }
func (t *txStore) Invites() store.Invites   { return &invitesRepo{db: t.db} }
func (t *txStore) Projects() store.Projects { return &projectsRepo{db: t.db} }

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return store.ErrAlreadyExists
	default:
		return err
	}
}

// expectOne maps an update that touched no rows to store.ErrNotFound.
func expectOne(res *gorm.DB) error {
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// likePattern builds an ILIKE pattern matching s anywhere, escaping
// wildcards with a backslash.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// Exec runs a raw statement outside any transaction.
func (s *Store) Exec(ctx context.Context, sql string, args ...any) error {
	return s.db.WithContext(ctx).Exec(sql, args...).Error
}
