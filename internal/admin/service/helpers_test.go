package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/notify"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
)

const testPassword = "Passw0rd!"

// bcrypt at production cost is slow, so every seeded user shares one hash.
var testPasswordHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword(testPassword)
	if err != nil {
		panic(err)
	}
	return h
})

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type dispatcher struct {
	mu   sync.Mutex
	sent []notify.Message
}

func (d *dispatcher) Dispatch(_ context.Context, msg notify.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
}

func (d *dispatcher) messages() []notify.Message {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.Message(nil), d.sent...)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type fixture struct {
	store      store.Store
	clock      *clock
	dispatcher *dispatcher
	codec      *jwtx.Codec
	auth       *AuthService
	users      *UserService
	projects   *ProjectService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:      newTestStore(t),
		clock:      newClock(),
		dispatcher: &dispatcher{},
	}
	f.codec = jwtx.NewCodec("test-secret", time.Hour, "nexusadmin-test")
	f.codec.Now = f.clock.Now

	f.auth = &AuthService{
		Store:      f.store,
		Codec:      f.codec,
		Dispatcher: f.dispatcher,
		PublicURL:  "http://localhost:3000/",
		Now:        f.clock.Now,
	}
	f.users = &UserService{Store: f.store, Now: f.clock.Now}
	f.projects = &ProjectService{Store: f.store, Now: f.clock.Now}
	return f
}

// seedUser inserts a user with testPassword and advances the clock so
// creation order is deterministic.
func (f *fixture) seedUser(t *testing.T, name, email string, role domain.Role, status domain.UserStatus) domain.User {
	t.Helper()

	now := f.clock.Now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         name,
		Email:        email,
		PasswordHash: testPasswordHash(),
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.store.Users().CreateUser(context.Background(), u))
	f.clock.Advance(time.Second)
	return u
}
