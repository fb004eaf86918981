package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/drivers/postgres"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/storetest"
)

const (
	pgUser     = "nexus"
	pgPassword = "nexus-test"
)

// setupPostgres starts a throwaway PostgreSQL container and returns an admin
// DSN for it.
func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=%s password=%s sslmode=disable", host, port.Port(), pgUser, pgPassword)
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	baseDSN := setupPostgres(t)
	admin, err := postgres.NewStore(baseDSN + " dbname=postgres")
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	n := 0
	storetest.Run(t, func(t *testing.T) store.Store {
		n++
		dbName := fmt.Sprintf("nexus_%d", n)
		require.NoError(t, admin.Exec(context.Background(), "CREATE DATABASE "+dbName))

		s, err := postgres.NewStore(baseDSN + " dbname=" + dbName)
		require.NoError(t, err)
		require.NoError(t, s.ApplyMigrations())
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
