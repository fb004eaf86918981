package admin_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for the admin API end-to-end tests.
 * This includes container setup, logins and assertions.
 */

const (
	testImageName = "nexusadmin-test:latest"

	adminName     = "Root Admin"
	adminEmail    = "root@example.com"
	adminPassword = "Admin123!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete. Nothing runs with -short.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		fmt.Fprintln(os.Stdout, "skipping e2e tests in short mode")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building NexusAdmin Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up NexusAdmin Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/admin/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAdminContainer starts the API in a container with a seeded admin and
// returns the base URL.
func setupAdminContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"PORT":                "8080",
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
			"DATABASE_URL":        "/data/nexusadmin.db",
			"JWT_SECRET":          "e2e-secret",
			"FRONTEND_URL":        "http://app.example.com",
			"ADMIN_SEED_NAME":     adminName,
			"ADMIN_SEED_EMAIL":    adminEmail,
			"ADMIN_SEED_PASSWORD": adminPassword,
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// loginAdmin signs in as the seeded administrator.
func loginAdmin(t *testing.T, client *adminsdk.Client) *adminsdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), adminsdk.LoginRequest{Email: adminEmail, Password: adminPassword})
	require.NoError(t, err, "Admin login should succeed")
	require.NotEmpty(t, session.Token())
	require.Equal(t, adminsdk.RoleAdmin, session.User().Role)
	return session
}

// onboardUser invites email with role and registers it, returning the new session.
func onboardUser(t *testing.T, client *adminsdk.Client, admin *adminsdk.Session, name, email, role string) *adminsdk.Session {
	t.Helper()

	invite, err := admin.CreateInvite(t.Context(), adminsdk.InviteRequest{Email: email, Role: role})
	require.NoError(t, err, "Invite should be created")

	session, err := client.RegisterViaInvite(t.Context(), adminsdk.RegisterRequest{
		Token:    invite.InviteToken,
		Name:     name,
		Password: "Welcome123",
	})
	require.NoError(t, err, "Registration should succeed")
	return session
}

// assertStatus checks that err is an API error with the given status code.
func assertStatus(t *testing.T, err error, status int) *adminsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *adminsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got: %v", err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status: %s", apiErr.Message)
	return apiErr
}
