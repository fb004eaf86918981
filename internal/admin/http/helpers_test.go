package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/notify"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/nexusadmin/pkg/adminsdk"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/idx"
	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
)

const testPassword = "Passw0rd!"

var testPasswordHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword(testPassword)
	if err != nil {
		panic(err)
	}
	return h
})

type discardDispatcher struct{}

func (discardDispatcher) Dispatch(context.Context, notify.Message) {}

type testServer struct {
	store  store.Store
	router *Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	codec := jwtx.NewCodec("test-secret", time.Hour, "nexusadmin-test")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := NewRouter(codec, "test", st, logger)
	r.AuthService = &service.AuthService{
		Store:      st,
		Codec:      codec,
		Dispatcher: discardDispatcher{},
		PublicURL:  "http://localhost:3000",
	}
	r.UserService = &service.UserService{Store: st}
	r.ProjectService = &service.ProjectService{Store: st}
	r.ApplyRoutes()

	return &testServer{store: st, router: r}
}

func (s *testServer) seedUser(t *testing.T, email string, role domain.Role, status domain.UserStatus) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Test " + role.String(),
		Email:        email,
		PasswordHash: testPasswordHash(),
		Role:         role,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.store.Users().CreateUser(context.Background(), u))
	return u
}

// login signs in through the API and returns the session token.
func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/api/auth/login", "", adminsdk.LoginRequest{Email: email, Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code, env.Message)

	var data adminsdk.AuthData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, adminsdk.Envelope[json.RawMessage]) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env adminsdk.Envelope[json.RawMessage]
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env adminsdk.Envelope[json.RawMessage]) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func fieldNames(env adminsdk.Envelope[json.RawMessage]) []string {
	names := make([]string, 0, len(env.Errors))
	for _, fe := range env.Errors {
		names = append(names, fe.Field)
	}
	return names
}
