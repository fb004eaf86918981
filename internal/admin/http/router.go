package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/domain"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/metrics"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"

	_ "github.com/aussiebroadwan/nexusadmin/api/admin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	UserService    *service.UserService
	ProjectService *service.ProjectService
	QueuePing      PingFunc // Optional: only set when notifications go through Redis
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerProjects()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", NotFoundHandler)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NexusAdmin API
//	@version		0.1.0
//	@description	Role-based administration backend: invite-only onboarding, user management and projects.
//	@description
//	@description				Sessions are HS256 JWTs returned by login and registration.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/nexusadmin
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(metrics.Instrument(r.Mux), r.middlewares...).ServeHTTP(w, req)
}

// session requires any signed-in, active user.
func (r *Router) session(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.Authenticate(r.verifier, r.AuthService))
}

// admin additionally requires the ADMIN role.
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.Authenticate(r.verifier, r.AuthService),
		httpx.RequireRoles(domain.RoleAdmin.String()),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("GET /api/auth/verify-invite/{token}", h.HandleVerifyInvite)
	r.Mux.HandleFunc("POST /api/auth/register-via-invite", h.HandleRegister)

	r.Mux.Handle("POST /api/auth/invite", r.admin(h.HandleInvite))
	r.Mux.Handle("GET /api/auth/me", r.session(h.HandleMe))
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	// Every user management route is admin only
	r.Mux.Handle("GET /api/users", r.admin(h.HandleListUsers))
	r.Mux.Handle("GET /api/users/stats", r.admin(h.HandleUserStats))
	r.Mux.Handle("GET /api/users/{id}", r.admin(h.HandleGetUser))
	r.Mux.Handle("PATCH /api/users/{id}/role", r.admin(h.HandleUpdateRole))
	r.Mux.Handle("PATCH /api/users/{id}/status", r.admin(h.HandleUpdateStatus))
}

func (r *Router) registerProjects() {
	h := &ProjectHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /api/projects", r.session(h.HandleListProjects))
	r.Mux.Handle("GET /api/projects/stats", r.session(h.HandleProjectStats))
	r.Mux.Handle("POST /api/projects", r.session(h.HandleCreateProject))
	r.Mux.Handle("GET /api/projects/{id}", r.session(h.HandleGetProject))

	r.Mux.Handle("PATCH /api/projects/{id}", r.admin(h.HandleUpdateProject))
	r.Mux.Handle("DELETE /api/projects/{id}", r.admin(h.HandleDeleteProject))
}

func (r *Router) registerSystem() {
	r.Mux.HandleFunc("GET /api", APIInfoHandler(r.buildVersion))
	r.Mux.HandleFunc("GET /api/health", APIHealthHandler())

	r.Mux.HandleFunc("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.HandleFunc("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.QueuePing))
	r.Mux.Handle("GET /metrics", metrics.Handler())
}
