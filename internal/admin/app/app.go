package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpapi "github.com/aussiebroadwan/nexusadmin/internal/admin/http"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/notify"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/drivers/postgres"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/store/drivers/sqlite"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/httpx"
	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the admin API with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db    store.Store
	codec *jwtx.Codec

	// Notifications. Either rdb and worker are set (Redis queue) or async is.
	rdb        *redis.Client
	worker     *notify.Worker
	async      *notify.AsyncDispatcher
	dispatcher notify.Dispatcher

	// Services
	authService      *service.AuthService
	userService      *service.UserService
	projectService   *service.ProjectService
	bootstrapService *service.BootstrapService
	housekeeping     *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "nexusadmin",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	for _, r := range cfg.Rejected {
		app.logger.Warn("invalid duration setting, using default",
			"key", r.Key,
			"value", r.Value,
			"default", r.Default.String(),
		)
	}

	// Development responses carry the text of internal errors.
	httpx.SetVerboseErrors(cfg.IsDev())

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initCodec(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initNotifications()
	app.initServices()

	if err := app.seedAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeeping.Start()
	if app.worker != nil {
		app.worker.Start()
	}

	app.logger.Info("nexusadmin starting", "port", app.cfg.Port, "version", BuildVersion, "env", app.cfg.Env)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down nexusadmin...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeeping.Stop()

	// Drain email delivery before the connections go away
	if app.worker != nil {
		app.worker.Stop()
	}
	if app.async != nil {
		app.async.Wait()
	}
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			app.logger.Error("error closing redis", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("nexusadmin stopped")
	return nil
}

// OpenStore opens the store named by databaseURL and applies migrations.
// postgres:// and postgresql:// URLs select the Postgres driver; anything
// else is a SQLite file path.
func OpenStore(databaseURL string) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		db, err = postgres.NewStore(databaseURL)
	default:
		dsn := databaseURL
		if !strings.HasPrefix(dsn, "file:") {
			dsn = "file:" + dsn
		}
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	db, err := OpenStore(app.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initCodec builds the session token codec. Without a configured secret a
// random one is generated, so sessions do not survive a restart.
func (app *Application) initCodec() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate jwt secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET is not set, using a random secret; sessions will not survive a restart")
	}

	app.codec = jwtx.NewCodec(secret, app.cfg.JWTExpiresIn, app.cfg.JWTIssuer)
	return nil
}

// initNotifications picks the email transport and how sends are scheduled.
func (app *Application) initNotifications() {
	smtp := &notify.SMTPNotifier{
		Host:      app.cfg.SMTPHost,
		Port:      app.cfg.SMTPPort,
		Username:  app.cfg.SMTPUser,
		Password:  app.cfg.SMTPPass,
		FromName:  app.cfg.SMTPFromName,
		FromEmail: app.cfg.SMTPFromEmail,
	}

	var sender notify.Notifier = notify.LogNotifier{}
	if smtp.Configured() {
		sender = smtp
	} else {
		app.logger.Warn("smtp is not configured, emails will only be logged")
	}

	if app.cfg.RedisAddr != "" {
		app.rdb = redis.NewClient(&redis.Options{
			Addr:     app.cfg.RedisAddr,
			Password: app.cfg.RedisPassword,
		})
		app.dispatcher = notify.NewRedisDispatcher(app.rdb)
		app.worker = notify.NewWorker(app.rdb, sender, app.logger)
		app.logger.Info("emails are queued in redis", "addr", app.cfg.RedisAddr)
		return
	}

	app.async = notify.NewAsyncDispatcher(sender)
	app.dispatcher = app.async
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:      app.db,
		Codec:      app.codec,
		Dispatcher: app.dispatcher,
		InviteTTL:  app.cfg.InviteTTL,
		PublicURL:  app.cfg.FrontendURL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}

	app.housekeeping = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.InviteRetention,
	)
}

// seedAdmin creates the configured administrator when both an email and a
// password are provided.
func (app *Application) seedAdmin(ctx context.Context) error {
	if app.cfg.AdminSeedEmail == "" || app.cfg.AdminSeedPassword == "" {
		return nil
	}

	ctx = slogx.WithContext(ctx, app.logger)
	if _, _, err := app.bootstrapService.SeedAdmin(ctx, app.cfg.AdminSeedName, app.cfg.AdminSeedEmail, app.cfg.AdminSeedPassword); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ProjectService = app.projectService
	if app.rdb != nil {
		router.QueuePing = func(ctx context.Context) error { return app.rdb.Ping(ctx).Err() }
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
