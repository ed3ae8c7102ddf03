package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/lms/internal/lms/http"
	"github.com/aussiebroadwan/lms/internal/lms/objectstore"
	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/internal/lms/store"
	"github.com/aussiebroadwan/lms/internal/lms/store/drivers/sqlite"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application owns every long-lived dependency of the LMS service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	signer *jwtx.HS256

	authService   *service.AuthService
	userService   *service.UserService
	courseService *service.CourseService
	reviewService *service.ReviewService
	uploadService *service.UploadService

	server *http.Server
	router *httpapi.Router
}

// New refuses to build an Application without a signing secret.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "lms",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewHS256([]byte(cfg.JWTKey), jwtx.WithIssuer(cfg.Issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	objects, err := objectstore.New(context.Background(), objectstore.Config{
		Endpoint:        cfg.S3Endpoint,
		Region:          cfg.S3Region,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		PublicBaseURL:   cfg.S3PublicBaseURL,
		UsePathStyle:    cfg.S3Endpoint != "",
	})
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize object store: %w", err)
	}

	app.initServices(objects)
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("lms starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down lms...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("lms stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices(objects service.ObjectStore) {
	app.authService = &service.AuthService{Store: app.db, Signer: app.signer}
	app.userService = &service.UserService{Store: app.db}
	app.courseService = &service.CourseService{Store: app.db}
	app.reviewService = &service.ReviewService{Store: app.db}
	app.uploadService = &service.UploadService{
		Objects:     objects,
		ImageBucket: app.cfg.S3ImageBucket,
		PDFBucket:   app.cfg.S3PDFBucket,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	var resolve httpx.ClaimsResolver
	if app.cfg.LiveStateCheck {
		resolve = app.authService.ResolveClaims
		app.logger.Info("live account check enabled for authenticated requests")
	}

	router := httpapi.NewRouter(app.signer, app.signer, resolve, BuildVersion, app.db, app.logger)
	router.AuthService = app.authService
	router.UserService = app.userService
	router.CourseService = app.courseService
	router.ReviewService = app.reviewService
	router.UploadService = app.uploadService
	router.MaxUploadBytes = app.cfg.UploadMaxBytes
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
