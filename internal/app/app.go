package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/aea-eng/aea-backend/config"
	"github.com/aea-eng/aea-backend/internal/database"
	"github.com/aea-eng/aea-backend/internal/domain"
	httpHandler "github.com/aea-eng/aea-backend/internal/http"
	"github.com/aea-eng/aea-backend/internal/http/middleware"
	"github.com/aea-eng/aea-backend/internal/repository"
	"github.com/aea-eng/aea-backend/internal/service"
	"github.com/aea-eng/aea-backend/pkg/logger"
	"github.com/aea-eng/aea-backend/pkg/mailer"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mailer mailer.Mailer

	// Repositories
	adminRepo    domain.AdminRepository
	contactRepo  domain.ContactSubmissionRepository
	pageRepo     domain.PageContentRepository
	projectRepo  domain.ProjectRepository
	staffRepo    domain.StaffMemberRepository
	settingsRepo domain.SettingsRepository

	// Services
	authService      *service.AuthService
	contactService   *service.ContactService
	dashboardService *service.DashboardService

	mux    *http.ServeMux
	server *http.Server
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use an existing database handle
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockMailer configures the app to use a mock mailer
func WithMockMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Initialize runs all initialization steps in order.
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitMailer(); err != nil {
		return err
	}
	a.InitRepositories()
	a.InitServices()
	a.InitHandlers()
	return nil
}

// InitDB initializes the database connection and schema
func (a *App) InitDB() error {
	// An injected handle (tests) skips bootstrap.
	if a.db != nil {
		return database.InitializeDatabase(a.db)
	}

	a.logger.WithField("host", a.config.Database.Host).
		WithField("dbname", a.config.Database.DBName).
		WithField("sslmode", a.config.Database.SSLMode).
		Info("Connecting to database")

	if err := database.EnsureDatabaseExists(&a.config.Database); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return err
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	a.logger.Info("Database initialized")
	return nil
}

// InitMailer initializes the mailer
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	// Development or missing SMTP host falls back to console output.
	if a.config.IsDevelopment() || a.config.SMTP.Host == "" {
		a.mailer = mailer.NewConsoleMailer()
		a.logger.Info("Using console mailer")
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
	})
	a.logger.WithField("host", a.config.SMTP.Host).Info("Using SMTP mailer")
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() {
	a.adminRepo = repository.NewAdminRepository(a.db)
	a.contactRepo = repository.NewContactSubmissionRepository(a.db)
	a.pageRepo = repository.NewPageContentRepository(a.db)
	a.projectRepo = repository.NewProjectRepository(a.db)
	a.staffRepo = repository.NewStaffMemberRepository(a.db)
	a.settingsRepo = repository.NewSettingsRepository(a.db)
}

// InitServices initializes all services
func (a *App) InitServices() {
	a.authService = service.NewAuthService(service.AuthServiceConfig{
		Repository:  a.adminRepo,
		Logger:      a.logger,
		JWTSecret:   a.config.Auth.JWTSecret,
		TokenExpiry: time.Duration(a.config.Auth.TokenExpiryHours) * time.Hour,
	})

	a.contactService = service.NewContactService(service.ContactServiceConfig{
		Repository:   a.contactRepo,
		Mailer:       a.mailer,
		Logger:       a.logger,
		ContactEmail: a.config.ContactEmail,
	})

	a.dashboardService = service.NewDashboardService(service.DashboardServiceConfig{
		PageRepository:    a.pageRepo,
		StaffRepository:   a.staffRepo,
		ProjectRepository: a.projectRepo,
		ContactRepository: a.contactRepo,
		Logger:            a.logger,
	})
}

// InitHandlers initializes the HTTP handlers and registers all routes
func (a *App) InitHandlers() {
	authMiddleware := middleware.NewAuthMiddleware(a.authService)

	httpHandler.NewRootHandler(a.config.Version).RegisterRoutes(a.mux)
	httpHandler.NewAuthHandler(a.authService, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewPublicHandler(httpHandler.PublicHandlerConfig{
		SettingsRepository: a.settingsRepo,
		PageRepository:     a.pageRepo,
		StaffRepository:    a.staffRepo,
		ProjectRepository:  a.projectRepo,
		ContactService:     a.contactService,
		Logger:             a.logger,
	}).RegisterRoutes(a.mux)
	httpHandler.NewPageHandler(a.pageRepo, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewProjectHandler(a.projectRepo, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewStaffHandler(a.staffRepo, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewSettingsHandler(a.settingsRepo, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewContactHandler(a.contactService, authMiddleware, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewDashboardHandler(a.dashboardService, authMiddleware, a.logger).RegisterRoutes(a.mux)
}

// GetConfig returns the app configuration
func (a *App) GetConfig() *config.Config { return a.config }

// GetLogger returns the app logger
func (a *App) GetLogger() logger.Logger { return a.logger }

// GetMux returns the HTTP mux, useful for tests that drive the full router
func (a *App) GetMux() *http.ServeMux { return a.mux }

// GetDB returns the database handle
func (a *App) GetDB() *sql.DB { return a.db }

// GetAdminRepository returns the admin repository
func (a *App) GetAdminRepository() domain.AdminRepository { return a.adminRepo }

// GetSettingsRepository returns the settings repository
func (a *App) GetSettingsRepository() domain.SettingsRepository { return a.settingsRepo }

// GetPageRepository returns the page content repository
func (a *App) GetPageRepository() domain.PageContentRepository { return a.pageRepo }

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes resources
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}
