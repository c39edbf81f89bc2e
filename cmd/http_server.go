package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/easyhr/backend/internal"
	"github.com/easyhr/backend/internal/auth"
	authPostgres "github.com/easyhr/backend/internal/auth/postgres"
	"github.com/easyhr/backend/internal/companyvalue"
	companyvaluePostgres "github.com/easyhr/backend/internal/companyvalue/postgres"
	"github.com/easyhr/backend/internal/core/events"
	"github.com/easyhr/backend/internal/email"
	"github.com/easyhr/backend/internal/feedback"
	feedbackPostgres "github.com/easyhr/backend/internal/feedback/postgres"
	"github.com/easyhr/backend/internal/recognition"
	recognitionPostgres "github.com/easyhr/backend/internal/recognition/postgres"
	"github.com/easyhr/backend/internal/stats"
	statsPostgres "github.com/easyhr/backend/internal/stats/postgres"
	"github.com/easyhr/backend/internal/tenant"
	tenantPostgres "github.com/easyhr/backend/internal/tenant/postgres"
	"github.com/easyhr/backend/internal/transport"
	"github.com/easyhr/backend/internal/transport/rest"
	"github.com/easyhr/backend/internal/user"
	userPostgres "github.com/easyhr/backend/internal/user/postgres"
	"github.com/easyhr/backend/internal/worklog"
	worklogPostgres "github.com/easyhr/backend/internal/worklog/postgres"
	"github.com/easyhr/backend/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	log := logger.L()

	db, err := initDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	handlers, err := buildHandlers(cfg, gormDB, log)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:   cfg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		Logger:   log,
	}, nil
}

func buildHandlers(cfg *internal.Config, gormDB *gorm.DB, log *slog.Logger) (rest.Handlers, error) {
	base := transport.NewBaseHandler(log)
	bus := events.NewEventBus(log)

	tokens := auth.NewJWTTokenGenerator(cfg.Security.JWTSecret, auth.TokenTTLs{
		Access: cfg.Security.AccessTokenDuration,
		Invite: cfg.Security.InviteTokenDuration,
	})

	authRepo := authPostgres.NewRepository(gormDB)
	authService := auth.NewService(authRepo, tokens, log)
	authMiddleware := auth.NewMiddleware(authService)

	tenantRepo := tenantPostgres.NewTenantRepository(gormDB)
	tenantService := tenant.NewService(tenantRepo, log)
	tenantHandler := tenant.NewHandler(tenantService)

	mailer, err := buildMailer(cfg.Email, log)
	if err != nil {
		return rest.Handlers{}, err
	}
	user.NewInviteEmailHandler(mailer, log).Register(bus)

	userRepo := userPostgres.NewUserRepository(gormDB)
	userService := user.NewService(userRepo, tenantRepo, authService, bus,
		cfg.App.PublicHost, cfg.Security.BCryptCost, log)
	userHandler := user.NewHandler(base, userService)

	worklogRepo := worklogPostgres.NewWorklogRepository(gormDB)
	worklogHandler := worklog.NewHandler(base, worklog.NewService(worklogRepo, log))

	feedbackRepo := feedbackPostgres.NewFeedbackRepository(gormDB)
	feedbackHandler := feedback.NewHandler(base, feedback.NewService(feedbackRepo, log))

	recognitionRepo := recognitionPostgres.NewRecognitionRepository(gormDB)
	recognitionHandler := recognition.NewHandler(base, recognition.NewService(recognitionRepo, log))

	companyValueRepo := companyvaluePostgres.NewCompanyValueRepository(gormDB)
	companyValueHandler := companyvalue.NewHandler(base, companyvalue.NewService(companyValueRepo, log))

	statsRepo := statsPostgres.NewStatsRepository(gormDB)
	statsHandler := stats.NewHandler(base, stats.NewService(statsRepo, log))

	return rest.Handlers{
		Auth:         authMiddleware,
		Tenant:       tenantHandler,
		User:         userHandler,
		Worklog:      worklogHandler,
		Feedback:     feedbackHandler,
		Recognition:  recognitionHandler,
		CompanyValue: companyValueHandler,
		Stats:        statsHandler,
	}, nil
}

func buildMailer(cfg internal.EmailConfig, log *slog.Logger) (email.Mailer, error) {
	if !cfg.Enabled {
		return email.NoopMailer{Logger: log}, nil
	}
	return email.NewSESMailer(context.Background(), email.Config{
		Region:          cfg.Region,
		AccessKeyID:     cfg.AccessKeyID,
		SecretAccessKey: cfg.SecretAccessKey,
		FromAddress:     cfg.FromAddress,
	}, log)
}

// initDB opens the database through the pgx stdlib driver.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
