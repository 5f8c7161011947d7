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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/timesheet-management/internal"
	"github.com/frahmantamala/timesheet-management/internal/approval"
	approvalpg "github.com/frahmantamala/timesheet-management/internal/approval/postgres"
	"github.com/frahmantamala/timesheet-management/internal/auth"
	"github.com/frahmantamala/timesheet-management/internal/catalog"
	"github.com/frahmantamala/timesheet-management/internal/core/events"
	"github.com/frahmantamala/timesheet-management/internal/employee"
	employeepg "github.com/frahmantamala/timesheet-management/internal/employee/postgres"
	"github.com/frahmantamala/timesheet-management/internal/project"
	projectpg "github.com/frahmantamala/timesheet-management/internal/project/postgres"
	"github.com/frahmantamala/timesheet-management/internal/report"
	reportpg "github.com/frahmantamala/timesheet-management/internal/report/postgres"
	"github.com/frahmantamala/timesheet-management/internal/timesheet"
	timesheetpg "github.com/frahmantamala/timesheet-management/internal/timesheet/postgres"
	"github.com/frahmantamala/timesheet-management/internal/transport"
	"github.com/frahmantamala/timesheet-management/internal/transport/rest"
	"github.com/frahmantamala/timesheet-management/pkg/logger"
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
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Bus    *events.Bus
	Router http.Handler
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

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
		deps.Logger.Info("received signal, shutting down", "signal", sig)
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
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewBus(lg)
	subscribeEventLoggers(bus, lg)

	base := transport.NewBaseHandler(lg)

	// repositories
	employeeRepo := employeepg.NewRepository(gormDB)
	timesheetRepo := timesheetpg.NewRepository(gormDB)
	projectRepo := projectpg.NewRepository(gormDB)
	approvalRepo := approvalpg.NewRepository(gormDB)
	readModel := reportpg.NewReadModel(db)

	// services
	mailer := employee.NewSMTPMailer(config.Mail)
	employeeSvc := employee.NewService(lg, employeeRepo, mailer, config.Security, config.Server.BaseURL)
	timesheetSvc := timesheet.NewService(lg, timesheetRepo, employeeSvc)
	reportSvc := report.NewService(lg, readModel, config.Report.DailyHours())
	projectSvc := project.NewService(lg, projectRepo, timesheetRepo, employeeSvc)
	approvalSvc := approval.NewService(lg, approvalRepo, timesheetSvc, bus)
	tokens := auth.NewTokenGenerator(config.Security)
	authSvc := auth.NewService(lg, employeeRepo, tokens)

	router := rest.NewRouter(lg, db.DB, rest.Handlers{
		Auth:      auth.NewHandler(base, authSvc),
		Employee:  employee.NewHandler(base, employeeSvc),
		Timesheet: timesheet.NewHandler(base, timesheetSvc),
		Report:    report.NewHandler(base, reportSvc),
		Project:   project.NewHandler(base, projectSvc),
		Approval:  approval.NewHandler(base, approvalSvc),
		Catalog:   catalog.NewHandler(base),
	})

	return &Dependencies{
		Config: config,
		DB:     db,
		Gorm:   gormDB,
		Bus:    bus,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB opens the pgx-backed sqlx handle used by the report read
// model and health checks.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open connection so both
// access paths share one pool.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}

// subscribeEventLoggers attaches the default audit-log subscribers.
func subscribeEventLoggers(bus *events.Bus, lg *slog.Logger) {
	for _, name := range []string{events.TimesheetApprovedName, events.TimesheetRejectedName} {
		bus.Subscribe(name, func(_ context.Context, e events.Event) {
			if reviewed, ok := e.(*events.TimesheetReviewedEvent); ok {
				lg.Info("timesheet reviewed",
					"event", e.EventName(),
					"timesheet_id", reviewed.TimesheetID,
					"employee_id", reviewed.EmployeeID,
					"reviewed_by", reviewed.ReviewedBy)
			}
		})
	}
}
