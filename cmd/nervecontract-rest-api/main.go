// cmd/nervecontract-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/wesrioswart/nervecontract/internal/api/rest/v1"
	"github.com/wesrioswart/nervecontract/internal/app"
	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/reports"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence"
	infrareports "github.com/wesrioswart/nervecontract/internal/infrastructure/reports"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.renderer.Close(); err != nil {
			log.Error("failed to close document renderer: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services *appServices
	bus      *eventbus.Bus
	renderer reports.DocumentRenderer
}

type appServices struct {
	project           projects.ProjectService
	earlyWarning      notices.EarlyWarningService
	compensationEvent notices.CompensationEventService
	supplier          procurement.SupplierService
	requisition       procurement.RequisitionService
	hire              procurement.HireService
	siteReport        sitereports.SiteReportService
	emailIntake       mail.EmailIntakeService
	notification      notifications.NotificationService
	report            reports.ReportService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	warningRepo, err := persistence.NewGormEarlyWarningRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create early warning repository: %w", err)
	}

	eventRepo, err := persistence.NewGormCompensationEventRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create compensation event repository: %w", err)
	}

	supplierRepo, err := persistence.NewGormSupplierRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier repository: %w", err)
	}

	requisitionRepo, err := persistence.NewGormRequisitionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create requisition repository: %w", err)
	}

	hireRepo, err := persistence.NewGormHireRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hire repository: %w", err)
	}

	siteReportRepo, err := persistence.NewGormSiteReportRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create site report repository: %w", err)
	}

	emailRepo, err := persistence.NewGormEmailRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	notificationRepo, err := persistence.NewGormNotificationRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	// Initialize the event bus and its notification fan-out handlers
	bus := eventbus.NewBus(log)
	eventbus.RegisterNotificationHandlers(bus, notificationRepo, log)

	// Initialize the headless-browser renderer
	renderer, err := infrareports.NewRodRenderer(cfg.Browser, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document renderer: %w", err)
	}

	// Initialize services
	projectService, err := app.NewProjectService(projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	earlyWarningService, err := app.NewEarlyWarningService(warningRepo, projectRepo, bus, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create early warning service: %w", err)
	}

	compensationEventService, err := app.NewCompensationEventService(eventRepo, projectRepo, bus, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create compensation event service: %w", err)
	}

	supplierService, err := app.NewSupplierService(supplierRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create supplier service: %w", err)
	}

	requisitionService, err := app.NewRequisitionService(requisitionRepo, supplierRepo, projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create requisition service: %w", err)
	}

	hireService, err := app.NewHireService(hireRepo, supplierRepo, projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create hire service: %w", err)
	}

	siteReportService, err := app.NewSiteReportService(siteReportRepo, projectRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create site report service: %w", err)
	}

	emailIntakeService, err := app.NewEmailIntakeService(emailRepo, projectRepo, bus, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create email intake service: %w", err)
	}

	notificationService, err := app.NewNotificationService(notificationRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %w", err)
	}

	reportService, err := app.NewReportService(renderer, projectRepo, warningRepo, eventRepo, requisitionRepo, siteReportRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	return &appDependencies{
		services: &appServices{
			project:           projectService,
			earlyWarning:      earlyWarningService,
			compensationEvent: compensationEventService,
			supplier:          supplierService,
			requisition:       requisitionService,
			hire:              hireService,
			siteReport:        siteReportService,
			emailIntake:       emailIntakeService,
			notification:      notificationService,
			report:            reportService,
		},
		bus:      bus,
		renderer: renderer,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Websocket fan-out for notification events
	hub := v1.NewNotificationHub(deps.bus, log)
	defer hub.Close()

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.project,
		deps.services.earlyWarning,
		deps.services.compensationEvent,
		deps.services.supplier,
		deps.services.requisition,
		deps.services.hire,
		deps.services.siteReport,
		deps.services.emailIntake,
		deps.services.notification,
		deps.services.report,
		hub,
		log,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
