package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/wesrioswart/nervecontract/internal/app"
	"github.com/wesrioswart/nervecontract/internal/domain/reports"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence"
	infrareports "github.com/wesrioswart/nervecontract/internal/infrastructure/reports"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ReportCommandHandler encapsulates logic for rendering project documents via CLI.
type ReportCommandHandler struct {
	reportService reports.ReportService
	renderer      reports.DocumentRenderer
	logger        logger.Logger
}

// NewReportCommandHandler initializes and returns a ReportCommandHandler
// instance with a configured headless-browser renderer and database-backed
// report service.
func NewReportCommandHandler() (*ReportCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(persistence.AllModels()...); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	projectRepo, err := persistence.NewGormProjectRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	warningRepo, err := persistence.NewGormEarlyWarningRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create early warning repository: %w", err)
	}

	eventRepo, err := persistence.NewGormCompensationEventRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create compensation event repository: %w", err)
	}

	requisitionRepo, err := persistence.NewGormRequisitionRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create requisition repository: %w", err)
	}

	siteReportRepo, err := persistence.NewGormSiteReportRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create site report repository: %w", err)
	}

	renderer, err := infrareports.NewRodRenderer(cfg.Browser, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create document renderer: %w", err)
	}

	reportService, err := app.NewReportService(renderer, projectRepo, warningRepo, eventRepo, requisitionRepo, siteReportRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}

	return &ReportCommandHandler{
		reportService: reportService,
		renderer:      renderer,
		logger:        loggerInstance,
	}, nil
}

// GenerateSummaryCmd renders the project summary PDF and writes it to a file
func (commandHandler *ReportCommandHandler) GenerateSummaryCmd(cmd *cobra.Command, _ []string) {
	defer commandHandler.closeRenderer()

	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	pdf, err := commandHandler.reportService.GenerateProjectSummary(context.Background(), projectID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, pdf, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("project summary saved to ", outputFilePath)
}

// CaptureDashboardCmd captures a dashboard screenshot and writes it to a file
func (commandHandler *ReportCommandHandler) CaptureDashboardCmd(cmd *cobra.Command, _ []string) {
	defer commandHandler.closeRenderer()

	url, err := cmd.Flags().GetString("url")
	if err != nil {
		commandHandler.logger.Error("invalid url flag ", err)
		return
	}

	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	png, err := commandHandler.reportService.CaptureDashboard(context.Background(), url)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, png, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("dashboard capture saved to ", outputFilePath)
}

func (commandHandler *ReportCommandHandler) closeRenderer() {
	if err := commandHandler.renderer.Close(); err != nil {
		commandHandler.logger.Error("failed to close document renderer: ", err)
	}
}

// InitReportCommands registers report sub-commands with the root command
func InitReportCommands(rootCmd *cobra.Command) error {
	handler, err := NewReportCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize report command handler: %w", err)
	}

	generateSummaryCmd := &cobra.Command{
		Use:   "generate-summary",
		Short: "Render a project summary PDF",
		Run:   handler.GenerateSummaryCmd,
	}
	generateSummaryCmd.Flags().String("project-id", "", "Project ID")
	generateSummaryCmd.Flags().String("output-file", "project-summary.pdf", "Output PDF path")
	rootCmd.AddCommand(generateSummaryCmd)

	captureDashboardCmd := &cobra.Command{
		Use:   "capture-dashboard",
		Short: "Capture a dashboard screenshot as PNG",
		Run:   handler.CaptureDashboardCmd,
	}
	captureDashboardCmd.Flags().String("url", "", "Dashboard URL")
	captureDashboardCmd.Flags().String("output-file", "dashboard.png", "Output PNG path")
	rootCmd.AddCommand(captureDashboardCmd)

	return nil
}
