package commands

import (
	"context"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/app"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// NoticeCommandHandler encapsulates logic for raising and listing contract
// notices via CLI.
type NoticeCommandHandler struct {
	warningService notices.EarlyWarningService
	eventService   notices.CompensationEventService
	logger         logger.Logger
}

// NewNoticeCommandHandler initializes and returns a NoticeCommandHandler
// instance wired to database-backed notice services. Notification fan-out
// handlers are registered so raised notices store notifications as the
// REST API does.
func NewNoticeCommandHandler() (*NoticeCommandHandler, error) {
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

	notificationRepo, err := persistence.NewGormNotificationRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification repository: %w", err)
	}

	bus := eventbus.NewBus(loggerInstance)
	eventbus.RegisterNotificationHandlers(bus, notificationRepo, loggerInstance)

	warningService, err := app.NewEarlyWarningService(warningRepo, projectRepo, bus, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create early warning service: %w", err)
	}

	eventService, err := app.NewCompensationEventService(eventRepo, projectRepo, bus, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create compensation event service: %w", err)
	}

	return &NoticeCommandHandler{
		warningService: warningService,
		eventService:   eventService,
		logger:         loggerInstance,
	}, nil
}

// RaiseEarlyWarningCmd raises an early warning against a project
func (commandHandler *NoticeCommandHandler) RaiseEarlyWarningCmd(cmd *cobra.Command, _ []string) {
	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}

	raisedBy, err := cmd.Flags().GetString("raised-by")
	if err != nil {
		commandHandler.logger.Error("invalid raised-by flag ", err)
		return
	}

	meetingRequired, err := cmd.Flags().GetBool("meeting-required")
	if err != nil {
		commandHandler.logger.Error("invalid meeting-required flag ", err)
		return
	}

	warning := &notices.EarlyWarning{
		ProjectID:       projectID,
		Description:     description,
		RaisedBy:        raisedBy,
		MeetingRequired: meetingRequired,
	}

	raised, err := commandHandler.warningService.Raise(context.Background(), warning)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("raised early warning ", raised.Reference, " on project ", raised.ProjectID)
}

// RaiseCompensationEventCmd raises a compensation event against a project
func (commandHandler *NoticeCommandHandler) RaiseCompensationEventCmd(cmd *cobra.Command, _ []string) {
	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	clauseRef, err := cmd.Flags().GetString("clause-ref")
	if err != nil {
		commandHandler.logger.Error("invalid clause-ref flag ", err)
		return
	}

	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}

	estimatedValue, err := cmd.Flags().GetFloat64("estimated-value")
	if err != nil {
		commandHandler.logger.Error("invalid estimated-value flag ", err)
		return
	}

	raisedBy, err := cmd.Flags().GetString("raised-by")
	if err != nil {
		commandHandler.logger.Error("invalid raised-by flag ", err)
		return
	}

	event := &notices.CompensationEvent{
		ProjectID:      projectID,
		ClauseRef:      clauseRef,
		Description:    description,
		EstimatedValue: estimatedValue,
		RaisedBy:       raisedBy,
	}

	raised, err := commandHandler.eventService.Raise(context.Background(), event)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("raised compensation event ", raised.Reference, " under clause ", raised.ClauseRef)
}

// ListNoticesCmd lists early warnings and compensation events for a project
func (commandHandler *NoticeCommandHandler) ListNoticesCmd(cmd *cobra.Command, _ []string) {
	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	query := notices.NewNoticeQuery()
	query.ProjectID = projectID

	warnings, err := commandHandler.warningService.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, warning := range warnings {
		fmt.Printf("%-8s  %-10s  %s\n", warning.Reference, warning.Status, warning.Description)
	}

	events, err := commandHandler.eventService.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, event := range events {
		fmt.Printf("%-8s  %-14s  %s (clause %s)\n", event.Reference, event.Status, event.Description, event.ClauseRef)
	}

	commandHandler.logger.Info("listed ", len(warnings), " early warnings and ", len(events), " compensation events")
}

// InitNoticeCommands registers notice sub-commands with the root command
func InitNoticeCommands(rootCmd *cobra.Command) error {
	handler, err := NewNoticeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize notice command handler: %w", err)
	}

	raiseEarlyWarningCmd := &cobra.Command{
		Use:   "raise-early-warning",
		Short: "Raise an early warning against a project",
		Run:   handler.RaiseEarlyWarningCmd,
	}
	raiseEarlyWarningCmd.Flags().String("project-id", "", "Project ID")
	raiseEarlyWarningCmd.Flags().String("description", "", "Matter being warned about")
	raiseEarlyWarningCmd.Flags().String("raised-by", "", "Person raising the warning")
	raiseEarlyWarningCmd.Flags().Bool("meeting-required", false, "Request a risk reduction meeting")
	rootCmd.AddCommand(raiseEarlyWarningCmd)

	raiseCompensationEventCmd := &cobra.Command{
		Use:   "raise-compensation-event",
		Short: "Raise a compensation event against a project",
		Run:   handler.RaiseCompensationEventCmd,
	}
	raiseCompensationEventCmd.Flags().String("project-id", "", "Project ID")
	raiseCompensationEventCmd.Flags().String("clause-ref", "", "Contract clause, e.g. 60.1(12)")
	raiseCompensationEventCmd.Flags().String("description", "", "Event description")
	raiseCompensationEventCmd.Flags().Float64("estimated-value", 0, "Estimated value")
	raiseCompensationEventCmd.Flags().String("raised-by", "", "Person raising the event")
	rootCmd.AddCommand(raiseCompensationEventCmd)

	listNoticesCmd := &cobra.Command{
		Use:   "list-notices",
		Short: "List early warnings and compensation events for a project",
		Run:   handler.ListNoticesCmd,
	}
	listNoticesCmd.Flags().String("project-id", "", "Project ID")
	rootCmd.AddCommand(listNoticesCmd)

	return nil
}
