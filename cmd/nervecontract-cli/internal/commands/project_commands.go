package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/app"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ProjectCommandHandler encapsulates logic for managing projects via CLI.
type ProjectCommandHandler struct {
	projectService projects.ProjectService
	logger         logger.Logger
}

// NewProjectCommandHandler initializes and returns a ProjectCommandHandler
// instance with a configured logger and database-backed project service.
func NewProjectCommandHandler() (*ProjectCommandHandler, error) {
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

	projectService, err := app.NewProjectService(projectRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	return &ProjectCommandHandler{
		projectService: projectService,
		logger:         loggerInstance,
	}, nil
}

// CreateProjectCmd registers a new project under contract management
func (commandHandler *ProjectCommandHandler) CreateProjectCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}

	contractReference, err := cmd.Flags().GetString("contract-reference")
	if err != nil {
		commandHandler.logger.Error("invalid contract-reference flag ", err)
		return
	}

	contractType, err := cmd.Flags().GetString("contract-type")
	if err != nil {
		commandHandler.logger.Error("invalid contract-type flag ", err)
		return
	}

	client, err := cmd.Flags().GetString("client")
	if err != nil {
		commandHandler.logger.Error("invalid client flag ", err)
		return
	}

	startDateFlag, err := cmd.Flags().GetString("start-date")
	if err != nil {
		commandHandler.logger.Error("invalid start-date flag ", err)
		return
	}

	startDate, err := time.Parse("2006-01-02", startDateFlag)
	if err != nil {
		commandHandler.logger.Error("start-date must use the 2006-01-02 layout ", err)
		return
	}

	project := &projects.Project{
		Name:              name,
		ContractReference: contractReference,
		ContractType:      contractType,
		Client:            client,
		StartDate:         startDate,
	}

	created, err := commandHandler.projectService.Create(context.Background(), project)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("created project ", created.ID, " (", created.ContractReference, ")")
}

// ListProjectsCmd lists projects, optionally filtered by status
func (commandHandler *ProjectCommandHandler) ListProjectsCmd(cmd *cobra.Command, _ []string) {
	status, err := cmd.Flags().GetString("status")
	if err != nil {
		commandHandler.logger.Error("invalid status flag ", err)
		return
	}

	query := projects.NewProjectQuery()
	query.Status = status

	list, err := commandHandler.projectService.List(context.Background(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, project := range list {
		fmt.Printf("%s  %-20s  %-10s  %s\n", project.ID, project.ContractReference, project.Status, project.Name)
	}
	commandHandler.logger.Info("listed ", len(list), " projects")
}

// InitProjectCommands registers project sub-commands with the root command
func InitProjectCommands(rootCmd *cobra.Command) error {
	handler, err := NewProjectCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to initialize project command handler: %w", err)
	}

	createProjectCmd := &cobra.Command{
		Use:   "create-project",
		Short: "Register a new project",
		Run:   handler.CreateProjectCmd,
	}
	createProjectCmd.Flags().String("name", "", "Project name")
	createProjectCmd.Flags().String("contract-reference", "", "Contract reference")
	createProjectCmd.Flags().String("contract-type", "", "Contract type, e.g. NEC4 ECC Option C")
	createProjectCmd.Flags().String("client", "", "Client name")
	createProjectCmd.Flags().String("start-date", "", "Contract start date (2006-01-02)")
	rootCmd.AddCommand(createProjectCmd)

	listProjectsCmd := &cobra.Command{
		Use:   "list-projects",
		Short: "List projects under management",
		Run:   handler.ListProjectsCmd,
	}
	listProjectsCmd.Flags().String("status", "", "Filter by project status (active, on_hold, completed)")
	rootCmd.AddCommand(listProjectsCmd)

	return nil
}
