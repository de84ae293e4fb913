package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/google/uuid"
)

// projectService implements the ProjectService interface for managing projects
type projectService struct {
	projectRepo projects.ProjectRepository
	logger      logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo projects.ProjectRepository, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

// Create registers a new project. New projects start as active unless a status
// is given explicitly.
func (s *projectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = projects.StatusActive
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now()
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("Created project ", project.ContractReference)
	return project, nil
}

// List retrieves projects considering a query filter when set
func (s *projectService) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	if query == nil {
		query = projects.NewProjectQuery()
	}

	list, err := s.projectRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return list, nil
}

// GetByID retrieves a project by its unique ID
func (s *projectService) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// UpdateByID updates an existing project
func (s *projectService) UpdateByID(ctx context.Context, project *projects.Project) error {
	if _, err := s.projectRepo.GetByID(ctx, project.ID); err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.projectRepo.UpdateByID(ctx, project); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteByID deletes a project by ID
func (s *projectService) DeleteByID(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteByID(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
