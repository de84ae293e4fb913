package projects

import (
	"context"
)

// ProjectService defines methods for managing projects.
type ProjectService interface {
	// Create registers a new project.
	// It returns the created Project and any error encountered during creation.
	Create(ctx context.Context, project *Project) (*Project, error)

	// List retrieves projects considering a query filter when set.
	List(ctx context.Context, query *ProjectQuery) ([]*Project, error)

	// GetByID retrieves a project by its unique ID.
	GetByID(ctx context.Context, projectID string) (*Project, error)

	// UpdateByID updates an existing project.
	UpdateByID(ctx context.Context, project *Project) error

	// DeleteByID deletes a project by ID.
	DeleteByID(ctx context.Context, projectID string) error
}

// ProjectRepository defines the interface for Project-related persistence operations
type ProjectRepository interface {
	// Create adds a new Project to the database
	Create(ctx context.Context, project *Project) error
	// List lists Projects in the database with optional filter
	List(ctx context.Context, query *ProjectQuery) ([]*Project, error)
	// GetByID retrieves a Project from the database by ID
	GetByID(ctx context.Context, projectID string) (*Project, error)
	// UpdateByID updates a Project in the database by ID
	UpdateByID(ctx context.Context, project *Project) error
	// DeleteByID deletes a Project in the database by ID
	DeleteByID(ctx context.Context, projectID string) error
}
