package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	// Validate domain entity (business rules)
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	r.logger.Info("Created project with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProjectModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProjectModel{})

	// Apply filters
	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if !query.CreatedAt.IsZero() {
		dbQuery = dbQuery.Where("created_at >= ?", query.CreatedAt)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	domainList := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project with ID %s not found", projectID)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) UpdateByID(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	r.logger.Info("Updated project with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) DeleteByID(ctx context.Context, projectID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", projectID).Delete(&models.ProjectModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	r.logger.Info("Deleted project with id ", projectID)
	return nil
}
