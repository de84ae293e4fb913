package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEmailRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEmailRepository creates a new GORM-based EmailRepository implementation
func NewGormEmailRepository(db *gorm.DB, logger logger.Logger) (mail.EmailRepository, error) {
	return &gormEmailRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEmailRepository) Create(ctx context.Context, email *mail.InboundEmail) error {
	if err := email.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.InboundEmailModel{}
	model.FromDomain(email)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create inbound email: %w", err)
	}

	r.logger.Info("Created inbound email with id ", email.ID)
	return nil
}

func (r *gormEmailRepository) List(ctx context.Context, query *mail.EmailQuery) ([]*mail.InboundEmail, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.InboundEmailModel
	dbQuery := r.db.WithContext(ctx).Model(&models.InboundEmailModel{})

	if query.ProjectID != "" {
		dbQuery = dbQuery.Where("project_id = ?", query.ProjectID)
	}
	if query.Classification != "" {
		dbQuery = dbQuery.Where("classification = ?", query.Classification)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch inbound emails: %w", err)
	}

	domainList := make([]*mail.InboundEmail, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormEmailRepository) GetByID(ctx context.Context, emailID string) (*mail.InboundEmail, error) {
	var model models.InboundEmailModel
	if err := r.db.WithContext(ctx).Where("id = ?", emailID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inbound email with ID %s not found", emailID)
		}
		return nil, fmt.Errorf("failed to fetch inbound email: %w", err)
	}
	return model.ToDomain(), nil
}
