package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

// applyNoticeQuery applies the shared notice filters, sorting and pagination
func applyNoticeQuery(dbQuery *gorm.DB, query *notices.NoticeQuery) *gorm.DB {
	if query.ProjectID != "" {
		dbQuery = dbQuery.Where("project_id = ?", query.ProjectID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if !query.RaisedAt.IsZero() {
		dbQuery = dbQuery.Where("raised_at >= ?", query.RaisedAt)
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

	return dbQuery
}

type gormEarlyWarningRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEarlyWarningRepository creates a new GORM-based EarlyWarningRepository implementation
func NewGormEarlyWarningRepository(db *gorm.DB, logger logger.Logger) (notices.EarlyWarningRepository, error) {
	return &gormEarlyWarningRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEarlyWarningRepository) Create(ctx context.Context, warning *notices.EarlyWarning) error {
	if err := warning.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EarlyWarningModel{}
	model.FromDomain(warning)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create early warning: %w", err)
	}

	r.logger.Info("Created early warning with id ", warning.ID)
	return nil
}

func (r *gormEarlyWarningRepository) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.EarlyWarning, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EarlyWarningModel
	dbQuery := applyNoticeQuery(r.db.WithContext(ctx).Model(&models.EarlyWarningModel{}), query)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch early warnings: %w", err)
	}

	domainList := make([]*notices.EarlyWarning, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormEarlyWarningRepository) GetByID(ctx context.Context, warningID string) (*notices.EarlyWarning, error) {
	var model models.EarlyWarningModel
	if err := r.db.WithContext(ctx).Where("id = ?", warningID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("early warning with ID %s not found", warningID)
		}
		return nil, fmt.Errorf("failed to fetch early warning: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEarlyWarningRepository) UpdateByID(ctx context.Context, warning *notices.EarlyWarning) error {
	if err := warning.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EarlyWarningModel{}
	model.FromDomain(warning)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update early warning: %w", err)
	}

	r.logger.Info("Updated early warning with id ", warning.ID)
	return nil
}

func (r *gormEarlyWarningRepository) DeleteByID(ctx context.Context, warningID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", warningID).Delete(&models.EarlyWarningModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete early warning: %w", err)
	}

	r.logger.Info("Deleted early warning with id ", warningID)
	return nil
}

func (r *gormEarlyWarningRepository) NextSequence(ctx context.Context, projectID string) (int, error) {
	sequence, err := nextReferenceSequence(r.db.WithContext(ctx).Model(&models.EarlyWarningModel{}), projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine next early warning sequence: %w", err)
	}
	return sequence, nil
}

type gormCompensationEventRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCompensationEventRepository creates a new GORM-based CompensationEventRepository implementation
func NewGormCompensationEventRepository(db *gorm.DB, logger logger.Logger) (notices.CompensationEventRepository, error) {
	return &gormCompensationEventRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCompensationEventRepository) Create(ctx context.Context, event *notices.CompensationEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompensationEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create compensation event: %w", err)
	}

	r.logger.Info("Created compensation event with id ", event.ID)
	return nil
}

func (r *gormCompensationEventRepository) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.CompensationEvent, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CompensationEventModel
	dbQuery := applyNoticeQuery(r.db.WithContext(ctx).Model(&models.CompensationEventModel{}), query)

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch compensation events: %w", err)
	}

	domainList := make([]*notices.CompensationEvent, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCompensationEventRepository) GetByID(ctx context.Context, eventID string) (*notices.CompensationEvent, error) {
	var model models.CompensationEventModel
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("compensation event with ID %s not found", eventID)
		}
		return nil, fmt.Errorf("failed to fetch compensation event: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCompensationEventRepository) UpdateByID(ctx context.Context, event *notices.CompensationEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompensationEventModel{}
	model.FromDomain(event)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update compensation event: %w", err)
	}

	r.logger.Info("Updated compensation event with id ", event.ID)
	return nil
}

func (r *gormCompensationEventRepository) DeleteByID(ctx context.Context, eventID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", eventID).Delete(&models.CompensationEventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete compensation event: %w", err)
	}

	r.logger.Info("Deleted compensation event with id ", eventID)
	return nil
}

func (r *gormCompensationEventRepository) NextSequence(ctx context.Context, projectID string) (int, error) {
	sequence, err := nextReferenceSequence(r.db.WithContext(ctx).Model(&models.CompensationEventModel{}), projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine next compensation event sequence: %w", err)
	}
	return sequence, nil
}
