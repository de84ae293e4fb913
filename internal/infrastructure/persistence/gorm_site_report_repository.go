package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSiteReportRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSiteReportRepository creates a new GORM-based SiteReportRepository implementation
func NewGormSiteReportRepository(db *gorm.DB, logger logger.Logger) (sitereports.SiteReportRepository, error) {
	return &gormSiteReportRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSiteReportRepository) Create(ctx context.Context, report *sitereports.DailySiteReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SiteReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create site report: %w", err)
	}

	r.logger.Info("Created site report with id ", report.ID)
	return nil
}

func (r *gormSiteReportRepository) List(ctx context.Context, query *sitereports.ReportQuery) ([]*sitereports.DailySiteReport, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SiteReportModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SiteReportModel{})

	if query.ProjectID != "" {
		dbQuery = dbQuery.Where("project_id = ?", query.ProjectID)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("report_date >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("report_date <= ?", query.To)
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
		return nil, fmt.Errorf("failed to fetch site reports: %w", err)
	}

	domainList := make([]*sitereports.DailySiteReport, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSiteReportRepository) GetByID(ctx context.Context, reportID string) (*sitereports.DailySiteReport, error) {
	var model models.SiteReportModel
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("site report with ID %s not found", reportID)
		}
		return nil, fmt.Errorf("failed to fetch site report: %w", err)
	}
	return model.ToDomain(), nil
}

// GetByProjectAndDate retrieves a report for a project on a calendar date.
// The date parameter uses the 2006-01-02 layout; a nil result with nil error
// means no report exists for that day.
func (r *gormSiteReportRepository) GetByProjectAndDate(ctx context.Context, projectID string, date string) (*sitereports.DailySiteReport, error) {
	dayStart, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid report date %q: %w", date, err)
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var model models.SiteReportModel
	err = r.db.WithContext(ctx).
		Where("project_id = ? AND report_date >= ? AND report_date < ?", projectID, dayStart, dayEnd).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch site report: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSiteReportRepository) UpdateByID(ctx context.Context, report *sitereports.DailySiteReport) error {
	if err := report.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SiteReportModel{}
	model.FromDomain(report)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update site report: %w", err)
	}

	r.logger.Info("Updated site report with id ", report.ID)
	return nil
}

func (r *gormSiteReportRepository) DeleteByID(ctx context.Context, reportID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", reportID).Delete(&models.SiteReportModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete site report: %w", err)
	}

	r.logger.Info("Deleted site report with id ", reportID)
	return nil
}
