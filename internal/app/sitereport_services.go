package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/google/uuid"
)

// siteReportService implements the SiteReportService interface for managing
// daily site reports
type siteReportService struct {
	reportRepo  sitereports.SiteReportRepository
	projectRepo projects.ProjectRepository
	logger      logger.Logger
}

// NewSiteReportService creates a new instance of SiteReportService
func NewSiteReportService(
	reportRepo sitereports.SiteReportRepository,
	projectRepo projects.ProjectRepository,
	logger logger.Logger,
) (sitereports.SiteReportService, error) {
	return &siteReportService{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

// Create registers a new daily site report. At most one report may exist per
// project per calendar date; a second submission for the same day is rejected.
func (s *siteReportService) Create(ctx context.Context, report *sitereports.DailySiteReport) (*sitereports.DailySiteReport, error) {
	if _, err := s.projectRepo.GetByID(ctx, report.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	day := report.ReportDate.Format("2006-01-02")
	existing, err := s.reportRepo.GetByProjectAndDate(ctx, report.ProjectID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing report: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a site report already exists for project %s on %s", report.ProjectID, day)
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create site report: %w", err)
	}

	s.logger.Info("Created site report for project ", report.ProjectID, " on ", day)
	return report, nil
}

// List retrieves site reports considering a query filter when set
func (s *siteReportService) List(ctx context.Context, query *sitereports.ReportQuery) ([]*sitereports.DailySiteReport, error) {
	if query == nil {
		query = sitereports.NewReportQuery()
	}

	list, err := s.reportRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list site reports: %w", err)
	}
	return list, nil
}

// GetByID retrieves a site report by its unique ID
func (s *siteReportService) GetByID(ctx context.Context, reportID string) (*sitereports.DailySiteReport, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site report: %w", err)
	}
	return report, nil
}

// UpdateByID updates an existing site report. The project and report date are
// immutable once recorded.
func (s *siteReportService) UpdateByID(ctx context.Context, report *sitereports.DailySiteReport) error {
	existing, err := s.reportRepo.GetByID(ctx, report.ID)
	if err != nil {
		return fmt.Errorf("failed to get site report: %w", err)
	}
	report.ProjectID = existing.ProjectID
	report.ReportDate = existing.ReportDate

	if err := s.reportRepo.UpdateByID(ctx, report); err != nil {
		return fmt.Errorf("failed to update site report: %w", err)
	}
	return nil
}

// DeleteByID deletes a site report by ID
func (s *siteReportService) DeleteByID(ctx context.Context, reportID string) error {
	if err := s.reportRepo.DeleteByID(ctx, reportID); err != nil {
		return fmt.Errorf("failed to delete site report: %w", err)
	}
	return nil
}
