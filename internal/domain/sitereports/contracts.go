package sitereports

import (
	"context"
)

// SiteReportService defines methods for managing daily site reports.
type SiteReportService interface {
	// Create registers a new daily site report. Creation fails with a conflict
	// error when a report already exists for the project and report date.
	Create(ctx context.Context, report *DailySiteReport) (*DailySiteReport, error)

	// List retrieves site reports considering a query filter when set.
	List(ctx context.Context, query *ReportQuery) ([]*DailySiteReport, error)

	// GetByID retrieves a site report by its unique ID.
	GetByID(ctx context.Context, reportID string) (*DailySiteReport, error)

	// UpdateByID updates an existing site report.
	UpdateByID(ctx context.Context, report *DailySiteReport) error

	// DeleteByID deletes a site report by ID.
	DeleteByID(ctx context.Context, reportID string) error
}

// SiteReportRepository defines the interface for DailySiteReport-related persistence operations
type SiteReportRepository interface {
	Create(ctx context.Context, report *DailySiteReport) error
	List(ctx context.Context, query *ReportQuery) ([]*DailySiteReport, error)
	GetByID(ctx context.Context, reportID string) (*DailySiteReport, error)
	// GetByProjectAndDate retrieves a report for a project on a calendar date,
	// returning nil when none exists
	GetByProjectAndDate(ctx context.Context, projectID string, date string) (*DailySiteReport, error)
	UpdateByID(ctx context.Context, report *DailySiteReport) error
	DeleteByID(ctx context.Context, reportID string) error
}
