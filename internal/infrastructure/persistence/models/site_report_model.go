package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
)

// SiteReportModel is the GORM database model for daily site reports
// (infrastructure concern). The composite unique index enforces at most one
// report per project per calendar date.
type SiteReportModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	ProjectID   string    `gorm:"not null;type:uuid;uniqueIndex:idx_site_reports_project_date"`
	ReportDate  time.Time `gorm:"not null;uniqueIndex:idx_site_reports_project_date"`
	Weather     string    `gorm:"type:varchar(255)"`
	LabourCount int       `gorm:"not null;default:0"`
	PlantCount  int       `gorm:"not null;default:0"`
	Progress    string    `gorm:"not null;type:text"`
	Delays      string    `gorm:"type:text"`
	Safety      string    `gorm:"type:text"`
	SubmittedBy string    `gorm:"not null;type:varchar(255)"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SiteReportModel) TableName() string {
	return "daily_site_reports"
}

// ToDomain converts GORM model to domain entity
func (m *SiteReportModel) ToDomain() *sitereports.DailySiteReport {
	return &sitereports.DailySiteReport{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		ReportDate:  m.ReportDate,
		Weather:     m.Weather,
		LabourCount: m.LabourCount,
		PlantCount:  m.PlantCount,
		Progress:    m.Progress,
		Delays:      m.Delays,
		Safety:      m.Safety,
		SubmittedBy: m.SubmittedBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SiteReportModel) FromDomain(r *sitereports.DailySiteReport) {
	m.ID = r.ID
	m.ProjectID = r.ProjectID
	m.ReportDate = r.ReportDate
	m.Weather = r.Weather
	m.LabourCount = r.LabourCount
	m.PlantCount = r.PlantCount
	m.Progress = r.Progress
	m.Delays = r.Delays
	m.Safety = r.Safety
	m.SubmittedBy = r.SubmittedBy
	m.CreatedAt = r.CreatedAt
}
