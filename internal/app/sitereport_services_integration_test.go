//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteReportService_Create(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	report, err := services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Weather:     "Overcast, light rain after 14:00",
		LabourCount: 34,
		PlantCount:  7,
		Progress:    "Drainage layer complete ch 1200-1450",
		SubmittedBy: "S. Naidoo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
}

func TestSiteReportService_Create_DuplicateDateRejected(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	_, err := services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  reportDate,
		Progress:    "Drainage layer complete ch 1200-1450",
		SubmittedBy: "S. Naidoo",
	})
	require.NoError(t, err)

	// Same calendar day, different time of day
	_, err = services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  reportDate.Add(9 * time.Hour),
		Progress:    "Second submission for the same day",
		SubmittedBy: "J. Mokoena",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSiteReportService_Create_NextDayAccepted(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	_, err := services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  reportDate,
		Progress:    "Drainage layer complete ch 1200-1450",
		SubmittedBy: "S. Naidoo",
	})
	require.NoError(t, err)

	_, err = services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  reportDate.AddDate(0, 0, 1),
		Progress:    "Subbase placement started ch 1450-1700",
		SubmittedBy: "S. Naidoo",
	})
	require.NoError(t, err)
}

func TestSiteReportService_UpdateByID_ProjectAndDateImmutable(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	report, err := services.SiteReportService.Create(context.Background(), &sitereports.DailySiteReport{
		ProjectID:   project.ID,
		ReportDate:  reportDate,
		Progress:    "Drainage layer complete ch 1200-1450",
		SubmittedBy: "S. Naidoo",
	})
	require.NoError(t, err)

	report.ReportDate = reportDate.AddDate(0, 0, 5)
	report.Progress = "Corrected progress entry"
	require.NoError(t, services.SiteReportService.UpdateByID(context.Background(), report))

	updated, err := services.SiteReportService.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.True(t, updated.ReportDate.Equal(reportDate))
	assert.Equal(t, "Corrected progress entry", updated.Progress)
}
