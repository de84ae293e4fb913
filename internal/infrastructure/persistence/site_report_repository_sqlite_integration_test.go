//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteReportSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	report := CreateTestSiteReport(t, project.ID, reportDate)
	require.NoError(t, ctx.SiteReportRepo.Create(context.Background(), report))

	fetched, err := ctx.SiteReportRepo.GetByID(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Progress, fetched.Progress)
	assert.Equal(t, 34, fetched.LabourCount)
}

func TestSiteReportSqliteRepository_GetByProjectAndDate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	report := CreateTestSiteReport(t, project.ID, reportDate)
	require.NoError(t, ctx.SiteReportRepo.Create(context.Background(), report))

	found, err := ctx.SiteReportRepo.GetByProjectAndDate(context.Background(), project.ID, "2026-08-24")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, report.ID, found.ID)

	// No report exists for the next day
	missing, err := ctx.SiteReportRepo.GetByProjectAndDate(context.Background(), project.ID, "2026-08-25")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSiteReportSqliteRepository_GetByProjectAndDate_InvalidDate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.SiteReportRepo.GetByProjectAndDate(context.Background(), "any", "24/08/2026")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report date")
}

func TestSiteReportSqliteRepository_UniquePerProjectAndDate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	reportDate := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ctx.SiteReportRepo.Create(context.Background(), CreateTestSiteReport(t, project.ID, reportDate)))

	duplicate := CreateTestSiteReport(t, project.ID, reportDate)
	err := ctx.SiteReportRepo.Create(context.Background(), duplicate)
	assert.Error(t, err)
}

func TestSiteReportSqliteRepository_List_DateRange(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	for day := 20; day <= 24; day++ {
		reportDate := time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC)
		require.NoError(t, ctx.SiteReportRepo.Create(context.Background(), CreateTestSiteReport(t, project.ID, reportDate)))
	}

	query := &sitereports.ReportQuery{
		ProjectID: project.ID,
		From:      time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
		SortBy:    "report_date",
		SortOrder: "asc",
	}
	list, err := ctx.SiteReportRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.True(t, list[0].ReportDate.Before(list[1].ReportDate))
}
