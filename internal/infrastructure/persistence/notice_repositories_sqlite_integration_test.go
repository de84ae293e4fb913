//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarlyWarningSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	warning := CreateTestEarlyWarning(t, project.ID, 1)
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), warning))

	fetched, err := ctx.EarlyWarningRepo.GetByID(context.Background(), warning.ID)
	require.NoError(t, err)
	assert.Equal(t, "EW-001", fetched.Reference)
	assert.Equal(t, notices.EarlyWarningStatusOpen, fetched.Status)
}

func TestEarlyWarningSqliteRepository_NextSequence(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	otherProject := CreateTestProject(t)
	otherProject.ID = uuid.NewString()
	otherProject.ContractReference = "NEC4-ECC-2025-009"
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), otherProject))

	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), CreateTestEarlyWarning(t, project.ID, 1)))
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), CreateTestEarlyWarning(t, project.ID, 2)))
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), CreateTestEarlyWarning(t, otherProject.ID, 1)))

	sequence, err := ctx.EarlyWarningRepo.NextSequence(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sequence)

	sequence, err = ctx.EarlyWarningRepo.NextSequence(context.Background(), otherProject.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, sequence)
}

func TestEarlyWarningSqliteRepository_NextSequence_SkipsDeleted(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	first := CreateTestEarlyWarning(t, project.ID, 1)
	second := CreateTestEarlyWarning(t, project.ID, 2)
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), first))
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), second))

	// Removing an earlier notice must not free its sequence for reuse
	require.NoError(t, ctx.EarlyWarningRepo.DeleteByID(context.Background(), first.ID))

	sequence, err := ctx.EarlyWarningRepo.NextSequence(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sequence)
}

func TestEarlyWarningSqliteRepository_DuplicateReferenceRejected(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), CreateTestEarlyWarning(t, project.ID, 1)))

	duplicate := CreateTestEarlyWarning(t, project.ID, 1)
	assert.Error(t, ctx.EarlyWarningRepo.Create(context.Background(), duplicate))
}

func TestEarlyWarningSqliteRepository_List_FilterByStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	open := CreateTestEarlyWarning(t, project.ID, 1)
	mitigated := CreateTestEarlyWarning(t, project.ID, 2)
	mitigated.Status = notices.EarlyWarningStatusMitigated

	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), open))
	require.NoError(t, ctx.EarlyWarningRepo.Create(context.Background(), mitigated))

	query := &notices.NoticeQuery{ProjectID: project.ID, Status: notices.EarlyWarningStatusMitigated}
	list, err := ctx.EarlyWarningRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, mitigated.ID, list[0].ID)
}

func TestCompensationEventSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	event := CreateTestCompensationEvent(t, project.ID, 1)
	require.NoError(t, ctx.CompEventRepo.Create(context.Background(), event))

	fetched, err := ctx.CompEventRepo.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "CE-001", fetched.Reference)
	assert.Equal(t, "60.1(12)", fetched.ClauseRef)
	assert.Equal(t, notices.CompensationEventStatusNotified, fetched.Status)
}

func TestCompensationEventSqliteRepository_UpdateStatus(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	event := CreateTestCompensationEvent(t, project.ID, 1)
	require.NoError(t, ctx.CompEventRepo.Create(context.Background(), event))

	event.Status = notices.CompensationEventStatusAssessed
	event.EstimatedValue = 52500
	require.NoError(t, ctx.CompEventRepo.UpdateByID(context.Background(), event))

	updated, err := ctx.CompEventRepo.GetByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, notices.CompensationEventStatusAssessed, updated.Status)
	assert.Equal(t, 52500.0, updated.EstimatedValue)
}

func TestCompensationEventSqliteRepository_NextSequence_SkipsDeleted(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t)
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	first := CreateTestCompensationEvent(t, project.ID, 1)
	second := CreateTestCompensationEvent(t, project.ID, 2)
	require.NoError(t, ctx.CompEventRepo.Create(context.Background(), first))
	require.NoError(t, ctx.CompEventRepo.Create(context.Background(), second))

	require.NoError(t, ctx.CompEventRepo.DeleteByID(context.Background(), first.ID))

	sequence, err := ctx.CompEventRepo.NextSequence(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, sequence)
}
