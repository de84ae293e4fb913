//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, services *TestServices) *projects.Project {
	t.Helper()

	project, err := services.ProjectService.Create(context.Background(), &projects.Project{
		Name:              "Westport Link Road",
		ContractReference: "NEC4-ECC-2026-014",
		ContractType:      "NEC4 ECC Option C",
		Client:            "Westport Council",
		StartDate:         time.Now().AddDate(0, -3, 0),
	})
	require.NoError(t, err)
	return project
}

func TestEarlyWarningService_Raise_AssignsSequentialReferences(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	first, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)
	assert.Equal(t, "EW-001", first.Reference)
	assert.Equal(t, notices.EarlyWarningStatusOpen, first.Status)

	second, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Supplier lead time on precast culverts at risk",
		RaisedBy:    "S. Naidoo",
	})
	require.NoError(t, err)
	assert.Equal(t, "EW-002", second.Reference)
}

func TestEarlyWarningService_Raise_NoReferenceReuseAfterDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	first, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)

	second, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Supplier lead time on precast culverts at risk",
		RaisedBy:    "S. Naidoo",
	})
	require.NoError(t, err)
	require.Equal(t, "EW-002", second.Reference)

	// Withdrawing the first warning must not shift later raises back onto
	// a reference that is still live on the second one
	require.NoError(t, services.EarlyWarningService.DeleteByID(context.Background(), first.ID))

	third, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Utility diversion approval outstanding",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)
	assert.Equal(t, "EW-003", third.Reference)
}

func TestEarlyWarningService_Raise_CreatesNotification(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	warning, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)

	list, err := services.NotificationService.List(context.Background(), &notifications.NotificationQuery{
		Kind: notifications.KindEarlyWarningRaised,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, warning.ID, list[0].SourceID)
	assert.Contains(t, list[0].Title, "EW-001")
}

func TestEarlyWarningService_Raise_UnknownProject(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   uuid.NewString(),
		Description: "Orphaned warning",
		RaisedBy:    "J. Mokoena",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEarlyWarningService_UpdateByID_ReferenceImmutable(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	warning, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)

	warning.Reference = "EW-999"
	warning.Status = notices.EarlyWarningStatusMitigated
	require.NoError(t, services.EarlyWarningService.UpdateByID(context.Background(), warning))

	updated, err := services.EarlyWarningService.GetByID(context.Background(), warning.ID)
	require.NoError(t, err)
	assert.Equal(t, "EW-001", updated.Reference)
	assert.Equal(t, notices.EarlyWarningStatusMitigated, updated.Status)
}

func TestCompensationEventService_Raise_AssignsReferenceAndNotifies(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	event, err := services.CompensationEventService.Raise(context.Background(), &notices.CompensationEvent{
		ProjectID:      project.ID,
		ClauseRef:      "60.1(12)",
		Description:    "Physical conditions encountered during excavation",
		EstimatedValue: 48000,
		RaisedBy:       "J. Mokoena",
	})
	require.NoError(t, err)
	assert.Equal(t, "CE-001", event.Reference)
	assert.Equal(t, notices.CompensationEventStatusNotified, event.Status)

	list, err := services.NotificationService.List(context.Background(), &notifications.NotificationQuery{
		Kind: notifications.KindCompensationEventRaised,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Title, "60.1(12)")
}

func TestCompensationEventService_References_IndependentPerProject(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	first := createProject(t, services)

	second, err := services.ProjectService.Create(context.Background(), &projects.Project{
		Name:              "Harbour Quay Upgrade",
		ContractReference: "NEC4-ECC-2025-009",
		ContractType:      "NEC4 ECC Option A",
		Client:            "Port Authority",
		StartDate:         time.Now().AddDate(-1, 0, 0),
	})
	require.NoError(t, err)

	_, err = services.CompensationEventService.Raise(context.Background(), &notices.CompensationEvent{
		ProjectID:   first.ID,
		ClauseRef:   "60.1(1)",
		Description: "Instruction changing the Scope",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)

	other, err := services.CompensationEventService.Raise(context.Background(), &notices.CompensationEvent{
		ProjectID:   second.ID,
		ClauseRef:   "60.1(19)",
		Description: "Event neither party could prevent",
		RaisedBy:    "S. Naidoo",
	})
	require.NoError(t, err)
	assert.Equal(t, "CE-001", other.Reference)
}

func TestNoticeServices_FailedNotificationDoesNotFailRaise(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	project := createProject(t, services)

	// Drop the notifications table so the handler's write fails while the
	// notice write still succeeds
	require.NoError(t, services.DBContext.DB.Migrator().DropTable("notifications"))

	warning, err := services.EarlyWarningService.Raise(context.Background(), &notices.EarlyWarning{
		ProjectID:   project.ID,
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
	})
	require.NoError(t, err)

	stored, err := services.EarlyWarningService.GetByID(context.Background(), warning.ID)
	require.NoError(t, err)
	assert.Equal(t, "EW-001", stored.Reference)
}
