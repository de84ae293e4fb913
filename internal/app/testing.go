//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/eventbus"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence"
	"github.com/wesrioswart/nervecontract/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ProjectService           projects.ProjectService
	EarlyWarningService      notices.EarlyWarningService
	CompensationEventService notices.CompensationEventService
	SupplierService          procurement.SupplierService
	RequisitionService       procurement.RequisitionService
	HireService              procurement.HireService
	SiteReportService        sitereports.SiteReportService
	EmailIntakeService       mail.EmailIntakeService
	NotificationService      notifications.NotificationService

	Bus       *eventbus.Bus
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests, with notification fan-out handlers registered on the bus.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	bus := eventbus.NewBus(logger)
	eventbus.RegisterNotificationHandlers(bus, dbContext.NotificationRepo, logger)

	projectService, err := NewProjectService(dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create project service")

	warningService, err := NewEarlyWarningService(dbContext.EarlyWarningRepo, dbContext.ProjectRepo, bus, logger)
	require.NoError(t, err, "Failed to create early warning service")

	eventService, err := NewCompensationEventService(dbContext.CompEventRepo, dbContext.ProjectRepo, bus, logger)
	require.NoError(t, err, "Failed to create compensation event service")

	supplierService, err := NewSupplierService(dbContext.SupplierRepo, logger)
	require.NoError(t, err, "Failed to create supplier service")

	requisitionService, err := NewRequisitionService(dbContext.RequisitionRepo, dbContext.SupplierRepo, dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create requisition service")

	hireService, err := NewHireService(dbContext.HireRepo, dbContext.SupplierRepo, dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create hire service")

	reportService, err := NewSiteReportService(dbContext.SiteReportRepo, dbContext.ProjectRepo, logger)
	require.NoError(t, err, "Failed to create site report service")

	emailService, err := NewEmailIntakeService(dbContext.EmailRepo, dbContext.ProjectRepo, bus, logger)
	require.NoError(t, err, "Failed to create email intake service")

	notificationService, err := NewNotificationService(dbContext.NotificationRepo, logger)
	require.NoError(t, err, "Failed to create notification service")

	return &TestServices{
		ProjectService:           projectService,
		EarlyWarningService:      warningService,
		CompensationEventService: eventService,
		SupplierService:          supplierService,
		RequisitionService:       requisitionService,
		HireService:              hireService,
		SiteReportService:        reportService,
		EmailIntakeService:       emailService,
		NotificationService:      notificationService,
		Bus:                      bus,
		DBContext:                dbContext,
	}
}
