//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/config"
	"github.com/wesrioswart/nervecontract/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories
type TestContext struct {
	DB               *gorm.DB
	ProjectRepo      projects.ProjectRepository
	EarlyWarningRepo notices.EarlyWarningRepository
	CompEventRepo    notices.CompensationEventRepository
	SupplierRepo     procurement.SupplierRepository
	RequisitionRepo  procurement.RequisitionRepository
	HireRepo         procurement.HireRepository
	SiteReportRepo   sitereports.SiteReportRepository
	EmailRepo        mail.EmailRepository
	NotificationRepo notifications.NotificationRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(AllModels()...)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	projectRepo, err := NewGormProjectRepository(db, logger)
	require.NoError(t, err, "Failed to create project repository")

	warningRepo, err := NewGormEarlyWarningRepository(db, logger)
	require.NoError(t, err, "Failed to create early warning repository")

	eventRepo, err := NewGormCompensationEventRepository(db, logger)
	require.NoError(t, err, "Failed to create compensation event repository")

	supplierRepo, err := NewGormSupplierRepository(db, logger)
	require.NoError(t, err, "Failed to create supplier repository")

	requisitionRepo, err := NewGormRequisitionRepository(db, logger)
	require.NoError(t, err, "Failed to create requisition repository")

	hireRepo, err := NewGormHireRepository(db, logger)
	require.NoError(t, err, "Failed to create equipment hire repository")

	reportRepo, err := NewGormSiteReportRepository(db, logger)
	require.NoError(t, err, "Failed to create site report repository")

	emailRepo, err := NewGormEmailRepository(db, logger)
	require.NoError(t, err, "Failed to create email repository")

	notificationRepo, err := NewGormNotificationRepository(db, logger)
	require.NoError(t, err, "Failed to create notification repository")

	return &TestContext{
		DB:               db,
		ProjectRepo:      projectRepo,
		EarlyWarningRepo: warningRepo,
		CompEventRepo:    eventRepo,
		SupplierRepo:     supplierRepo,
		RequisitionRepo:  requisitionRepo,
		HireRepo:         hireRepo,
		SiteReportRepo:   reportRepo,
		EmailRepo:        emailRepo,
		NotificationRepo: notificationRepo,
	}
}

// CreateTestProject creates a test project with default values
func CreateTestProject(t *testing.T) *projects.Project {
	t.Helper()

	return &projects.Project{
		ID:                uuid.NewString(),
		Name:              "Westport Link Road",
		ContractReference: "NEC4-ECC-2026-014",
		ContractType:      "NEC4 ECC Option C",
		Client:            "Westport Council",
		StartDate:         time.Now().AddDate(0, -3, 0),
		Status:            projects.StatusActive,
		CreatedAt:         time.Now(),
	}
}

// CreateTestEarlyWarning creates a test early warning against a project
func CreateTestEarlyWarning(t *testing.T, projectID string, seq int) *notices.EarlyWarning {
	t.Helper()

	return &notices.EarlyWarning{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Reference:   formatNoticeRef("EW", seq),
		Description: "Ground conditions differ from site investigation",
		RaisedBy:    "J. Mokoena",
		Status:      notices.EarlyWarningStatusOpen,
		RaisedAt:    time.Now(),
	}
}

// CreateTestCompensationEvent creates a test compensation event against a project
func CreateTestCompensationEvent(t *testing.T, projectID string, seq int) *notices.CompensationEvent {
	t.Helper()

	return &notices.CompensationEvent{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		Reference:      formatNoticeRef("CE", seq),
		ClauseRef:      "60.1(12)",
		Description:    "Physical conditions encountered during excavation",
		Status:         notices.CompensationEventStatusNotified,
		EstimatedValue: 48000,
		RaisedBy:       "J. Mokoena",
		RaisedAt:       time.Now(),
	}
}

func formatNoticeRef(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// CreateTestSupplier creates a test supplier with default values
func CreateTestSupplier(t *testing.T) *procurement.Supplier {
	t.Helper()

	return &procurement.Supplier{
		ID:           uuid.NewString(),
		Name:         "Aggregate & Plant Ltd",
		ContactEmail: "orders@aggregateplant.example",
		Phone:        "+27 21 555 0199",
		GPSMACSCode:  "M-204",
		Approved:     true,
		CreatedAt:    time.Now(),
	}
}

// CreateTestRequisition creates a draft test requisition against a project and supplier
func CreateTestRequisition(t *testing.T, projectID, supplierID string, seq int) *procurement.PurchaseRequisition {
	t.Helper()

	return &procurement.PurchaseRequisition{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		SupplierID:  supplierID,
		Reference:   formatNoticeRef("PR", seq),
		Description: "G5 crushed stone, 19mm",
		GPSMACSCode: "M-204",
		Quantity:    120,
		UnitCost:    385.50,
		TotalCost:   120 * 385.50,
		Status:      procurement.RequisitionStatusDraft,
		RequestedBy: "S. Naidoo",
		CreatedAt:   time.Now(),
	}
}

// CreateTestHire creates a requested equipment hire against a project and supplier
func CreateTestHire(t *testing.T, projectID, supplierID string) *procurement.EquipmentHire {
	t.Helper()

	return &procurement.EquipmentHire{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		SupplierID:  supplierID,
		Reference:   "EH-001",
		Description: "20t excavator with operator",
		WeeklyRate:  18500,
		Status:      procurement.HireStatusRequested,
		CreatedAt:   time.Now(),
	}
}

// CreateTestSiteReport creates a test site report for a project on a given date
func CreateTestSiteReport(t *testing.T, projectID string, reportDate time.Time) *sitereports.DailySiteReport {
	t.Helper()

	return &sitereports.DailySiteReport{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		ReportDate:  reportDate,
		Weather:     "Overcast, light rain after 14:00",
		LabourCount: 34,
		PlantCount:  7,
		Progress:    "Drainage layer complete ch 1200-1450",
		SubmittedBy: "S. Naidoo",
		CreatedAt:   time.Now(),
	}
}

// CreateTestEmail creates a classified test inbound email
func CreateTestEmail(t *testing.T, projectID *string, classification string) *mail.InboundEmail {
	t.Helper()

	return &mail.InboundEmail{
		ID:             uuid.NewString(),
		ProjectID:      projectID,
		From:           "site.agent@contractor.example",
		Subject:        "Notification of compensation event - unforeseen services",
		Body:           "We hereby notify a compensation event under clause 61.3.",
		Classification: classification,
		Confidence:     0.92,
		ReceivedAt:     time.Now(),
	}
}

// CreateTestNotification creates a broadcast test notification
func CreateTestNotification(t *testing.T, kind string) *notifications.Notification {
	t.Helper()

	return &notifications.Notification{
		ID:         uuid.NewString(),
		Kind:       kind,
		Title:      "Early warning EW-001 raised",
		Body:       "Ground conditions differ from site investigation",
		SourceType: "early_warning",
		SourceID:   uuid.NewString(),
		CreatedAt:  time.Now(),
	}
}
