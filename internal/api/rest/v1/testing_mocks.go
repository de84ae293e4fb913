//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"

	"github.com/stretchr/testify/mock"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) UpdateByID(ctx context.Context, project *projects.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectService) DeleteByID(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockEarlyWarningService is a mock implementation of EarlyWarningService
type MockEarlyWarningService struct {
	mock.Mock
}

func (m *MockEarlyWarningService) Raise(ctx context.Context, warning *notices.EarlyWarning) (*notices.EarlyWarning, error) {
	args := m.Called(ctx, warning)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notices.EarlyWarning), args.Error(1)
}

func (m *MockEarlyWarningService) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.EarlyWarning, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notices.EarlyWarning), args.Error(1)
}

func (m *MockEarlyWarningService) GetByID(ctx context.Context, warningID string) (*notices.EarlyWarning, error) {
	args := m.Called(ctx, warningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notices.EarlyWarning), args.Error(1)
}

func (m *MockEarlyWarningService) UpdateByID(ctx context.Context, warning *notices.EarlyWarning) error {
	args := m.Called(ctx, warning)
	return args.Error(0)
}

func (m *MockEarlyWarningService) DeleteByID(ctx context.Context, warningID string) error {
	args := m.Called(ctx, warningID)
	return args.Error(0)
}

// MockCompensationEventService is a mock implementation of CompensationEventService
type MockCompensationEventService struct {
	mock.Mock
}

func (m *MockCompensationEventService) Raise(ctx context.Context, event *notices.CompensationEvent) (*notices.CompensationEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notices.CompensationEvent), args.Error(1)
}

func (m *MockCompensationEventService) List(ctx context.Context, query *notices.NoticeQuery) ([]*notices.CompensationEvent, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notices.CompensationEvent), args.Error(1)
}

func (m *MockCompensationEventService) GetByID(ctx context.Context, eventID string) (*notices.CompensationEvent, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notices.CompensationEvent), args.Error(1)
}

func (m *MockCompensationEventService) UpdateByID(ctx context.Context, event *notices.CompensationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCompensationEventService) DeleteByID(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockSupplierService is a mock implementation of SupplierService
type MockSupplierService struct {
	mock.Mock
}

func (m *MockSupplierService) Create(ctx context.Context, supplier *procurement.Supplier) (*procurement.Supplier, error) {
	args := m.Called(ctx, supplier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierService) List(ctx context.Context, query *procurement.SupplierQuery) ([]*procurement.Supplier, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierService) GetByID(ctx context.Context, supplierID string) (*procurement.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.Supplier), args.Error(1)
}

func (m *MockSupplierService) UpdateByID(ctx context.Context, supplier *procurement.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierService) DeleteByID(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// MockRequisitionService is a mock implementation of RequisitionService
type MockRequisitionService struct {
	mock.Mock
}

func (m *MockRequisitionService) Create(ctx context.Context, requisition *procurement.PurchaseRequisition) (*procurement.PurchaseRequisition, error) {
	args := m.Called(ctx, requisition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseRequisition), args.Error(1)
}

func (m *MockRequisitionService) List(ctx context.Context, query *procurement.RequisitionQuery) ([]*procurement.PurchaseRequisition, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.PurchaseRequisition), args.Error(1)
}

func (m *MockRequisitionService) GetByID(ctx context.Context, requisitionID string) (*procurement.PurchaseRequisition, error) {
	args := m.Called(ctx, requisitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.PurchaseRequisition), args.Error(1)
}

func (m *MockRequisitionService) UpdateByID(ctx context.Context, requisition *procurement.PurchaseRequisition) error {
	args := m.Called(ctx, requisition)
	return args.Error(0)
}

func (m *MockRequisitionService) DeleteByID(ctx context.Context, requisitionID string) error {
	args := m.Called(ctx, requisitionID)
	return args.Error(0)
}

// MockHireService is a mock implementation of HireService
type MockHireService struct {
	mock.Mock
}

func (m *MockHireService) Create(ctx context.Context, hire *procurement.EquipmentHire) (*procurement.EquipmentHire, error) {
	args := m.Called(ctx, hire)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.EquipmentHire), args.Error(1)
}

func (m *MockHireService) List(ctx context.Context, query *procurement.HireQuery) ([]*procurement.EquipmentHire, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*procurement.EquipmentHire), args.Error(1)
}

func (m *MockHireService) GetByID(ctx context.Context, hireID string) (*procurement.EquipmentHire, error) {
	args := m.Called(ctx, hireID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*procurement.EquipmentHire), args.Error(1)
}

func (m *MockHireService) UpdateByID(ctx context.Context, hire *procurement.EquipmentHire) error {
	args := m.Called(ctx, hire)
	return args.Error(0)
}

func (m *MockHireService) DeleteByID(ctx context.Context, hireID string) error {
	args := m.Called(ctx, hireID)
	return args.Error(0)
}

// MockSiteReportService is a mock implementation of SiteReportService
type MockSiteReportService struct {
	mock.Mock
}

func (m *MockSiteReportService) Create(ctx context.Context, report *sitereports.DailySiteReport) (*sitereports.DailySiteReport, error) {
	args := m.Called(ctx, report)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sitereports.DailySiteReport), args.Error(1)
}

func (m *MockSiteReportService) List(ctx context.Context, query *sitereports.ReportQuery) ([]*sitereports.DailySiteReport, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sitereports.DailySiteReport), args.Error(1)
}

func (m *MockSiteReportService) GetByID(ctx context.Context, reportID string) (*sitereports.DailySiteReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sitereports.DailySiteReport), args.Error(1)
}

func (m *MockSiteReportService) UpdateByID(ctx context.Context, report *sitereports.DailySiteReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockSiteReportService) DeleteByID(ctx context.Context, reportID string) error {
	args := m.Called(ctx, reportID)
	return args.Error(0)
}

// MockEmailIntakeService is a mock implementation of EmailIntakeService
type MockEmailIntakeService struct {
	mock.Mock
}

func (m *MockEmailIntakeService) Record(ctx context.Context, email *mail.InboundEmail) (*mail.InboundEmail, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.InboundEmail), args.Error(1)
}

func (m *MockEmailIntakeService) List(ctx context.Context, query *mail.EmailQuery) ([]*mail.InboundEmail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mail.InboundEmail), args.Error(1)
}

func (m *MockEmailIntakeService) GetByID(ctx context.Context, emailID string) (*mail.InboundEmail, error) {
	args := m.Called(ctx, emailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.InboundEmail), args.Error(1)
}

// MockNotificationService is a mock implementation of NotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	args := m.Called(ctx, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notifications.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationService) DeleteByID(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateProjectSummary(ctx context.Context, projectID string) ([]byte, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) CaptureDashboard(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
