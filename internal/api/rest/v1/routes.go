package v1

import (
	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/domain/reports"
	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	projectService projects.ProjectService,
	earlyWarningService notices.EarlyWarningService,
	compensationEventService notices.CompensationEventService,
	supplierService procurement.SupplierService,
	requisitionService procurement.RequisitionService,
	hireService procurement.HireService,
	siteReportService sitereports.SiteReportService,
	emailService mail.EmailIntakeService,
	notificationService notifications.NotificationService,
	reportService reports.ReportService,
	hub *NotificationHub,
	log logger.Logger) {

	v1 := r.Group(BasePath) // lookup in version file

	// Projects Routes
	projectHandler := NewProjectHandler(projectService)
	v1.POST("/projects", projectHandler.Create)
	v1.GET("/projects", projectHandler.List)
	v1.GET("/projects/:id", projectHandler.GetByID)
	v1.PUT("/projects/:id", projectHandler.UpdateByID)
	v1.DELETE("/projects/:id", projectHandler.DeleteByID)

	// Early Warning Routes
	earlyWarningHandler := NewEarlyWarningHandler(earlyWarningService)
	v1.POST("/early-warnings", earlyWarningHandler.Raise)
	v1.GET("/early-warnings", earlyWarningHandler.List)
	v1.GET("/early-warnings/:id", earlyWarningHandler.GetByID)
	v1.PUT("/early-warnings/:id", earlyWarningHandler.UpdateByID)
	v1.DELETE("/early-warnings/:id", earlyWarningHandler.DeleteByID)

	// Compensation Event Routes
	compensationEventHandler := NewCompensationEventHandler(compensationEventService)
	v1.POST("/compensation-events", compensationEventHandler.Raise)
	v1.GET("/compensation-events", compensationEventHandler.List)
	v1.GET("/compensation-events/:id", compensationEventHandler.GetByID)
	v1.PUT("/compensation-events/:id", compensationEventHandler.UpdateByID)
	v1.DELETE("/compensation-events/:id", compensationEventHandler.DeleteByID)

	// Supplier Routes
	supplierHandler := NewSupplierHandler(supplierService)
	v1.POST("/suppliers", supplierHandler.Create)
	v1.GET("/suppliers", supplierHandler.List)
	v1.GET("/suppliers/:id", supplierHandler.GetByID)
	v1.PUT("/suppliers/:id", supplierHandler.UpdateByID)
	v1.DELETE("/suppliers/:id", supplierHandler.DeleteByID)

	// Requisition Routes
	requisitionHandler := NewRequisitionHandler(requisitionService)
	v1.POST("/requisitions", requisitionHandler.Create)
	v1.GET("/requisitions", requisitionHandler.List)
	v1.GET("/requisitions/:id", requisitionHandler.GetByID)
	v1.PUT("/requisitions/:id", requisitionHandler.UpdateByID)
	v1.DELETE("/requisitions/:id", requisitionHandler.DeleteByID)

	// Hire Routes
	hireHandler := NewHireHandler(hireService)
	v1.POST("/hires", hireHandler.Create)
	v1.GET("/hires", hireHandler.List)
	v1.GET("/hires/:id", hireHandler.GetByID)
	v1.PUT("/hires/:id", hireHandler.UpdateByID)
	v1.DELETE("/hires/:id", hireHandler.DeleteByID)

	// Site Report Routes
	siteReportHandler := NewSiteReportHandler(siteReportService)
	v1.POST("/site-reports", siteReportHandler.Create)
	v1.GET("/site-reports", siteReportHandler.List)
	v1.GET("/site-reports/:id", siteReportHandler.GetByID)
	v1.PUT("/site-reports/:id", siteReportHandler.UpdateByID)
	v1.DELETE("/site-reports/:id", siteReportHandler.DeleteByID)

	// Email Routes
	emailHandler := NewEmailHandler(emailService)
	v1.POST("/emails", emailHandler.Record)
	v1.GET("/emails", emailHandler.List)
	v1.GET("/emails/:id", emailHandler.GetByID)

	// Notification Routes
	notificationHandler := NewNotificationHandler(notificationService)
	v1.GET("/notifications", notificationHandler.List)
	v1.GET("/notifications/:id", notificationHandler.GetByID)
	v1.POST("/notifications/:id/read", notificationHandler.MarkRead)
	v1.DELETE("/notifications/:id", notificationHandler.DeleteByID)

	// Report Routes
	reportHandler := NewReportHandler(reportService)
	v1.GET("/projects/:id/summary.pdf", reportHandler.GenerateProjectSummary)
	v1.POST("/reports/dashboard-capture", reportHandler.CaptureDashboard)

	// Notification Stream
	webSocketHandler := NewWebSocketHandler(hub, log)
	v1.GET("/ws", webSocketHandler.Subscribe)
}
