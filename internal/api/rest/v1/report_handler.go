package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wesrioswart/nervecontract/internal/domain/reports"

	"github.com/gin-gonic/gin"
)

// ReportHandler defines the interface for handling generated document operations
type ReportHandler interface {
	GenerateProjectSummary(ctx *gin.Context)
	CaptureDashboard(ctx *gin.Context)
}

type reportHandler struct {
	reportService reports.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService reports.ReportService) ReportHandler {
	return &reportHandler{
		reportService: reportService,
	}
}

// GenerateProjectSummary handles the GET request to render a project summary PDF
// @Summary Generate a project summary PDF
// @Description Render the project summary report, covering notices, requisitions and recent site reports, as a PDF document.
// @Tags Report
// @Accept json
// @Produce application/pdf
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /projects/{id}/summary.pdf [get]
func (handler *reportHandler) GenerateProjectSummary(ctx *gin.Context) {
	projectID := ctx.Param("id")

	pdf, err := handler.reportService.GenerateProjectSummary(ctx, projectID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating summary for project %s: %v", projectID, err.Error())
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project-summary-%s.pdf", projectID))
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// CaptureDashboard handles the POST request to capture a dashboard screenshot
// @Summary Capture a dashboard screenshot
// @Description Navigate to the given dashboard URL and return a full-page PNG screenshot.
// @Tags Report
// @Accept json
// @Produce image/png
// @Param requestBody body CaptureDashboardRequest true "Dashboard Capture Data"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /reports/dashboard-capture [post]
func (handler *reportHandler) CaptureDashboard(ctx *gin.Context) {
	var request CaptureDashboardRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid capture data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	png, err := handler.reportService.CaptureDashboard(ctx, request.URL)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error capturing dashboard: %v", err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
