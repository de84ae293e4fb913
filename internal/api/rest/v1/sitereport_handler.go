package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"

	"github.com/gin-gonic/gin"
)

// SiteReportHandler defines the interface for handling daily site report operations
type SiteReportHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type siteReportHandler struct {
	siteReportService sitereports.SiteReportService
}

// NewSiteReportHandler creates a new SiteReportHandler
func NewSiteReportHandler(siteReportService sitereports.SiteReportService) SiteReportHandler {
	return &siteReportHandler{
		siteReportService: siteReportService,
	}
}

func toSiteReportResponse(report *sitereports.DailySiteReport) SiteReportResponse {
	return SiteReportResponse{
		ID:          report.ID,
		ProjectID:   report.ProjectID,
		ReportDate:  report.ReportDate,
		Weather:     report.Weather,
		LabourCount: report.LabourCount,
		PlantCount:  report.PlantCount,
		Progress:    report.Progress,
		Delays:      report.Delays,
		Safety:      report.Safety,
		SubmittedBy: report.SubmittedBy,
		CreatedAt:   report.CreatedAt,
	}
}

// Create handles the POST request to submit a daily site report
// @Summary Submit a daily site report
// @Description Submit a site diary entry for a project. Only one report is accepted per project per calendar date.
// @Tags SiteReport
// @Accept json
// @Produce json
// @Param requestBody body CreateSiteReportRequest true "Site Report Data"
// @Success 201 {object} SiteReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /site-reports [post]
func (handler *siteReportHandler) Create(ctx *gin.Context) {
	var request CreateSiteReportRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid site report data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	report := &sitereports.DailySiteReport{
		ProjectID:   request.ProjectID,
		ReportDate:  request.ReportDate,
		Weather:     request.Weather,
		LabourCount: request.LabourCount,
		PlantCount:  request.PlantCount,
		Progress:    request.Progress,
		Delays:      request.Delays,
		Safety:      request.Safety,
		SubmittedBy: request.SubmittedBy,
	}

	created, err := handler.siteReportService.Create(ctx, report)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating site report: %v", err.Error())
		if strings.Contains(err.Error(), "already exists") {
			ctx.JSON(http.StatusConflict, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toSiteReportResponse(created))
}

// List handles the GET request to list site reports with optional query parameters
// @Summary List daily site reports based on query parameters
// @Description Fetch site reports filtered by project and report date range, with pagination and sorting options.
// @Tags SiteReport
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param from query string false "Report date lower bound (RFC3339)"
// @Param to query string false "Report date upper bound (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} SiteReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /site-reports [get]
func (handler *siteReportHandler) List(ctx *gin.Context) {
	query := sitereports.NewReportQuery()

	if projectID := ctx.Query("projectId"); len(projectID) > 0 {
		query.ProjectID = projectID
	}

	if from := ctx.Query("from"); len(from) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, from)
		if err == nil {
			query.From = parsedTime
		}
	}

	if to := ctx.Query("to"); len(to) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, to)
		if err == nil {
			query.To = parsedTime
		}
	}

	if !bindPagination(ctx, &query.Limit, &query.Offset) {
		return
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	list, err := handler.siteReportService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []SiteReportResponse{}
	for _, report := range list {
		listResponse = append(listResponse, toSiteReportResponse(report))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a site report by ID
// @Summary Retrieve a daily site report by ID
// @Description Fetch a single site diary entry.
// @Tags SiteReport
// @Accept json
// @Produce json
// @Param id path string true "Site Report ID"
// @Success 200 {object} SiteReportResponse
// @Failure 404 {object} ErrorResponse
// @Router /site-reports/{id} [get]
func (handler *siteReportHandler) GetByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	report, err := handler.siteReportService.GetByID(ctx, reportID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("site report with id %s not found", reportID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSiteReportResponse(report))
}

// UpdateByID handles the PUT request to amend a site report by ID
// @Summary Amend a daily site report by ID
// @Description Amend the contents of a site diary entry. The project and report date cannot change after submission.
// @Tags SiteReport
// @Accept json
// @Produce json
// @Param id path string true "Site Report ID"
// @Param requestBody body UpdateSiteReportRequest true "Site Report Data"
// @Success 200 {object} SiteReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /site-reports/{id} [put]
func (handler *siteReportHandler) UpdateByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	var request UpdateSiteReportRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid site report data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.siteReportService.GetByID(ctx, reportID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("site report with id %s not found", reportID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Weather = request.Weather
	existing.LabourCount = request.LabourCount
	existing.PlantCount = request.PlantCount
	existing.Progress = request.Progress
	existing.Delays = request.Delays
	existing.Safety = request.Safety
	existing.SubmittedBy = request.SubmittedBy

	if err := handler.siteReportService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating site report: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSiteReportResponse(existing))
}

// DeleteByID handles the DELETE request to remove a site report by ID
// @Summary Delete a daily site report by ID
// @Description Delete a site diary entry.
// @Tags SiteReport
// @Accept json
// @Produce json
// @Param id path string true "Site Report ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /site-reports/{id} [delete]
func (handler *siteReportHandler) DeleteByID(ctx *gin.Context) {
	reportID := ctx.Param("id")

	if err := handler.siteReportService.DeleteByID(ctx, reportID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting site report with id %s: %v", reportID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
