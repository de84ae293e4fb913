package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"

	"github.com/gin-gonic/gin"
)

// EarlyWarningHandler defines the interface for handling early warning operations
type EarlyWarningHandler interface {
	Raise(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type earlyWarningHandler struct {
	warningService notices.EarlyWarningService
}

// NewEarlyWarningHandler creates a new EarlyWarningHandler
func NewEarlyWarningHandler(warningService notices.EarlyWarningService) EarlyWarningHandler {
	return &earlyWarningHandler{
		warningService: warningService,
	}
}

func toEarlyWarningResponse(warning *notices.EarlyWarning) EarlyWarningResponse {
	return EarlyWarningResponse{
		ID:              warning.ID,
		ProjectID:       warning.ProjectID,
		Reference:       warning.Reference,
		Description:     warning.Description,
		RaisedBy:        warning.RaisedBy,
		Status:          warning.Status,
		MeetingRequired: warning.MeetingRequired,
		RaisedAt:        warning.RaisedAt,
	}
}

// applyNoticeQueryParams fills the shared notice filters from query parameters
func applyNoticeQueryParams(ctx *gin.Context, query *notices.NoticeQuery) {
	if projectID := ctx.Query("projectId"); len(projectID) > 0 {
		query.ProjectID = projectID
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if raisedAt := ctx.Query("raisedAt"); len(raisedAt) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, raisedAt)
		if err == nil {
			query.RaisedAt = parsedTime
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
}

// Raise handles the POST request to raise an early warning
// @Summary Raise a new early warning
// @Description Raise an NEC4 early warning against a project. The reference is assigned sequentially per project.
// @Tags EarlyWarning
// @Accept json
// @Produce json
// @Param requestBody body RaiseEarlyWarningRequest true "Early Warning Data"
// @Success 201 {object} EarlyWarningResponse
// @Failure 400 {object} ErrorResponse
// @Router /early-warnings [post]
func (handler *earlyWarningHandler) Raise(ctx *gin.Context) {
	var request RaiseEarlyWarningRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid early warning data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	warning := &notices.EarlyWarning{
		ProjectID:       request.ProjectID,
		Description:     request.Description,
		RaisedBy:        request.RaisedBy,
		MeetingRequired: request.MeetingRequired,
	}

	raised, err := handler.warningService.Raise(ctx, warning)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error raising early warning: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toEarlyWarningResponse(raised))
}

// List handles the GET request to list early warnings with optional query parameters
// @Summary List early warnings based on query parameters
// @Description Fetch early warnings filtered by project, status and raise date, with pagination and sorting options.
// @Tags EarlyWarning
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param status query string false "Early Warning Status"
// @Param raisedAt query string false "Raised Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} EarlyWarningResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /early-warnings [get]
func (handler *earlyWarningHandler) List(ctx *gin.Context) {
	query := notices.NewNoticeQuery()
	applyNoticeQueryParams(ctx, query)

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	list, err := handler.warningService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []EarlyWarningResponse{}
	for _, warning := range list {
		listResponse = append(listResponse, toEarlyWarningResponse(warning))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an early warning by ID
// @Summary Retrieve an early warning by ID
// @Description Fetch a single early warning including its reference and status.
// @Tags EarlyWarning
// @Accept json
// @Produce json
// @Param id path string true "Early Warning ID"
// @Success 200 {object} EarlyWarningResponse
// @Failure 404 {object} ErrorResponse
// @Router /early-warnings/{id} [get]
func (handler *earlyWarningHandler) GetByID(ctx *gin.Context) {
	warningID := ctx.Param("id")

	warning, err := handler.warningService.GetByID(ctx, warningID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("early warning with id %s not found", warningID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toEarlyWarningResponse(warning))
}

// UpdateByID handles the PUT request to update an early warning by ID
// @Summary Update an early warning by ID
// @Description Update the description, status and meeting flag of an early warning. The reference cannot change.
// @Tags EarlyWarning
// @Accept json
// @Produce json
// @Param id path string true "Early Warning ID"
// @Param requestBody body UpdateEarlyWarningRequest true "Early Warning Data"
// @Success 200 {object} EarlyWarningResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /early-warnings/{id} [put]
func (handler *earlyWarningHandler) UpdateByID(ctx *gin.Context) {
	warningID := ctx.Param("id")

	var request UpdateEarlyWarningRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid early warning data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.warningService.GetByID(ctx, warningID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("early warning with id %s not found", warningID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Description = request.Description
	existing.Status = request.Status
	existing.MeetingRequired = request.MeetingRequired

	if err := handler.warningService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating early warning: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toEarlyWarningResponse(existing))
}

// DeleteByID handles the DELETE request to remove an early warning by ID
// @Summary Delete an early warning by ID
// @Description Delete an early warning notice.
// @Tags EarlyWarning
// @Accept json
// @Produce json
// @Param id path string true "Early Warning ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /early-warnings/{id} [delete]
func (handler *earlyWarningHandler) DeleteByID(ctx *gin.Context) {
	warningID := ctx.Param("id")

	if err := handler.warningService.DeleteByID(ctx, warningID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting early warning with id %s: %v", warningID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CompensationEventHandler defines the interface for handling compensation event operations
type CompensationEventHandler interface {
	Raise(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type compensationEventHandler struct {
	eventService notices.CompensationEventService
}

// NewCompensationEventHandler creates a new CompensationEventHandler
func NewCompensationEventHandler(eventService notices.CompensationEventService) CompensationEventHandler {
	return &compensationEventHandler{
		eventService: eventService,
	}
}

func toCompensationEventResponse(event *notices.CompensationEvent) CompensationEventResponse {
	return CompensationEventResponse{
		ID:             event.ID,
		ProjectID:      event.ProjectID,
		Reference:      event.Reference,
		ClauseRef:      event.ClauseRef,
		Description:    event.Description,
		Status:         event.Status,
		EstimatedValue: event.EstimatedValue,
		RaisedBy:       event.RaisedBy,
		RaisedAt:       event.RaisedAt,
		ResponseDue:    event.ResponseDue,
	}
}

// Raise handles the POST request to raise a compensation event
// @Summary Raise a new compensation event
// @Description Raise an NEC4 compensation event against a project. The reference is assigned sequentially per project.
// @Tags CompensationEvent
// @Accept json
// @Produce json
// @Param requestBody body RaiseCompensationEventRequest true "Compensation Event Data"
// @Success 201 {object} CompensationEventResponse
// @Failure 400 {object} ErrorResponse
// @Router /compensation-events [post]
func (handler *compensationEventHandler) Raise(ctx *gin.Context) {
	var request RaiseCompensationEventRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid compensation event data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	event := &notices.CompensationEvent{
		ProjectID:      request.ProjectID,
		ClauseRef:      request.ClauseRef,
		Description:    request.Description,
		EstimatedValue: request.EstimatedValue,
		RaisedBy:       request.RaisedBy,
		ResponseDue:    request.ResponseDue,
	}

	raised, err := handler.eventService.Raise(ctx, event)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error raising compensation event: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toCompensationEventResponse(raised))
}

// List handles the GET request to list compensation events with optional query parameters
// @Summary List compensation events based on query parameters
// @Description Fetch compensation events filtered by project, status and raise date, with pagination and sorting options.
// @Tags CompensationEvent
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param status query string false "Compensation Event Status"
// @Param raisedAt query string false "Raised Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CompensationEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /compensation-events [get]
func (handler *compensationEventHandler) List(ctx *gin.Context) {
	query := notices.NewNoticeQuery()
	applyNoticeQueryParams(ctx, query)

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	list, err := handler.eventService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []CompensationEventResponse{}
	for _, event := range list {
		listResponse = append(listResponse, toCompensationEventResponse(event))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a compensation event by ID
// @Summary Retrieve a compensation event by ID
// @Description Fetch a single compensation event including its clause reference and assessment status.
// @Tags CompensationEvent
// @Accept json
// @Produce json
// @Param id path string true "Compensation Event ID"
// @Success 200 {object} CompensationEventResponse
// @Failure 404 {object} ErrorResponse
// @Router /compensation-events/{id} [get]
func (handler *compensationEventHandler) GetByID(ctx *gin.Context) {
	eventID := ctx.Param("id")

	event, err := handler.eventService.GetByID(ctx, eventID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("compensation event with id %s not found", eventID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toCompensationEventResponse(event))
}

// UpdateByID handles the PUT request to update a compensation event by ID
// @Summary Update a compensation event by ID
// @Description Update the clause reference, description, status and valuation of a compensation event. The reference cannot change.
// @Tags CompensationEvent
// @Accept json
// @Produce json
// @Param id path string true "Compensation Event ID"
// @Param requestBody body UpdateCompensationEventRequest true "Compensation Event Data"
// @Success 200 {object} CompensationEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /compensation-events/{id} [put]
func (handler *compensationEventHandler) UpdateByID(ctx *gin.Context) {
	eventID := ctx.Param("id")

	var request UpdateCompensationEventRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid compensation event data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.eventService.GetByID(ctx, eventID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("compensation event with id %s not found", eventID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.ClauseRef = request.ClauseRef
	existing.Description = request.Description
	existing.Status = request.Status
	existing.EstimatedValue = request.EstimatedValue
	existing.ResponseDue = request.ResponseDue

	if err := handler.eventService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating compensation event: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toCompensationEventResponse(existing))
}

// DeleteByID handles the DELETE request to remove a compensation event by ID
// @Summary Delete a compensation event by ID
// @Description Delete a compensation event notice.
// @Tags CompensationEvent
// @Accept json
// @Produce json
// @Param id path string true "Compensation Event ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /compensation-events/{id} [delete]
func (handler *compensationEventHandler) DeleteByID(ctx *gin.Context) {
	eventID := ctx.Param("id")

	if err := handler.eventService.DeleteByID(ctx, eventID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting compensation event with id %s: %v", eventID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
