package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"

	"github.com/gin-gonic/gin"
)

// EmailHandler defines the interface for handling classified inbound email operations
type EmailHandler interface {
	Record(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type emailHandler struct {
	emailService mail.EmailIntakeService
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(emailService mail.EmailIntakeService) EmailHandler {
	return &emailHandler{
		emailService: emailService,
	}
}

func toEmailResponse(email *mail.InboundEmail) EmailResponse {
	return EmailResponse{
		ID:             email.ID,
		ProjectID:      email.ProjectID,
		From:           email.From,
		Subject:        email.Subject,
		Body:           email.Body,
		Classification: email.Classification,
		Confidence:     email.Confidence,
		ReceivedAt:     email.ReceivedAt,
		ProcessedAt:    email.ProcessedAt,
	}
}

// Record handles the POST request to record a classified inbound email
// @Summary Record a classified inbound email
// @Description Store a classified email and publish an email.classified event for notification fan-out.
// @Tags Email
// @Accept json
// @Produce json
// @Param requestBody body RecordEmailRequest true "Email Data"
// @Success 201 {object} EmailResponse
// @Failure 400 {object} ErrorResponse
// @Router /emails [post]
func (handler *emailHandler) Record(ctx *gin.Context) {
	var request RecordEmailRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid email data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	receivedAt := request.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	email := &mail.InboundEmail{
		ProjectID:      request.ProjectID,
		From:           request.From,
		Subject:        request.Subject,
		Body:           request.Body,
		Classification: request.Classification,
		Confidence:     request.Confidence,
		ReceivedAt:     receivedAt,
	}

	created, err := handler.emailService.Record(ctx, email)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error recording email: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toEmailResponse(created))
}

// List handles the GET request to list inbound emails with optional query parameters
// @Summary List inbound emails based on query parameters
// @Description Fetch classified emails filtered by project and classification, with pagination and sorting options.
// @Tags Email
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param classification query string false "Classification"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} EmailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /emails [get]
func (handler *emailHandler) List(ctx *gin.Context) {
	query := mail.NewEmailQuery()

	if projectID := ctx.Query("projectId"); len(projectID) > 0 {
		query.ProjectID = projectID
	}

	if classification := ctx.Query("classification"); len(classification) > 0 {
		query.Classification = classification
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

	list, err := handler.emailService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []EmailResponse{}
	for _, email := range list {
		listResponse = append(listResponse, toEmailResponse(email))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an inbound email by ID
// @Summary Retrieve an inbound email by ID
// @Description Fetch a single classified email including its body and classification confidence.
// @Tags Email
// @Accept json
// @Produce json
// @Param id path string true "Email ID"
// @Success 200 {object} EmailResponse
// @Failure 404 {object} ErrorResponse
// @Router /emails/{id} [get]
func (handler *emailHandler) GetByID(ctx *gin.Context) {
	emailID := ctx.Param("id")

	email, err := handler.emailService.GetByID(ctx, emailID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("email with id %s not found", emailID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toEmailResponse(email))
}
