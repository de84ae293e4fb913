package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// ProjectHandler defines the interface for handling project-related operations
type ProjectHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

func toProjectResponse(project *projects.Project) ProjectResponse {
	return ProjectResponse{
		ID:                project.ID,
		Name:              project.Name,
		ContractReference: project.ContractReference,
		ContractType:      project.ContractType,
		Client:            project.Client,
		StartDate:         project.StartDate,
		CompletionDate:    project.CompletionDate,
		Status:            project.Status,
		CreatedAt:         project.CreatedAt,
	}
}

// Create handles the POST request to register a project
// @Summary Register a new project
// @Description Register a construction contract under management.
// @Tags Project
// @Accept json
// @Produce json
// @Param requestBody body CreateProjectRequest true "Project Data"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Router /projects [post]
func (handler *projectHandler) Create(ctx *gin.Context) {
	var request CreateProjectRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid project data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	project := &projects.Project{
		Name:              request.Name,
		ContractReference: request.ContractReference,
		ContractType:      request.ContractType,
		Client:            request.Client,
		StartDate:         request.StartDate,
		CompletionDate:    request.CompletionDate,
		Status:            request.Status,
	}

	created, err := handler.projectService.Create(ctx, project)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating project: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(created))
}

// List handles the GET request to list projects with optional query parameters
// @Summary List projects based on query parameters
// @Description Fetch projects filtered by name, status and creation date, with pagination and sorting options.
// @Tags Project
// @Accept json
// @Produce json
// @Param name query string false "Project Name"
// @Param status query string false "Project Status"
// @Param createdAt query string false "Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects [get]
func (handler *projectHandler) List(ctx *gin.Context) {
	query := projects.NewProjectQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if createdAt := ctx.Query("createdAt"); len(createdAt) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, createdAt)
		if err == nil {
			query.CreatedAt = parsedTime
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

	list, err := handler.projectService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []ProjectResponse{}
	for _, project := range list {
		listResponse = append(listResponse, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a project by ID
// @Summary Retrieve a project by ID
// @Description Fetch a single project including contract details and status.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [get]
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	projectID := ctx.Param("id")

	project, err := handler.projectService.GetByID(ctx, projectID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("project with id %s not found", projectID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(project))
}

// UpdateByID handles the PUT request to update a project by ID
// @Summary Update a project by ID
// @Description Update the contract details and status of an existing project.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param requestBody body UpdateProjectRequest true "Project Data"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [put]
func (handler *projectHandler) UpdateByID(ctx *gin.Context) {
	projectID := ctx.Param("id")

	var request UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid project data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.projectService.GetByID(ctx, projectID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("project with id %s not found", projectID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Name = request.Name
	existing.ContractReference = request.ContractReference
	existing.ContractType = request.ContractType
	existing.Client = request.Client
	existing.StartDate = request.StartDate
	existing.CompletionDate = request.CompletionDate
	existing.Status = request.Status

	if err := handler.projectService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating project: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toProjectResponse(existing))
}

// DeleteByID handles the DELETE request to remove a project by ID
// @Summary Delete a project by ID
// @Description Delete a project and stop managing its contract records.
// @Tags Project
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /projects/{id} [delete]
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	projectID := ctx.Param("id")

	if err := handler.projectService.DeleteByID(ctx, projectID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting project with id %s: %v", projectID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
