package v1

import (
	"fmt"
	"net/http"

	"github.com/wesrioswart/nervecontract/internal/domain/procurement"

	"github.com/gin-gonic/gin"
)

// SupplierHandler defines the interface for handling supplier-related operations
type SupplierHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type supplierHandler struct {
	supplierService procurement.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService procurement.SupplierService) SupplierHandler {
	return &supplierHandler{
		supplierService: supplierService,
	}
}

func toSupplierResponse(supplier *procurement.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           supplier.ID,
		Name:         supplier.Name,
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		GPSMACSCode:  supplier.GPSMACSCode,
		Approved:     supplier.Approved,
		CreatedAt:    supplier.CreatedAt,
	}
}

// Create handles the POST request to register a supplier
// @Summary Register a new supplier
// @Description Register an approved or prospective supplier.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param requestBody body CreateSupplierRequest true "Supplier Data"
// @Success 201 {object} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Router /suppliers [post]
func (handler *supplierHandler) Create(ctx *gin.Context) {
	var request CreateSupplierRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid supplier data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	supplier := &procurement.Supplier{
		Name:         request.Name,
		ContactEmail: request.ContactEmail,
		Phone:        request.Phone,
		GPSMACSCode:  request.GPSMACSCode,
		Approved:     request.Approved,
	}

	created, err := handler.supplierService.Create(ctx, supplier)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating supplier: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toSupplierResponse(created))
}

// List handles the GET request to list suppliers with optional query parameters
// @Summary List suppliers based on query parameters
// @Description Fetch suppliers filtered by name, cost code and approval, with pagination and sorting options.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param name query string false "Supplier Name"
// @Param gpsmacsCode query string false "Cost Code Category"
// @Param approvedOnly query bool false "Approved suppliers only"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /suppliers [get]
func (handler *supplierHandler) List(ctx *gin.Context) {
	query := procurement.NewSupplierQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	if code := ctx.Query("gpsmacsCode"); len(code) > 0 {
		query.GPSMACSCode = code
	}

	if approvedOnly := ctx.Query("approvedOnly"); approvedOnly == "true" {
		query.ApprovedOnly = true
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

	list, err := handler.supplierService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []SupplierResponse{}
	for _, supplier := range list {
		listResponse = append(listResponse, toSupplierResponse(supplier))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a supplier by ID
// @Summary Retrieve a supplier by ID
// @Description Fetch a single supplier including contact details and approval state.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Router /suppliers/{id} [get]
func (handler *supplierHandler) GetByID(ctx *gin.Context) {
	supplierID := ctx.Param("id")

	supplier, err := handler.supplierService.GetByID(ctx, supplierID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("supplier with id %s not found", supplierID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSupplierResponse(supplier))
}

// UpdateByID handles the PUT request to update a supplier by ID
// @Summary Update a supplier by ID
// @Description Update the contact details and approval state of a supplier.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param requestBody body UpdateSupplierRequest true "Supplier Data"
// @Success 200 {object} SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /suppliers/{id} [put]
func (handler *supplierHandler) UpdateByID(ctx *gin.Context) {
	supplierID := ctx.Param("id")

	var request UpdateSupplierRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid supplier data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.supplierService.GetByID(ctx, supplierID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("supplier with id %s not found", supplierID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Name = request.Name
	existing.ContactEmail = request.ContactEmail
	existing.Phone = request.Phone
	existing.GPSMACSCode = request.GPSMACSCode
	existing.Approved = request.Approved

	if err := handler.supplierService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating supplier: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toSupplierResponse(existing))
}

// DeleteByID handles the DELETE request to remove a supplier by ID
// @Summary Delete a supplier by ID
// @Description Delete a supplier record.
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /suppliers/{id} [delete]
func (handler *supplierHandler) DeleteByID(ctx *gin.Context) {
	supplierID := ctx.Param("id")

	if err := handler.supplierService.DeleteByID(ctx, supplierID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting supplier with id %s: %v", supplierID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RequisitionHandler defines the interface for handling purchase requisition operations
type RequisitionHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type requisitionHandler struct {
	requisitionService procurement.RequisitionService
}

// NewRequisitionHandler creates a new RequisitionHandler
func NewRequisitionHandler(requisitionService procurement.RequisitionService) RequisitionHandler {
	return &requisitionHandler{
		requisitionService: requisitionService,
	}
}

func toRequisitionResponse(requisition *procurement.PurchaseRequisition) RequisitionResponse {
	return RequisitionResponse{
		ID:          requisition.ID,
		ProjectID:   requisition.ProjectID,
		SupplierID:  requisition.SupplierID,
		Reference:   requisition.Reference,
		Description: requisition.Description,
		GPSMACSCode: requisition.GPSMACSCode,
		Quantity:    requisition.Quantity,
		UnitCost:    requisition.UnitCost,
		TotalCost:   requisition.TotalCost,
		Status:      requisition.Status,
		RequestedBy: requisition.RequestedBy,
		NeededBy:    requisition.NeededBy,
		CreatedAt:   requisition.CreatedAt,
	}
}

// Create handles the POST request to register a purchase requisition
// @Summary Register a new purchase requisition
// @Description Register a purchase requisition against a project and supplier. The reference is assigned sequentially per project and the total cost is computed.
// @Tags Requisition
// @Accept json
// @Produce json
// @Param requestBody body CreateRequisitionRequest true "Requisition Data"
// @Success 201 {object} RequisitionResponse
// @Failure 400 {object} ErrorResponse
// @Router /requisitions [post]
func (handler *requisitionHandler) Create(ctx *gin.Context) {
	var request CreateRequisitionRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid requisition data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	requisition := &procurement.PurchaseRequisition{
		ProjectID:   request.ProjectID,
		SupplierID:  request.SupplierID,
		Description: request.Description,
		GPSMACSCode: request.GPSMACSCode,
		Quantity:    request.Quantity,
		UnitCost:    request.UnitCost,
		RequestedBy: request.RequestedBy,
		NeededBy:    request.NeededBy,
	}

	created, err := handler.requisitionService.Create(ctx, requisition)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating requisition: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toRequisitionResponse(created))
}

// List handles the GET request to list purchase requisitions with optional query parameters
// @Summary List purchase requisitions based on query parameters
// @Description Fetch requisitions filtered by project, supplier, status and cost code, with pagination and sorting options.
// @Tags Requisition
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param supplierId query string false "Supplier ID"
// @Param status query string false "Requisition Status"
// @Param gpsmacsCode query string false "Cost Code Category"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} RequisitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requisitions [get]
func (handler *requisitionHandler) List(ctx *gin.Context) {
	query := procurement.NewRequisitionQuery()

	if projectID := ctx.Query("projectId"); len(projectID) > 0 {
		query.ProjectID = projectID
	}

	if supplierID := ctx.Query("supplierId"); len(supplierID) > 0 {
		query.SupplierID = supplierID
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if code := ctx.Query("gpsmacsCode"); len(code) > 0 {
		query.GPSMACSCode = code
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

	list, err := handler.requisitionService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []RequisitionResponse{}
	for _, requisition := range list {
		listResponse = append(listResponse, toRequisitionResponse(requisition))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a purchase requisition by ID
// @Summary Retrieve a purchase requisition by ID
// @Description Fetch a single purchase requisition including its reference, status and cost breakdown.
// @Tags Requisition
// @Accept json
// @Produce json
// @Param id path string true "Requisition ID"
// @Success 200 {object} RequisitionResponse
// @Failure 404 {object} ErrorResponse
// @Router /requisitions/{id} [get]
func (handler *requisitionHandler) GetByID(ctx *gin.Context) {
	requisitionID := ctx.Param("id")

	requisition, err := handler.requisitionService.GetByID(ctx, requisitionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("requisition with id %s not found", requisitionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toRequisitionResponse(requisition))
}

// UpdateByID handles the PUT request to update a purchase requisition by ID
// @Summary Update a purchase requisition by ID
// @Description Update a requisition. Status changes must follow the allowed transition order and the total cost is recomputed.
// @Tags Requisition
// @Accept json
// @Produce json
// @Param id path string true "Requisition ID"
// @Param requestBody body UpdateRequisitionRequest true "Requisition Data"
// @Success 200 {object} RequisitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /requisitions/{id} [put]
func (handler *requisitionHandler) UpdateByID(ctx *gin.Context) {
	requisitionID := ctx.Param("id")

	var request UpdateRequisitionRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid requisition data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.requisitionService.GetByID(ctx, requisitionID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("requisition with id %s not found", requisitionID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Description = request.Description
	existing.GPSMACSCode = request.GPSMACSCode
	existing.Quantity = request.Quantity
	existing.UnitCost = request.UnitCost
	existing.Status = request.Status
	existing.NeededBy = request.NeededBy

	if err := handler.requisitionService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating requisition: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toRequisitionResponse(existing))
}

// DeleteByID handles the DELETE request to remove a purchase requisition by ID
// @Summary Delete a purchase requisition by ID
// @Description Delete a purchase requisition record.
// @Tags Requisition
// @Accept json
// @Produce json
// @Param id path string true "Requisition ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /requisitions/{id} [delete]
func (handler *requisitionHandler) DeleteByID(ctx *gin.Context) {
	requisitionID := ctx.Param("id")

	if err := handler.requisitionService.DeleteByID(ctx, requisitionID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting requisition with id %s: %v", requisitionID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HireHandler defines the interface for handling equipment hire operations
type HireHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type hireHandler struct {
	hireService procurement.HireService
}

// NewHireHandler creates a new HireHandler
func NewHireHandler(hireService procurement.HireService) HireHandler {
	return &hireHandler{
		hireService: hireService,
	}
}

func toHireResponse(hire *procurement.EquipmentHire) HireResponse {
	return HireResponse{
		ID:          hire.ID,
		ProjectID:   hire.ProjectID,
		SupplierID:  hire.SupplierID,
		Reference:   hire.Reference,
		Description: hire.Description,
		WeeklyRate:  hire.WeeklyRate,
		OnHireAt:    hire.OnHireAt,
		OffHireAt:   hire.OffHireAt,
		Status:      hire.Status,
		CreatedAt:   hire.CreatedAt,
	}
}

// Create handles the POST request to register an equipment hire
// @Summary Register a new equipment hire
// @Description Register a plant or equipment hire against a project and supplier.
// @Tags Hire
// @Accept json
// @Produce json
// @Param requestBody body CreateHireRequest true "Hire Data"
// @Success 201 {object} HireResponse
// @Failure 400 {object} ErrorResponse
// @Router /hires [post]
func (handler *hireHandler) Create(ctx *gin.Context) {
	var request CreateHireRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid hire data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	hire := &procurement.EquipmentHire{
		ProjectID:   request.ProjectID,
		SupplierID:  request.SupplierID,
		Description: request.Description,
		WeeklyRate:  request.WeeklyRate,
	}

	created, err := handler.hireService.Create(ctx, hire)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error creating hire: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, toHireResponse(created))
}

// List handles the GET request to list equipment hires with optional query parameters
// @Summary List equipment hires based on query parameters
// @Description Fetch hires filtered by project, supplier and status, with pagination and sorting options.
// @Tags Hire
// @Accept json
// @Produce json
// @Param projectId query string false "Project ID"
// @Param supplierId query string false "Supplier ID"
// @Param status query string false "Hire Status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} HireResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hires [get]
func (handler *hireHandler) List(ctx *gin.Context) {
	query := procurement.NewHireQuery()

	if projectID := ctx.Query("projectId"); len(projectID) > 0 {
		query.ProjectID = projectID
	}

	if supplierID := ctx.Query("supplierId"); len(supplierID) > 0 {
		query.SupplierID = supplierID
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
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

	list, err := handler.hireService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []HireResponse{}
	for _, hire := range list {
		listResponse = append(listResponse, toHireResponse(hire))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an equipment hire by ID
// @Summary Retrieve an equipment hire by ID
// @Description Fetch a single equipment hire including its on-hire and off-hire dates.
// @Tags Hire
// @Accept json
// @Produce json
// @Param id path string true "Hire ID"
// @Success 200 {object} HireResponse
// @Failure 404 {object} ErrorResponse
// @Router /hires/{id} [get]
func (handler *hireHandler) GetByID(ctx *gin.Context) {
	hireID := ctx.Param("id")

	hire, err := handler.hireService.GetByID(ctx, hireID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("hire with id %s not found", hireID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toHireResponse(hire))
}

// UpdateByID handles the PUT request to update an equipment hire by ID
// @Summary Update an equipment hire by ID
// @Description Update the rate, status and hire period of an equipment hire. The reference cannot change.
// @Tags Hire
// @Accept json
// @Produce json
// @Param id path string true "Hire ID"
// @Param requestBody body UpdateHireRequest true "Hire Data"
// @Success 200 {object} HireResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /hires/{id} [put]
func (handler *hireHandler) UpdateByID(ctx *gin.Context) {
	hireID := ctx.Param("id")

	var request UpdateHireRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid hire data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	existing, err := handler.hireService.GetByID(ctx, hireID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("hire with id %s not found", hireID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	existing.Description = request.Description
	existing.WeeklyRate = request.WeeklyRate
	existing.Status = request.Status
	existing.OnHireAt = request.OnHireAt
	existing.OffHireAt = request.OffHireAt

	if err := handler.hireService.UpdateByID(ctx, existing); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error updating hire: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toHireResponse(existing))
}

// DeleteByID handles the DELETE request to remove an equipment hire by ID
// @Summary Delete an equipment hire by ID
// @Description Delete an equipment hire record.
// @Tags Hire
// @Accept json
// @Produce json
// @Param id path string true "Hire ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /hires/{id} [delete]
func (handler *hireHandler) DeleteByID(ctx *gin.Context) {
	hireID := ctx.Param("id")

	if err := handler.hireService.DeleteByID(ctx, hireID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting hire with id %s: %v", hireID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
