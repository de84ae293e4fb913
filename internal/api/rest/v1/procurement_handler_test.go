//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/procurement"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSupplierHandler_Create_Success(t *testing.T) {
	mockSupplierService := new(MockSupplierService)

	handler := NewSupplierHandler(mockSupplierService)

	supplier := &procurement.Supplier{
		ID:           "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e",
		Name:         "Aggregate & Plant Ltd",
		ContactEmail: "orders@aggregateplant.example",
		GPSMACSCode:  "M-204",
		Approved:     true,
		CreatedAt:    time.Now(),
	}

	requestBody := `{"name": "Aggregate & Plant Ltd", "contact_email": "orders@aggregateplant.example", "gpsmacs_code": "M-204", "approved": true}`

	mockSupplierService.
		On("Create", mock.Anything, mock.AnythingOfType("*procurement.Supplier")).
		Return(supplier, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/suppliers", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Aggregate & Plant Ltd")
	mockSupplierService.AssertExpectations(t)
}

func TestSupplierHandler_Create_InvalidEmail(t *testing.T) {
	mockSupplierService := new(MockSupplierService)

	handler := NewSupplierHandler(mockSupplierService)

	requestBody := `{"name": "Aggregate & Plant Ltd", "contact_email": "not-an-email"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/suppliers", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockSupplierService.AssertNotCalled(t, "Create")
}

func TestRequisitionHandler_Create_Success(t *testing.T) {
	mockRequisitionService := new(MockRequisitionService)

	handler := NewRequisitionHandler(mockRequisitionService)

	requisition := &procurement.PurchaseRequisition{
		ID:          "3c8d7e6f-5a4b-4c3d-9e2f-0a1b2c3d4e5f",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		SupplierID:  "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e",
		Reference:   "PR-001",
		Description: "Type 1 sub-base aggregate",
		GPSMACSCode: "M-204",
		Quantity:    120,
		UnitCost:    385.50,
		TotalCost:   46260,
		Status:      procurement.RequisitionStatusDraft,
		RequestedBy: "qs@westport.example",
		CreatedAt:   time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "supplier_id": "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e", "description": "Type 1 sub-base aggregate", "gpsmacs_code": "M-204", "quantity": 120, "unit_cost": 385.50, "requested_by": "qs@westport.example"}`

	mockRequisitionService.
		On("Create", mock.Anything, mock.AnythingOfType("*procurement.PurchaseRequisition")).
		Return(requisition, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/requisitions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "PR-001")
	assert.Contains(t, w.Body.String(), "46260")
	mockRequisitionService.AssertExpectations(t)
}

func TestRequisitionHandler_Create_ZeroQuantity(t *testing.T) {
	mockRequisitionService := new(MockRequisitionService)

	handler := NewRequisitionHandler(mockRequisitionService)

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "supplier_id": "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e", "description": "Type 1 sub-base aggregate", "quantity": 0, "unit_cost": 385.50, "requested_by": "qs@westport.example"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/requisitions", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockRequisitionService.AssertNotCalled(t, "Create")
}

func TestRequisitionHandler_UpdateByID_InvalidTransition(t *testing.T) {
	mockRequisitionService := new(MockRequisitionService)

	handler := NewRequisitionHandler(mockRequisitionService)

	requisition := &procurement.PurchaseRequisition{
		ID:          "3c8d7e6f-5a4b-4c3d-9e2f-0a1b2c3d4e5f",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		SupplierID:  "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e",
		Reference:   "PR-001",
		Description: "Type 1 sub-base aggregate",
		Quantity:    120,
		UnitCost:    385.50,
		TotalCost:   46260,
		Status:      procurement.RequisitionStatusDraft,
		RequestedBy: "qs@westport.example",
		CreatedAt:   time.Now(),
	}

	requestBody := `{"description": "Type 1 sub-base aggregate", "quantity": 120, "unit_cost": 385.50, "status": "delivered"}`

	mockRequisitionService.
		On("GetByID", mock.Anything, requisition.ID).
		Return(requisition, nil)
	mockRequisitionService.
		On("UpdateByID", mock.Anything, mock.AnythingOfType("*procurement.PurchaseRequisition")).
		Return(errors.New("invalid status transition from draft to delivered"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/requisitions/"+requisition.ID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: requisition.ID}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status transition")
	mockRequisitionService.AssertExpectations(t)
}

func TestHireHandler_Create_Success(t *testing.T) {
	mockHireService := new(MockHireService)

	handler := NewHireHandler(mockHireService)

	hire := &procurement.EquipmentHire{
		ID:          "5e4f3a2b-1c0d-4e9f-8a7b-6c5d4e3f2a1b",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		SupplierID:  "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e",
		Reference:   "EH-001",
		Description: "20t excavator",
		WeeklyRate:  1450,
		Status:      procurement.HireStatusRequested,
		CreatedAt:   time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "supplier_id": "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e", "description": "20t excavator", "weekly_rate": 1450}`

	mockHireService.
		On("Create", mock.Anything, mock.AnythingOfType("*procurement.EquipmentHire")).
		Return(hire, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/hires", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "EH-001")
	mockHireService.AssertExpectations(t)
}

func TestHireHandler_List_Success(t *testing.T) {
	mockHireService := new(MockHireService)

	handler := NewHireHandler(mockHireService)

	hire := &procurement.EquipmentHire{
		ID:          "5e4f3a2b-1c0d-4e9f-8a7b-6c5d4e3f2a1b",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		SupplierID:  "2b9c8d7e-6f5a-4b3c-8d2e-1f0a9b8c7d6e",
		Reference:   "EH-001",
		Description: "20t excavator",
		WeeklyRate:  1450,
		Status:      procurement.HireStatusOnHire,
		CreatedAt:   time.Now(),
	}

	mockHireService.
		On("List", mock.Anything, mock.Anything).
		Return([]*procurement.EquipmentHire{hire}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/hires?status=on_hire", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EH-001")
	mockHireService.AssertExpectations(t)
}
