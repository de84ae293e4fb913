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

	"github.com/wesrioswart/nervecontract/internal/domain/notices"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEarlyWarningHandler_Raise_Success(t *testing.T) {
	mockWarningService := new(MockEarlyWarningService)

	handler := NewEarlyWarningHandler(mockWarningService)

	warning := &notices.EarlyWarning{
		ID:          "8a1f3d2e-6b4c-4e9f-8d21-3c5a7b9e0f14",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		Reference:   "EW-001",
		Description: "Ground conditions differ from borehole logs",
		RaisedBy:    "site.agent@westport.example",
		Status:      notices.EarlyWarningStatusOpen,
		RaisedAt:    time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "description": "Ground conditions differ from borehole logs", "raised_by": "site.agent@westport.example"}`

	mockWarningService.
		On("Raise", mock.Anything, mock.AnythingOfType("*notices.EarlyWarning")).
		Return(warning, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/early-warnings", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Raise(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "EW-001")
	mockWarningService.AssertExpectations(t)
}

func TestEarlyWarningHandler_Raise_UnknownProject(t *testing.T) {
	mockWarningService := new(MockEarlyWarningService)

	handler := NewEarlyWarningHandler(mockWarningService)

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "description": "Ground conditions differ from borehole logs", "raised_by": "site.agent@westport.example"}`

	mockWarningService.
		On("Raise", mock.Anything, mock.AnythingOfType("*notices.EarlyWarning")).
		Return(nil, errors.New("project with ID 4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21 not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/early-warnings", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Raise(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockWarningService.AssertExpectations(t)
}

func TestEarlyWarningHandler_Raise_MissingDescription(t *testing.T) {
	mockWarningService := new(MockEarlyWarningService)

	handler := NewEarlyWarningHandler(mockWarningService)

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "raised_by": "site.agent@westport.example"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/early-warnings", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Raise(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockWarningService.AssertNotCalled(t, "Raise")
}

func TestEarlyWarningHandler_List_Success(t *testing.T) {
	mockWarningService := new(MockEarlyWarningService)

	handler := NewEarlyWarningHandler(mockWarningService)

	warning := &notices.EarlyWarning{
		ID:          "8a1f3d2e-6b4c-4e9f-8d21-3c5a7b9e0f14",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		Reference:   "EW-001",
		Description: "Ground conditions differ from borehole logs",
		RaisedBy:    "site.agent@westport.example",
		Status:      notices.EarlyWarningStatusOpen,
		RaisedAt:    time.Now(),
	}

	mockWarningService.
		On("List", mock.Anything, mock.Anything).
		Return([]*notices.EarlyWarning{warning}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/early-warnings?projectId=4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21&status=open", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EW-001")
	mockWarningService.AssertExpectations(t)
}

func TestCompensationEventHandler_Raise_Success(t *testing.T) {
	mockEventService := new(MockCompensationEventService)

	handler := NewCompensationEventHandler(mockEventService)

	event := &notices.CompensationEvent{
		ID:             "7c2e4f1a-5d3b-4a8e-9f06-1b2c3d4e5f60",
		ProjectID:      "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		Reference:      "CE-001",
		ClauseRef:      "60.1(12)",
		Description:    "Unforeseen physical conditions at CH 2+400",
		Status:         notices.CompensationEventStatusNotified,
		EstimatedValue: 48500,
		RaisedBy:       "pm@westport.example",
		RaisedAt:       time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "clause_ref": "60.1(12)", "description": "Unforeseen physical conditions at CH 2+400", "estimated_value": 48500, "raised_by": "pm@westport.example"}`

	mockEventService.
		On("Raise", mock.Anything, mock.AnythingOfType("*notices.CompensationEvent")).
		Return(event, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/compensation-events", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Raise(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "CE-001")
	assert.Contains(t, w.Body.String(), "60.1(12)")
	mockEventService.AssertExpectations(t)
}

func TestCompensationEventHandler_UpdateByID_Success(t *testing.T) {
	mockEventService := new(MockCompensationEventService)

	handler := NewCompensationEventHandler(mockEventService)

	event := &notices.CompensationEvent{
		ID:             "7c2e4f1a-5d3b-4a8e-9f06-1b2c3d4e5f60",
		ProjectID:      "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		Reference:      "CE-001",
		ClauseRef:      "60.1(12)",
		Description:    "Unforeseen physical conditions at CH 2+400",
		Status:         notices.CompensationEventStatusNotified,
		EstimatedValue: 48500,
		RaisedBy:       "pm@westport.example",
		RaisedAt:       time.Now(),
	}

	requestBody := `{"clause_ref": "60.1(12)", "description": "Unforeseen physical conditions at CH 2+400", "status": "quotation_due", "estimated_value": 52000}`

	mockEventService.
		On("GetByID", mock.Anything, event.ID).
		Return(event, nil)
	mockEventService.
		On("UpdateByID", mock.Anything, mock.AnythingOfType("*notices.CompensationEvent")).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/compensation-events/"+event.ID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: event.ID}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quotation_due")
	assert.Contains(t, w.Body.String(), "CE-001")
	mockEventService.AssertExpectations(t)
}

func TestCompensationEventHandler_GetByID_NotFound(t *testing.T) {
	mockEventService := new(MockCompensationEventService)

	handler := NewCompensationEventHandler(mockEventService)

	mockEventService.
		On("GetByID", mock.Anything, "missing-id").
		Return(nil, errors.New("compensation event with ID missing-id not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/compensation-events/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockEventService.AssertExpectations(t)
}
