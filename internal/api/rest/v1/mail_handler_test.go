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

	"github.com/wesrioswart/nervecontract/internal/domain/mail"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEmailHandler_Record_Success(t *testing.T) {
	mockEmailService := new(MockEmailIntakeService)

	handler := NewEmailHandler(mockEmailService)

	projectID := "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21"
	email := &mail.InboundEmail{
		ID:             "6d5c4b3a-2918-4f7e-8a6b-5c4d3e2f1a09",
		ProjectID:      &projectID,
		From:           "subcontractor@groundworks.example",
		Subject:        "Notice of unforeseen ground conditions",
		Classification: mail.ClassificationEarlyWarning,
		Confidence:     0.92,
		ReceivedAt:     time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "from": "subcontractor@groundworks.example", "subject": "Notice of unforeseen ground conditions", "classification": "early_warning", "confidence": 0.92}`

	mockEmailService.
		On("Record", mock.Anything, mock.AnythingOfType("*mail.InboundEmail")).
		Return(email, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/emails", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "early_warning")
	mockEmailService.AssertExpectations(t)
}

func TestEmailHandler_Record_UnknownClassification(t *testing.T) {
	mockEmailService := new(MockEmailIntakeService)

	handler := NewEmailHandler(mockEmailService)

	requestBody := `{"from": "subcontractor@groundworks.example", "subject": "Notice", "classification": "spam"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/emails", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Record(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockEmailService.AssertNotCalled(t, "Record")
}

func TestEmailHandler_List_Success(t *testing.T) {
	mockEmailService := new(MockEmailIntakeService)

	handler := NewEmailHandler(mockEmailService)

	email := &mail.InboundEmail{
		ID:             "6d5c4b3a-2918-4f7e-8a6b-5c4d3e2f1a09",
		From:           "subcontractor@groundworks.example",
		Subject:        "Notice of unforeseen ground conditions",
		Classification: mail.ClassificationEarlyWarning,
		Confidence:     0.92,
		ReceivedAt:     time.Now(),
	}

	mockEmailService.
		On("List", mock.Anything, mock.Anything).
		Return([]*mail.InboundEmail{email}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/emails?classification=early_warning", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unforeseen ground conditions")
	mockEmailService.AssertExpectations(t)
}

func TestEmailHandler_GetByID_NotFound(t *testing.T) {
	mockEmailService := new(MockEmailIntakeService)

	handler := NewEmailHandler(mockEmailService)

	mockEmailService.
		On("GetByID", mock.Anything, "missing-id").
		Return(nil, errors.New("email with ID missing-id not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/emails/missing-id", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockEmailService.AssertExpectations(t)
}
