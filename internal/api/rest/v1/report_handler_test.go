//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportHandler_GenerateProjectSummary_Success(t *testing.T) {
	mockReportService := new(MockReportService)

	handler := NewReportHandler(mockReportService)

	mockReportService.
		On("GenerateProjectSummary", mock.Anything, "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21").
		Return([]byte("%PDF-1.4 summary"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects/4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21/summary.pdf", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21"}}

	handler.GenerateProjectSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "project-summary-")
	assert.Contains(t, w.Body.String(), "%PDF")
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_GenerateProjectSummary_UnknownProject(t *testing.T) {
	mockReportService := new(MockReportService)

	handler := NewReportHandler(mockReportService)

	mockReportService.
		On("GenerateProjectSummary", mock.Anything, "missing-id").
		Return(nil, errors.New("project with ID missing-id not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects/missing-id/summary.pdf", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.GenerateProjectSummary(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_GenerateProjectSummary_RendererFailure(t *testing.T) {
	mockReportService := new(MockReportService)

	handler := NewReportHandler(mockReportService)

	mockReportService.
		On("GenerateProjectSummary", mock.Anything, "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21").
		Return(nil, errors.New("failed to render project summary: browser closed"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/projects/4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21/summary.pdf", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21"}}

	handler.GenerateProjectSummary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error generating summary")
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_CaptureDashboard_Success(t *testing.T) {
	mockReportService := new(MockReportService)

	handler := NewReportHandler(mockReportService)

	mockReportService.
		On("CaptureDashboard", mock.Anything, "https://dashboard.westport.example/projects").
		Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	requestBody := `{"url": "https://dashboard.westport.example/projects"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/reports/dashboard-capture", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CaptureDashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockReportService.AssertExpectations(t)
}

func TestReportHandler_CaptureDashboard_InvalidURL(t *testing.T) {
	mockReportService := new(MockReportService)

	handler := NewReportHandler(mockReportService)

	requestBody := `{"url": "not a url"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/reports/dashboard-capture", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.CaptureDashboard(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockReportService.AssertNotCalled(t, "CaptureDashboard")
}
