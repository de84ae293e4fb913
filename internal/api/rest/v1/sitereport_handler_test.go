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

	"github.com/wesrioswart/nervecontract/internal/domain/sitereports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSiteReportHandler_Create_Success(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	report := &sitereports.DailySiteReport{
		ID:          "9f8e7d6c-5b4a-4392-8170-6e5d4c3b2a19",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		ReportDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Weather:     "Overcast, light rain from 14:00",
		LabourCount: 34,
		PlantCount:  9,
		Progress:    "Drainage runs 4 and 5 complete to CH 1+850",
		SubmittedBy: "site.agent@westport.example",
		CreatedAt:   time.Now(),
	}

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "report_date": "2026-03-02T00:00:00Z", "weather": "Overcast, light rain from 14:00", "labour_count": 34, "plant_count": 9, "progress": "Drainage runs 4 and 5 complete to CH 1+850", "submitted_by": "site.agent@westport.example"}`

	mockSiteReportService.
		On("Create", mock.Anything, mock.AnythingOfType("*sitereports.DailySiteReport")).
		Return(report, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/site-reports", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Drainage runs 4 and 5")
	mockSiteReportService.AssertExpectations(t)
}

func TestSiteReportHandler_Create_DuplicateDateConflict(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "report_date": "2026-03-02T00:00:00Z", "progress": "Drainage runs 4 and 5 complete to CH 1+850", "submitted_by": "site.agent@westport.example"}`

	mockSiteReportService.
		On("Create", mock.Anything, mock.AnythingOfType("*sitereports.DailySiteReport")).
		Return(nil, errors.New("a site report already exists for project 4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21 on 2026-03-02"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/site-reports", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	mockSiteReportService.AssertExpectations(t)
}

func TestSiteReportHandler_Create_MissingProgress(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	requestBody := `{"project_id": "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21", "report_date": "2026-03-02T00:00:00Z", "submitted_by": "site.agent@westport.example"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/site-reports", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockSiteReportService.AssertNotCalled(t, "Create")
}

func TestSiteReportHandler_UpdateByID_KeepsProjectAndDate(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	report := &sitereports.DailySiteReport{
		ID:          "9f8e7d6c-5b4a-4392-8170-6e5d4c3b2a19",
		ProjectID:   "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21",
		ReportDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Progress:    "Drainage runs 4 and 5 complete to CH 1+850",
		SubmittedBy: "site.agent@westport.example",
		CreatedAt:   time.Now(),
	}

	requestBody := `{"weather": "Clear", "labour_count": 36, "plant_count": 9, "progress": "Drainage run 6 started", "submitted_by": "site.agent@westport.example"}`

	mockSiteReportService.
		On("GetByID", mock.Anything, report.ID).
		Return(report, nil)
	mockSiteReportService.
		On("UpdateByID", mock.Anything, mock.MatchedBy(func(updated *sitereports.DailySiteReport) bool {
			return updated.ProjectID == "4f5a0f0a-9c62-4f8e-9a54-0f2b0c6d4e21" &&
				updated.ReportDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
		})).
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/site-reports/"+report.ID, bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: report.ID}}

	handler.UpdateByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Drainage run 6 started")
	mockSiteReportService.AssertExpectations(t)
}

func TestSiteReportHandler_List_NonNumericLimitRejected(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/site-reports?limit=abc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid limit parameter")
	mockSiteReportService.AssertNotCalled(t, "List")
}

func TestSiteReportHandler_List_NonNumericOffsetRejected(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/site-reports?offset=ten", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid offset parameter")
	mockSiteReportService.AssertNotCalled(t, "List")
}

func TestSiteReportHandler_List_NumericPaginationApplied(t *testing.T) {
	mockSiteReportService := new(MockSiteReportService)

	handler := NewSiteReportHandler(mockSiteReportService)

	mockSiteReportService.
		On("List", mock.Anything, mock.MatchedBy(func(query *sitereports.ReportQuery) bool {
			return query.Limit == 25 && query.Offset == 50
		})).
		Return([]*sitereports.DailySiteReport{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/site-reports?limit=25&offset=50", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSiteReportService.AssertExpectations(t)
}
