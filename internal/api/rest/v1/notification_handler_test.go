//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notifications"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotificationHandler_List_Success(t *testing.T) {
	mockNotificationService := new(MockNotificationService)

	handler := NewNotificationHandler(mockNotificationService)

	notification := &notifications.Notification{
		ID:         "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d",
		Kind:       notifications.KindEarlyWarningRaised,
		Title:      "Early warning EW-001 raised",
		Body:       "Ground conditions differ from borehole logs",
		SourceType: "early_warning",
		SourceID:   "8a1f3d2e-6b4c-4e9f-8d21-3c5a7b9e0f14",
		CreatedAt:  time.Now(),
	}

	mockNotificationService.
		On("List", mock.Anything, mock.Anything).
		Return([]*notifications.Notification{notification}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?unreadOnly=true", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EW-001")
	mockNotificationService.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_Success(t *testing.T) {
	mockNotificationService := new(MockNotificationService)

	handler := NewNotificationHandler(mockNotificationService)

	notification := &notifications.Notification{
		ID:         "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d",
		Kind:       notifications.KindEarlyWarningRaised,
		Title:      "Early warning EW-001 raised",
		SourceType: "early_warning",
		SourceID:   "8a1f3d2e-6b4c-4e9f-8d21-3c5a7b9e0f14",
		Read:       true,
		CreatedAt:  time.Now(),
	}

	mockNotificationService.
		On("MarkRead", mock.Anything, notification.ID).
		Return(nil)
	mockNotificationService.
		On("GetByID", mock.Anything, notification.ID).
		Return(notification, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/"+notification.ID+"/read", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: notification.ID}}

	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"read":true`)
	mockNotificationService.AssertExpectations(t)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	mockNotificationService := new(MockNotificationService)

	handler := NewNotificationHandler(mockNotificationService)

	mockNotificationService.
		On("MarkRead", mock.Anything, "missing-id").
		Return(errors.New("notification with ID missing-id not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/notifications/missing-id/read", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing-id"}}

	handler.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
	mockNotificationService.AssertExpectations(t)
}

func TestNotificationHandler_DeleteByID_Success(t *testing.T) {
	mockNotificationService := new(MockNotificationService)

	handler := NewNotificationHandler(mockNotificationService)

	mockNotificationService.
		On("DeleteByID", mock.Anything, "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/notifications/1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockNotificationService.AssertExpectations(t)
}
