package v1

import (
	"fmt"
	"net/http"

	"github.com/wesrioswart/nervecontract/internal/domain/notifications"

	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the interface for handling notification operations
type NotificationHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type notificationHandler struct {
	notificationService notifications.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService notifications.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

func toNotificationResponse(notification *notifications.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         notification.ID,
		UserID:     notification.UserID,
		Kind:       notification.Kind,
		Title:      notification.Title,
		Body:       notification.Body,
		SourceType: notification.SourceType,
		SourceID:   notification.SourceID,
		Read:       notification.Read,
		CreatedAt:  notification.CreatedAt,
	}
}

// List handles the GET request to list notifications with optional query parameters
// @Summary List notifications based on query parameters
// @Description Fetch notifications for a user including broadcasts, optionally restricted to unread ones.
// @Tags Notification
// @Accept json
// @Produce json
// @Param userId query string false "User ID"
// @Param unreadOnly query bool false "Unread notifications only"
// @Param kind query string false "Notification Kind"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications [get]
func (handler *notificationHandler) List(ctx *gin.Context) {
	query := notifications.NewNotificationQuery()

	if userID := ctx.Query("userId"); len(userID) > 0 {
		query.UserID = userID
	}

	if unreadOnly := ctx.Query("unreadOnly"); unreadOnly == "true" {
		query.UnreadOnly = true
	}

	if kind := ctx.Query("kind"); len(kind) > 0 {
		query.Kind = kind
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

	list, err := handler.notificationService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []NotificationResponse{}
	for _, notification := range list {
		listResponse = append(listResponse, toNotificationResponse(notification))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a notification by ID
// @Summary Retrieve a notification by ID
// @Description Fetch a single notification including its source reference.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id} [get]
func (handler *notificationHandler) GetByID(ctx *gin.Context) {
	notificationID := ctx.Param("id")

	notification, err := handler.notificationService.GetByID(ctx, notificationID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("notification with id %s not found", notificationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toNotificationResponse(notification))
}

// MarkRead handles the POST request to acknowledge a notification
// @Summary Mark a notification as read
// @Description Mark a notification as read. Marking an already-read notification has no effect.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResponse
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id}/read [post]
func (handler *notificationHandler) MarkRead(ctx *gin.Context) {
	notificationID := ctx.Param("id")

	if err := handler.notificationService.MarkRead(ctx, notificationID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("notification with id %s not found", notificationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	notification, err := handler.notificationService.GetByID(ctx, notificationID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("notification with id %s not found", notificationID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toNotificationResponse(notification))
}

// DeleteByID handles the DELETE request to remove a notification by ID
// @Summary Delete a notification by ID
// @Description Delete a notification record.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id} [delete]
func (handler *notificationHandler) DeleteByID(ctx *gin.Context) {
	notificationID := ctx.Param("id")

	if err := handler.notificationService.DeleteByID(ctx, notificationID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting notification with id %s: %v", notificationID, err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.Status(http.StatusNoContent)
}
