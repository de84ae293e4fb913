package app

import (
	"context"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"
)

// notificationService implements the NotificationService interface for reading
// and acknowledging notifications. Notifications are created only by event-bus
// handlers, never through this service.
type notificationService struct {
	notificationRepo notifications.NotificationRepository
	logger           logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo notifications.NotificationRepository, logger logger.Logger) (notifications.NotificationService, error) {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}, nil
}

// List retrieves notifications considering a query filter when set
func (s *notificationService) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, error) {
	if query == nil {
		query = notifications.NewNotificationQuery()
	}

	list, err := s.notificationRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// GetByID retrieves a notification by its unique ID
func (s *notificationService) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return notification, nil
}

// MarkRead marks a notification as read. Marking an already-read notification
// is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, notificationID string) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.Read {
		return nil
	}

	notification.Read = true
	if err := s.notificationRepo.UpdateByID(ctx, notification); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

// DeleteByID deletes a notification by ID
func (s *notificationService) DeleteByID(ctx context.Context, notificationID string) error {
	if err := s.notificationRepo.DeleteByID(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
