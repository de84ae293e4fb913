package notifications

import (
	"context"
)

// NotificationService defines methods for reading and acknowledging
// notifications. Notifications are created only by event-bus handlers.
type NotificationService interface {
	// List retrieves notifications considering a query filter when set.
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, error)

	// GetByID retrieves a notification by its unique ID.
	GetByID(ctx context.Context, notificationID string) (*Notification, error)

	// MarkRead marks a notification as read.
	MarkRead(ctx context.Context, notificationID string) error

	// DeleteByID deletes a notification by ID.
	DeleteByID(ctx context.Context, notificationID string) error
}

// NotificationRepository defines the interface for Notification-related persistence operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *Notification) error
	List(ctx context.Context, query *NotificationQuery) ([]*Notification, error)
	GetByID(ctx context.Context, notificationID string) (*Notification, error)
	UpdateByID(ctx context.Context, notification *Notification) error
	DeleteByID(ctx context.Context, notificationID string) error
}
