package notifications

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Notification kind constants
const (
	KindEmailClassified         = "email_classified"
	KindEarlyWarningRaised      = "early_warning_raised"
	KindCompensationEventRaised = "compensation_event_raised"
)

// Notification entity represents a fan-out notification produced by the event
// bus. A nil UserID means the notification is broadcast to all users.
type Notification struct {
	ID         string    `validate:"required,uuid4"`
	UserID     *string   `validate:"omitempty,uuid4"`
	Kind       string    `validate:"required,min=1,max=100"`
	Title      string    `validate:"required,min=1,max=255"`
	Body       string    `validate:"omitempty"`
	SourceType string    `validate:"required,min=1,max=100"`
	SourceID   string    `validate:"required,min=1,max=100"`
	Read       bool
	CreatedAt  time.Time `validate:"required"`
}

// Validate for validating the Notification struct
func (n *Notification) Validate() error {
	validate := validator.New()

	err := validate.Struct(n)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NotificationQuery holds filter and pagination options for listing notifications
type NotificationQuery struct {
	UserID     string `validate:"omitempty,uuid4"`
	UnreadOnly bool
	Kind       string
	SortBy     string `validate:"omitempty,oneof=created_at kind"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
	Limit      int    `validate:"omitempty,min=1,max=500"`
	Offset     int    `validate:"omitempty,min=0"`
}

// NewNotificationQuery creates a NotificationQuery with default pagination
func NewNotificationQuery() *NotificationQuery {
	return &NotificationQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the NotificationQuery struct
func (q *NotificationQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for NotificationQuery: %w", err)
	}

	return nil
}
