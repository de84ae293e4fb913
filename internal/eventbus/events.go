package eventbus

import (
	"github.com/wesrioswart/nervecontract/internal/domain/mail"
	"github.com/wesrioswart/nervecontract/internal/domain/notices"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
)

// EmailClassifiedPayload accompanies the email.classified event.
type EmailClassifiedPayload struct {
	Email *mail.InboundEmail
}

// EarlyWarningRaisedPayload accompanies the early_warning.raised event.
type EarlyWarningRaisedPayload struct {
	Warning *notices.EarlyWarning
}

// CompensationEventRaisedPayload accompanies the compensation_event.raised event.
type CompensationEventRaisedPayload struct {
	Event *notices.CompensationEvent
}

// NotificationCreatedPayload accompanies the notification.created event.
type NotificationCreatedPayload struct {
	Notification *notifications.Notification
}
