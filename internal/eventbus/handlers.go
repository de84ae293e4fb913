package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"
)

// RegisterNotificationHandlers wires the default event graph: each domain
// event stores a Notification through the repository and then publishes a
// notification.created follow-up event. Each repository write commits
// independently; there is no transaction spanning the emitted chain.
func RegisterNotificationHandlers(bus *Bus, repo notifications.NotificationRepository, log logger.Logger) {
	bus.Register(EventEmailClassified, func(ctx context.Context, payload interface{}) error {
		p, ok := payload.(EmailClassifiedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, EventEmailClassified)
		}

		notification := &notifications.Notification{
			ID:         uuid.New().String(),
			Kind:       notifications.KindEmailClassified,
			Title:      fmt.Sprintf("Email classified as %s", p.Email.Classification),
			Body:       p.Email.Subject,
			SourceType: "inbound_email",
			SourceID:   p.Email.ID,
			CreatedAt:  time.Now(),
		}

		if err := repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}

		log.Info("notification created for classified email ", p.Email.ID)
		bus.Emit(ctx, EventNotificationCreated, NotificationCreatedPayload{Notification: notification})
		return nil
	})

	bus.Register(EventEarlyWarningRaised, func(ctx context.Context, payload interface{}) error {
		p, ok := payload.(EarlyWarningRaisedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, EventEarlyWarningRaised)
		}

		notification := &notifications.Notification{
			ID:         uuid.New().String(),
			Kind:       notifications.KindEarlyWarningRaised,
			Title:      fmt.Sprintf("Early warning %s raised", p.Warning.Reference),
			Body:       p.Warning.Description,
			SourceType: "early_warning",
			SourceID:   p.Warning.ID,
			CreatedAt:  time.Now(),
		}

		if err := repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}

		log.Info("notification created for early warning ", p.Warning.Reference)
		bus.Emit(ctx, EventNotificationCreated, NotificationCreatedPayload{Notification: notification})
		return nil
	})

	bus.Register(EventCompensationEventRaised, func(ctx context.Context, payload interface{}) error {
		p, ok := payload.(CompensationEventRaisedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, EventCompensationEventRaised)
		}

		notification := &notifications.Notification{
			ID:         uuid.New().String(),
			Kind:       notifications.KindCompensationEventRaised,
			Title:      fmt.Sprintf("Compensation event %s raised under clause %s", p.Event.Reference, p.Event.ClauseRef),
			Body:       p.Event.Description,
			SourceType: "compensation_event",
			SourceID:   p.Event.ID,
			CreatedAt:  time.Now(),
		}

		if err := repo.Create(ctx, notification); err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}

		log.Info("notification created for compensation event ", p.Event.Reference)
		bus.Emit(ctx, EventNotificationCreated, NotificationCreatedPayload{Notification: notification})
		return nil
	})
}
