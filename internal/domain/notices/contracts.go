package notices

import (
	"context"
)

// EarlyWarningService defines methods for managing early warning notices.
type EarlyWarningService interface {
	// Raise registers a new early warning, assigns its project-sequential
	// reference and publishes an early_warning.raised event.
	Raise(ctx context.Context, warning *EarlyWarning) (*EarlyWarning, error)

	// List retrieves early warnings considering a query filter when set.
	List(ctx context.Context, query *NoticeQuery) ([]*EarlyWarning, error)

	// GetByID retrieves an early warning by its unique ID.
	GetByID(ctx context.Context, warningID string) (*EarlyWarning, error)

	// UpdateByID updates an existing early warning.
	UpdateByID(ctx context.Context, warning *EarlyWarning) error

	// DeleteByID deletes an early warning by ID.
	DeleteByID(ctx context.Context, warningID string) error
}

// CompensationEventService defines methods for managing compensation events.
type CompensationEventService interface {
	// Raise registers a new compensation event, assigns its project-sequential
	// reference and publishes a compensation_event.raised event.
	Raise(ctx context.Context, event *CompensationEvent) (*CompensationEvent, error)

	// List retrieves compensation events considering a query filter when set.
	List(ctx context.Context, query *NoticeQuery) ([]*CompensationEvent, error)

	// GetByID retrieves a compensation event by its unique ID.
	GetByID(ctx context.Context, eventID string) (*CompensationEvent, error)

	// UpdateByID updates an existing compensation event.
	UpdateByID(ctx context.Context, event *CompensationEvent) error

	// DeleteByID deletes a compensation event by ID.
	DeleteByID(ctx context.Context, eventID string) error
}

// EarlyWarningRepository defines the interface for EarlyWarning-related persistence operations
type EarlyWarningRepository interface {
	Create(ctx context.Context, warning *EarlyWarning) error
	List(ctx context.Context, query *NoticeQuery) ([]*EarlyWarning, error)
	GetByID(ctx context.Context, warningID string) (*EarlyWarning, error)
	UpdateByID(ctx context.Context, warning *EarlyWarning) error
	DeleteByID(ctx context.Context, warningID string) error
	// NextSequence returns the next unused sequence number for a project's
	// early warning references, derived from the highest reference on record
	NextSequence(ctx context.Context, projectID string) (int, error)
}

// CompensationEventRepository defines the interface for CompensationEvent-related persistence operations
type CompensationEventRepository interface {
	Create(ctx context.Context, event *CompensationEvent) error
	List(ctx context.Context, query *NoticeQuery) ([]*CompensationEvent, error)
	GetByID(ctx context.Context, eventID string) (*CompensationEvent, error)
	UpdateByID(ctx context.Context, event *CompensationEvent) error
	DeleteByID(ctx context.Context, eventID string) error
	// NextSequence returns the next unused sequence number for a project's
	// compensation event references, derived from the highest reference on record
	NextSequence(ctx context.Context, projectID string) (int, error)
}
