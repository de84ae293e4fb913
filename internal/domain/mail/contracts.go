package mail

import (
	"context"
)

// EmailIntakeService defines methods for recording and retrieving classified
// inbound correspondence.
type EmailIntakeService interface {
	// Record stores a classified email and publishes an email.classified event.
	Record(ctx context.Context, email *InboundEmail) (*InboundEmail, error)

	// List retrieves inbound emails considering a query filter when set.
	List(ctx context.Context, query *EmailQuery) ([]*InboundEmail, error)

	// GetByID retrieves an inbound email by its unique ID.
	GetByID(ctx context.Context, emailID string) (*InboundEmail, error)
}

// EmailRepository defines the interface for InboundEmail-related persistence operations
type EmailRepository interface {
	Create(ctx context.Context, email *InboundEmail) error
	List(ctx context.Context, query *EmailQuery) ([]*InboundEmail, error)
	GetByID(ctx context.Context, emailID string) (*InboundEmail, error)
}
