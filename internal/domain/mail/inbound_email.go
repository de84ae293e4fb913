package mail

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Email classification constants
const (
	ClassificationEarlyWarning      = "early_warning"
	ClassificationCompensationEvent = "compensation_event"
	ClassificationGeneral           = "general"
	ClassificationInvoice           = "invoice"
)

// InboundEmail entity represents a piece of classified inbound correspondence.
// Classification is assigned upstream; recording a classified email publishes
// an email.classified event.
type InboundEmail struct {
	ID             string     `validate:"required,uuid4"`
	ProjectID      *string    `validate:"omitempty,uuid4"`
	From           string     `validate:"required,email"`
	Subject        string     `validate:"required,min=1,max=500"`
	Body           string     `validate:"omitempty"`
	Classification string     `validate:"required,oneof=early_warning compensation_event general invoice"`
	Confidence     float64    `validate:"omitempty,min=0,max=1"`
	ReceivedAt     time.Time  `validate:"required"`
	ProcessedAt    *time.Time `validate:"omitempty"`
}

// Validate for validating the InboundEmail struct
func (e *InboundEmail) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
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

// EmailQuery holds filter, sorting and pagination options for listing inbound emails
type EmailQuery struct {
	ProjectID      string `validate:"omitempty,uuid4"`
	Classification string `validate:"omitempty,oneof=early_warning compensation_event general invoice"`
	SortBy         string `validate:"omitempty,oneof=received_at subject"`
	SortOrder      string `validate:"omitempty,oneof=asc desc"`
	Limit          int    `validate:"omitempty,min=1,max=500"`
	Offset         int    `validate:"omitempty,min=0"`
}

// NewEmailQuery creates an EmailQuery with default pagination
func NewEmailQuery() *EmailQuery {
	return &EmailQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the EmailQuery struct
func (q *EmailQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for EmailQuery: %w", err)
	}

	return nil
}
