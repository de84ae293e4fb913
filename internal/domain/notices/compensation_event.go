package notices

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Compensation event status constants
const (
	CompensationEventStatusNotified     = "notified"
	CompensationEventStatusQuotationDue = "quotation_due"
	CompensationEventStatusAssessed     = "assessed"
	CompensationEventStatusImplemented  = "implemented"
	CompensationEventStatusRejected     = "rejected"
)

// CompensationEvent entity represents an NEC4 compensation event notice.
// ClauseRef carries the contract clause (e.g. "60.1(12)") as an opaque
// business classification code; it is never parsed.
type CompensationEvent struct {
	ID             string     `validate:"required,uuid4"`
	ProjectID      string     `validate:"required,uuid4"`
	Reference      string     `validate:"required,min=1,max=50"`
	ClauseRef      string     `validate:"required,min=1,max=50"`
	Description    string     `validate:"required,min=1"`
	Status         string     `validate:"required,oneof=notified quotation_due assessed implemented rejected"`
	EstimatedValue float64    `validate:"omitempty,min=0"`
	RaisedBy       string     `validate:"required,min=1,max=255"`
	RaisedAt       time.Time  `validate:"required"`
	ResponseDue    *time.Time `validate:"omitempty"`
}

// Validate for validating the CompensationEvent struct
func (e *CompensationEvent) Validate() error {
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
