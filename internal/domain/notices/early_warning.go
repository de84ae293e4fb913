package notices

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Early warning status constants
const (
	EarlyWarningStatusOpen      = "open"
	EarlyWarningStatusMitigated = "mitigated"
	EarlyWarningStatusClosed    = "closed"
)

// EarlyWarning entity represents an NEC4 early warning notice raised against a project
type EarlyWarning struct {
	ID              string    `validate:"required,uuid4"`
	ProjectID       string    `validate:"required,uuid4"`
	Reference       string    `validate:"required,min=1,max=50"`
	Description     string    `validate:"required,min=1"`
	RaisedBy        string    `validate:"required,min=1,max=255"`
	Status          string    `validate:"required,oneof=open mitigated closed"`
	MeetingRequired bool
	RaisedAt        time.Time `validate:"required"`
}

// Validate for validating the EarlyWarning struct
func (w *EarlyWarning) Validate() error {
	validate := validator.New()

	err := validate.Struct(w)
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
