package procurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Equipment hire status constants
const (
	HireStatusRequested = "requested"
	HireStatusOnHire    = "on_hire"
	HireStatusOffHire   = "off_hire"
)

// EquipmentHire entity represents a plant or equipment hire against a project
type EquipmentHire struct {
	ID          string     `validate:"required,uuid4"`
	ProjectID   string     `validate:"required,uuid4"`
	SupplierID  string     `validate:"required,uuid4"`
	Reference   string     `validate:"required,min=1,max=50"`
	Description string     `validate:"required,min=1"`
	WeeklyRate  float64    `validate:"required,gte=0"`
	OnHireAt    *time.Time `validate:"omitempty"`
	OffHireAt   *time.Time `validate:"omitempty"`
	Status      string     `validate:"required,oneof=requested on_hire off_hire"`
	CreatedAt   time.Time  `validate:"required"`
}

// Validate for validating the EquipmentHire struct
func (h *EquipmentHire) Validate() error {
	validate := validator.New()

	err := validate.Struct(h)
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

	if h.OffHireAt != nil && h.OnHireAt != nil && h.OffHireAt.Before(*h.OnHireAt) {
		return fmt.Errorf("off-hire date must not precede on-hire date")
	}

	return nil
}
