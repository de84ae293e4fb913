package procurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Supplier entity represents an approved or prospective supplier.
// GPSMACSCode is the construction cost-coding taxonomy category the supplier
// is usually procured under; it is an opaque categorical field.
type Supplier struct {
	ID           string    `validate:"required,uuid4"`
	Name         string    `validate:"required,min=1,max=255"`
	ContactEmail string    `validate:"required,email"`
	Phone        string    `validate:"omitempty,max=50"`
	GPSMACSCode  string    `validate:"omitempty,max=50"`
	Approved     bool
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating the Supplier struct
func (s *Supplier) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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
