package projects

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Project status constants
const (
	StatusActive    = "active"
	StatusOnHold    = "on_hold"
	StatusCompleted = "completed"
)

// Project entity represents a construction contract under management
type Project struct {
	ID                string     `validate:"required,uuid4"`
	Name              string     `validate:"required,min=1,max=255"`
	ContractReference string     `validate:"required,min=1,max=100"`
	ContractType      string     `validate:"required,min=1,max=100"`
	Client            string     `validate:"required,min=1,max=255"`
	StartDate         time.Time  `validate:"required"`
	CompletionDate    *time.Time `validate:"omitempty"`
	Status            string     `validate:"required,oneof=active on_hold completed"`
	CreatedAt         time.Time  `validate:"required"`
}

// Validate for validating the Project struct
func (p *Project) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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

// ProjectQuery holds filter, sorting and pagination options for listing projects
type ProjectQuery struct {
	Name      string
	Status    string    `validate:"omitempty,oneof=active on_hold completed"`
	CreatedAt time.Time // filters projects created at or after this timestamp
	SortBy    string    `validate:"omitempty,oneof=name status created_at"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
	Limit     int       `validate:"omitempty,min=1,max=500"`
	Offset    int       `validate:"omitempty,min=0"`
}

// NewProjectQuery creates a ProjectQuery with default pagination
func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the ProjectQuery struct
func (q *ProjectQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ProjectQuery: %w", err)
	}

	return nil
}
