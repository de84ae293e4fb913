package sitereports

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DailySiteReport entity represents a daily site diary entry. At most one
// report exists per project per calendar date.
type DailySiteReport struct {
	ID          string    `validate:"required,uuid4"`
	ProjectID   string    `validate:"required,uuid4"`
	ReportDate  time.Time `validate:"required"`
	Weather     string    `validate:"omitempty,max=255"`
	LabourCount int       `validate:"omitempty,min=0"`
	PlantCount  int       `validate:"omitempty,min=0"`
	Progress    string    `validate:"required,min=1"`
	Delays      string    `validate:"omitempty"`
	Safety      string    `validate:"omitempty"`
	SubmittedBy string    `validate:"required,min=1,max=255"`
	CreatedAt   time.Time `validate:"required"`
}

// Validate for validating the DailySiteReport struct
func (r *DailySiteReport) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// ReportQuery holds filter, sorting and pagination options for listing site reports
type ReportQuery struct {
	ProjectID string    `validate:"omitempty,uuid4"`
	From      time.Time // inclusive lower bound on report date
	To        time.Time // inclusive upper bound on report date
	SortBy    string    `validate:"omitempty,oneof=report_date created_at"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
	Limit     int       `validate:"omitempty,min=1,max=500"`
	Offset    int       `validate:"omitempty,min=0"`
}

// NewReportQuery creates a ReportQuery with default pagination
func NewReportQuery() *ReportQuery {
	return &ReportQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the ReportQuery struct
func (q *ReportQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ReportQuery: %w", err)
	}

	return nil
}
