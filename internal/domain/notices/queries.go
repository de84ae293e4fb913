package notices

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// NoticeQuery holds filter, sorting and pagination options shared by early
// warning and compensation event listings
type NoticeQuery struct {
	ProjectID string `validate:"omitempty,uuid4"`
	Status    string
	RaisedAt  time.Time // filters notices raised at or after this timestamp
	SortBy    string    `validate:"omitempty,oneof=reference status raised_at"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
	Limit     int       `validate:"omitempty,min=1,max=500"`
	Offset    int       `validate:"omitempty,min=0"`
}

// NewNoticeQuery creates a NoticeQuery with default pagination
func NewNoticeQuery() *NoticeQuery {
	return &NoticeQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the NoticeQuery struct
func (q *NoticeQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for NoticeQuery: %w", err)
	}

	return nil
}
