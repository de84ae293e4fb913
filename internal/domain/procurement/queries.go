package procurement

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SupplierQuery holds filter, sorting and pagination options for listing suppliers
type SupplierQuery struct {
	Name        string
	GPSMACSCode string
	// ApprovedOnly restricts results to approved suppliers
	ApprovedOnly bool
	SortBy       string `validate:"omitempty,oneof=name created_at"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
	Limit        int    `validate:"omitempty,min=1,max=500"`
	Offset       int    `validate:"omitempty,min=0"`
}

// NewSupplierQuery creates a SupplierQuery with default pagination
func NewSupplierQuery() *SupplierQuery {
	return &SupplierQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the SupplierQuery struct
func (q *SupplierQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for SupplierQuery: %w", err)
	}

	return nil
}

// RequisitionQuery holds filter, sorting and pagination options for listing
// purchase requisitions
type RequisitionQuery struct {
	ProjectID   string `validate:"omitempty,uuid4"`
	SupplierID  string `validate:"omitempty,uuid4"`
	Status      string `validate:"omitempty,oneof=draft submitted approved ordered delivered cancelled"`
	GPSMACSCode string
	SortBy      string `validate:"omitempty,oneof=reference status total_cost created_at"`
	SortOrder   string `validate:"omitempty,oneof=asc desc"`
	Limit       int    `validate:"omitempty,min=1,max=500"`
	Offset      int    `validate:"omitempty,min=0"`
}

// NewRequisitionQuery creates a RequisitionQuery with default pagination
func NewRequisitionQuery() *RequisitionQuery {
	return &RequisitionQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the RequisitionQuery struct
func (q *RequisitionQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for RequisitionQuery: %w", err)
	}

	return nil
}

// HireQuery holds filter, sorting and pagination options for listing equipment hires
type HireQuery struct {
	ProjectID  string `validate:"omitempty,uuid4"`
	SupplierID string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=requested on_hire off_hire"`
	SortBy     string `validate:"omitempty,oneof=reference status created_at"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
	Limit      int    `validate:"omitempty,min=1,max=500"`
	Offset     int    `validate:"omitempty,min=0"`
}

// NewHireQuery creates a HireQuery with default pagination
func NewHireQuery() *HireQuery {
	return &HireQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating the HireQuery struct
func (q *HireQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for HireQuery: %w", err)
	}

	return nil
}
