package procurement

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Purchase requisition status constants
const (
	RequisitionStatusDraft     = "draft"
	RequisitionStatusSubmitted = "submitted"
	RequisitionStatusApproved  = "approved"
	RequisitionStatusOrdered   = "ordered"
	RequisitionStatusDelivered = "delivered"
	RequisitionStatusCancelled = "cancelled"
)

// requisitionTransitions holds the allowed status transitions. A requisition
// moves forward one stage at a time and can be cancelled from any non-terminal
// stage.
var requisitionTransitions = map[string][]string{
	RequisitionStatusDraft:     {RequisitionStatusSubmitted, RequisitionStatusCancelled},
	RequisitionStatusSubmitted: {RequisitionStatusApproved, RequisitionStatusCancelled},
	RequisitionStatusApproved:  {RequisitionStatusOrdered, RequisitionStatusCancelled},
	RequisitionStatusOrdered:   {RequisitionStatusDelivered, RequisitionStatusCancelled},
	RequisitionStatusDelivered: {},
	RequisitionStatusCancelled: {},
}

// CanTransitionRequisition reports whether a requisition may move from one
// status to another
func CanTransitionRequisition(from, to string) bool {
	for _, allowed := range requisitionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PurchaseRequisition entity represents a request to purchase materials or
// services against a project
type PurchaseRequisition struct {
	ID          string     `validate:"required,uuid4"`
	ProjectID   string     `validate:"required,uuid4"`
	SupplierID  string     `validate:"required,uuid4"`
	Reference   string     `validate:"required,min=1,max=50"`
	Description string     `validate:"required,min=1"`
	GPSMACSCode string     `validate:"omitempty,max=50"`
	Quantity    float64    `validate:"required,gt=0"`
	UnitCost    float64    `validate:"required,gte=0"`
	TotalCost   float64    `validate:"gte=0"`
	Status      string     `validate:"required,oneof=draft submitted approved ordered delivered cancelled"`
	RequestedBy string     `validate:"required,min=1,max=255"`
	NeededBy    *time.Time `validate:"omitempty"`
	CreatedAt   time.Time  `validate:"required"`
}

// Validate for validating the PurchaseRequisition struct
func (r *PurchaseRequisition) Validate() error {
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
