package v1

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error payload returned by all handlers
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateRequest(request interface{}) error {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// CreateProjectRequest is the payload for registering a project
type CreateProjectRequest struct {
	Name              string     `json:"name" validate:"required,min=1,max=255"`
	ContractReference string     `json:"contract_reference" validate:"required,min=1,max=100"`
	ContractType      string     `json:"contract_type" validate:"required,min=1,max=100"`
	Client            string     `json:"client" validate:"required,min=1,max=255"`
	StartDate         time.Time  `json:"start_date" validate:"required"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	Status            string     `json:"status" validate:"omitempty,oneof=active on_hold completed"`
}

// Validate for validating the CreateProjectRequest struct
func (r *CreateProjectRequest) Validate() error {
	return validateRequest(r)
}

// UpdateProjectRequest is the payload for updating a project
type UpdateProjectRequest struct {
	Name              string     `json:"name" validate:"required,min=1,max=255"`
	ContractReference string     `json:"contract_reference" validate:"required,min=1,max=100"`
	ContractType      string     `json:"contract_type" validate:"required,min=1,max=100"`
	Client            string     `json:"client" validate:"required,min=1,max=255"`
	StartDate         time.Time  `json:"start_date" validate:"required"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	Status            string     `json:"status" validate:"required,oneof=active on_hold completed"`
}

// Validate for validating the UpdateProjectRequest struct
func (r *UpdateProjectRequest) Validate() error {
	return validateRequest(r)
}

// ProjectResponse is the representation of a project returned by the API
type ProjectResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	ContractReference string     `json:"contract_reference"`
	ContractType      string     `json:"contract_type"`
	Client            string     `json:"client"`
	StartDate         time.Time  `json:"start_date"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"created_at"`
}

// RaiseEarlyWarningRequest is the payload for raising an early warning
type RaiseEarlyWarningRequest struct {
	ProjectID       string `json:"project_id" validate:"required,uuid4"`
	Description     string `json:"description" validate:"required,min=1"`
	RaisedBy        string `json:"raised_by" validate:"required,min=1,max=255"`
	MeetingRequired bool   `json:"meeting_required"`
}

// Validate for validating the RaiseEarlyWarningRequest struct
func (r *RaiseEarlyWarningRequest) Validate() error {
	return validateRequest(r)
}

// UpdateEarlyWarningRequest is the payload for updating an early warning
type UpdateEarlyWarningRequest struct {
	Description     string `json:"description" validate:"required,min=1"`
	Status          string `json:"status" validate:"required,oneof=open mitigated closed"`
	MeetingRequired bool   `json:"meeting_required"`
}

// Validate for validating the UpdateEarlyWarningRequest struct
func (r *UpdateEarlyWarningRequest) Validate() error {
	return validateRequest(r)
}

// EarlyWarningResponse is the representation of an early warning returned by the API
type EarlyWarningResponse struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	Reference       string    `json:"reference"`
	Description     string    `json:"description"`
	RaisedBy        string    `json:"raised_by"`
	Status          string    `json:"status"`
	MeetingRequired bool      `json:"meeting_required"`
	RaisedAt        time.Time `json:"raised_at"`
}

// RaiseCompensationEventRequest is the payload for raising a compensation event
type RaiseCompensationEventRequest struct {
	ProjectID      string     `json:"project_id" validate:"required,uuid4"`
	ClauseRef      string     `json:"clause_ref" validate:"required,min=1,max=50"`
	Description    string     `json:"description" validate:"required,min=1"`
	EstimatedValue float64    `json:"estimated_value" validate:"omitempty,min=0"`
	RaisedBy       string     `json:"raised_by" validate:"required,min=1,max=255"`
	ResponseDue    *time.Time `json:"response_due,omitempty"`
}

// Validate for validating the RaiseCompensationEventRequest struct
func (r *RaiseCompensationEventRequest) Validate() error {
	return validateRequest(r)
}

// UpdateCompensationEventRequest is the payload for updating a compensation event
type UpdateCompensationEventRequest struct {
	ClauseRef      string     `json:"clause_ref" validate:"required,min=1,max=50"`
	Description    string     `json:"description" validate:"required,min=1"`
	Status         string     `json:"status" validate:"required,oneof=notified quotation_due assessed implemented rejected"`
	EstimatedValue float64    `json:"estimated_value" validate:"omitempty,min=0"`
	ResponseDue    *time.Time `json:"response_due,omitempty"`
}

// Validate for validating the UpdateCompensationEventRequest struct
func (r *UpdateCompensationEventRequest) Validate() error {
	return validateRequest(r)
}

// CompensationEventResponse is the representation of a compensation event returned by the API
type CompensationEventResponse struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"project_id"`
	Reference      string     `json:"reference"`
	ClauseRef      string     `json:"clause_ref"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	EstimatedValue float64    `json:"estimated_value"`
	RaisedBy       string     `json:"raised_by"`
	RaisedAt       time.Time  `json:"raised_at"`
	ResponseDue    *time.Time `json:"response_due,omitempty"`
}

// CreateSupplierRequest is the payload for registering a supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	GPSMACSCode  string `json:"gpsmacs_code" validate:"omitempty,max=50"`
	Approved     bool   `json:"approved"`
}

// Validate for validating the CreateSupplierRequest struct
func (r *CreateSupplierRequest) Validate() error {
	return validateRequest(r)
}

// UpdateSupplierRequest is the payload for updating a supplier
type UpdateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255"`
	ContactEmail string `json:"contact_email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=50"`
	GPSMACSCode  string `json:"gpsmacs_code" validate:"omitempty,max=50"`
	Approved     bool   `json:"approved"`
}

// Validate for validating the UpdateSupplierRequest struct
func (r *UpdateSupplierRequest) Validate() error {
	return validateRequest(r)
}

// SupplierResponse is the representation of a supplier returned by the API
type SupplierResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone,omitempty"`
	GPSMACSCode  string    `json:"gpsmacs_code,omitempty"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateRequisitionRequest is the payload for registering a purchase requisition
type CreateRequisitionRequest struct {
	ProjectID   string     `json:"project_id" validate:"required,uuid4"`
	SupplierID  string     `json:"supplier_id" validate:"required,uuid4"`
	Description string     `json:"description" validate:"required,min=1"`
	GPSMACSCode string     `json:"gpsmacs_code" validate:"omitempty,max=50"`
	Quantity    float64    `json:"quantity" validate:"required,gt=0"`
	UnitCost    float64    `json:"unit_cost" validate:"required,gte=0"`
	RequestedBy string     `json:"requested_by" validate:"required,min=1,max=255"`
	NeededBy    *time.Time `json:"needed_by,omitempty"`
}

// Validate for validating the CreateRequisitionRequest struct
func (r *CreateRequisitionRequest) Validate() error {
	return validateRequest(r)
}

// UpdateRequisitionRequest is the payload for updating a purchase requisition
type UpdateRequisitionRequest struct {
	Description string     `json:"description" validate:"required,min=1"`
	GPSMACSCode string     `json:"gpsmacs_code" validate:"omitempty,max=50"`
	Quantity    float64    `json:"quantity" validate:"required,gt=0"`
	UnitCost    float64    `json:"unit_cost" validate:"required,gte=0"`
	Status      string     `json:"status" validate:"required,oneof=draft submitted approved ordered delivered cancelled"`
	NeededBy    *time.Time `json:"needed_by,omitempty"`
}

// Validate for validating the UpdateRequisitionRequest struct
func (r *UpdateRequisitionRequest) Validate() error {
	return validateRequest(r)
}

// RequisitionResponse is the representation of a purchase requisition returned by the API
type RequisitionResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	SupplierID  string     `json:"supplier_id"`
	Reference   string     `json:"reference"`
	Description string     `json:"description"`
	GPSMACSCode string     `json:"gpsmacs_code,omitempty"`
	Quantity    float64    `json:"quantity"`
	UnitCost    float64    `json:"unit_cost"`
	TotalCost   float64    `json:"total_cost"`
	Status      string     `json:"status"`
	RequestedBy string     `json:"requested_by"`
	NeededBy    *time.Time `json:"needed_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateHireRequest is the payload for registering an equipment hire
type CreateHireRequest struct {
	ProjectID   string  `json:"project_id" validate:"required,uuid4"`
	SupplierID  string  `json:"supplier_id" validate:"required,uuid4"`
	Description string  `json:"description" validate:"required,min=1"`
	WeeklyRate  float64 `json:"weekly_rate" validate:"required,gte=0"`
}

// Validate for validating the CreateHireRequest struct
func (r *CreateHireRequest) Validate() error {
	return validateRequest(r)
}

// UpdateHireRequest is the payload for updating an equipment hire
type UpdateHireRequest struct {
	Description string     `json:"description" validate:"required,min=1"`
	WeeklyRate  float64    `json:"weekly_rate" validate:"required,gte=0"`
	Status      string     `json:"status" validate:"required,oneof=requested on_hire off_hire"`
	OnHireAt    *time.Time `json:"on_hire_at,omitempty"`
	OffHireAt   *time.Time `json:"off_hire_at,omitempty"`
}

// Validate for validating the UpdateHireRequest struct
func (r *UpdateHireRequest) Validate() error {
	return validateRequest(r)
}

// HireResponse is the representation of an equipment hire returned by the API
type HireResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	SupplierID  string     `json:"supplier_id"`
	Reference   string     `json:"reference"`
	Description string     `json:"description"`
	WeeklyRate  float64    `json:"weekly_rate"`
	OnHireAt    *time.Time `json:"on_hire_at,omitempty"`
	OffHireAt   *time.Time `json:"off_hire_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateSiteReportRequest is the payload for submitting a daily site report
type CreateSiteReportRequest struct {
	ProjectID   string    `json:"project_id" validate:"required,uuid4"`
	ReportDate  time.Time `json:"report_date" validate:"required"`
	Weather     string    `json:"weather" validate:"omitempty,max=255"`
	LabourCount int       `json:"labour_count" validate:"omitempty,min=0"`
	PlantCount  int       `json:"plant_count" validate:"omitempty,min=0"`
	Progress    string    `json:"progress" validate:"required,min=1"`
	Delays      string    `json:"delays" validate:"omitempty"`
	Safety      string    `json:"safety" validate:"omitempty"`
	SubmittedBy string    `json:"submitted_by" validate:"required,min=1,max=255"`
}

// Validate for validating the CreateSiteReportRequest struct
func (r *CreateSiteReportRequest) Validate() error {
	return validateRequest(r)
}

// UpdateSiteReportRequest is the payload for amending a daily site report.
// The project and report date cannot be changed after submission.
type UpdateSiteReportRequest struct {
	Weather     string `json:"weather" validate:"omitempty,max=255"`
	LabourCount int    `json:"labour_count" validate:"omitempty,min=0"`
	PlantCount  int    `json:"plant_count" validate:"omitempty,min=0"`
	Progress    string `json:"progress" validate:"required,min=1"`
	Delays      string `json:"delays" validate:"omitempty"`
	Safety      string `json:"safety" validate:"omitempty"`
	SubmittedBy string `json:"submitted_by" validate:"required,min=1,max=255"`
}

// Validate for validating the UpdateSiteReportRequest struct
func (r *UpdateSiteReportRequest) Validate() error {
	return validateRequest(r)
}

// SiteReportResponse is the representation of a daily site report returned by the API
type SiteReportResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	ReportDate  time.Time `json:"report_date"`
	Weather     string    `json:"weather,omitempty"`
	LabourCount int       `json:"labour_count"`
	PlantCount  int       `json:"plant_count"`
	Progress    string    `json:"progress"`
	Delays      string    `json:"delays,omitempty"`
	Safety      string    `json:"safety,omitempty"`
	SubmittedBy string    `json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordEmailRequest is the payload for recording a classified inbound email
type RecordEmailRequest struct {
	ProjectID      *string   `json:"project_id,omitempty" validate:"omitempty,uuid4"`
	From           string    `json:"from" validate:"required,email"`
	Subject        string    `json:"subject" validate:"required,min=1,max=500"`
	Body           string    `json:"body" validate:"omitempty"`
	Classification string    `json:"classification" validate:"required,oneof=early_warning compensation_event general invoice"`
	Confidence     float64   `json:"confidence" validate:"omitempty,min=0,max=1"`
	ReceivedAt     time.Time `json:"received_at" validate:"omitempty"`
}

// Validate for validating the RecordEmailRequest struct
func (r *RecordEmailRequest) Validate() error {
	return validateRequest(r)
}

// EmailResponse is the representation of an inbound email returned by the API
type EmailResponse struct {
	ID             string     `json:"id"`
	ProjectID      *string    `json:"project_id,omitempty"`
	From           string     `json:"from"`
	Subject        string     `json:"subject"`
	Body           string     `json:"body,omitempty"`
	Classification string     `json:"classification"`
	Confidence     float64    `json:"confidence"`
	ReceivedAt     time.Time  `json:"received_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

// NotificationResponse is the representation of a notification returned by the API
type NotificationResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id,omitempty"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	SourceType string    `json:"source_type"`
	SourceID   string    `json:"source_id"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// CaptureDashboardRequest is the payload for capturing a dashboard screenshot
type CaptureDashboardRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Validate for validating the CaptureDashboardRequest struct
func (r *CaptureDashboardRequest) Validate() error {
	return validateRequest(r)
}
