package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
)

// SupplierModel is the GORM database model for suppliers (infrastructure concern)
type SupplierModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Name         string    `gorm:"not null;type:varchar(255);index"`
	ContactEmail string    `gorm:"not null;type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(50)"`
	GPSMACSCode  string    `gorm:"type:varchar(50);index"`
	Approved     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts GORM model to domain entity
func (m *SupplierModel) ToDomain() *procurement.Supplier {
	return &procurement.Supplier{
		ID:           m.ID,
		Name:         m.Name,
		ContactEmail: m.ContactEmail,
		Phone:        m.Phone,
		GPSMACSCode:  m.GPSMACSCode,
		Approved:     m.Approved,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SupplierModel) FromDomain(s *procurement.Supplier) {
	m.ID = s.ID
	m.Name = s.Name
	m.ContactEmail = s.ContactEmail
	m.Phone = s.Phone
	m.GPSMACSCode = s.GPSMACSCode
	m.Approved = s.Approved
	m.CreatedAt = s.CreatedAt
}

// RequisitionModel is the GORM database model for purchase requisitions (infrastructure concern)
type RequisitionModel struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	ProjectID   string     `gorm:"not null;type:uuid;uniqueIndex:idx_purchase_requisitions_project_reference"`
	SupplierID  string     `gorm:"not null;type:uuid;index"`
	Reference   string     `gorm:"not null;type:varchar(50);uniqueIndex:idx_purchase_requisitions_project_reference"`
	Description string     `gorm:"not null;type:text"`
	GPSMACSCode string     `gorm:"type:varchar(50);index"`
	Quantity    float64    `gorm:"not null"`
	UnitCost    float64    `gorm:"not null"`
	TotalCost   float64    `gorm:"not null"`
	Status      string     `gorm:"not null;type:varchar(50);index"`
	RequestedBy string     `gorm:"not null;type:varchar(255)"`
	NeededBy    *time.Time
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (RequisitionModel) TableName() string {
	return "purchase_requisitions"
}

// ToDomain converts GORM model to domain entity
func (m *RequisitionModel) ToDomain() *procurement.PurchaseRequisition {
	return &procurement.PurchaseRequisition{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		SupplierID:  m.SupplierID,
		Reference:   m.Reference,
		Description: m.Description,
		GPSMACSCode: m.GPSMACSCode,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		TotalCost:   m.TotalCost,
		Status:      m.Status,
		RequestedBy: m.RequestedBy,
		NeededBy:    m.NeededBy,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *RequisitionModel) FromDomain(r *procurement.PurchaseRequisition) {
	m.ID = r.ID
	m.ProjectID = r.ProjectID
	m.SupplierID = r.SupplierID
	m.Reference = r.Reference
	m.Description = r.Description
	m.GPSMACSCode = r.GPSMACSCode
	m.Quantity = r.Quantity
	m.UnitCost = r.UnitCost
	m.TotalCost = r.TotalCost
	m.Status = r.Status
	m.RequestedBy = r.RequestedBy
	m.NeededBy = r.NeededBy
	m.CreatedAt = r.CreatedAt
}

// EquipmentHireModel is the GORM database model for equipment hires (infrastructure concern)
type EquipmentHireModel struct {
	ID          string     `gorm:"primaryKey;type:uuid"`
	ProjectID   string     `gorm:"not null;type:uuid;uniqueIndex:idx_equipment_hires_project_reference"`
	SupplierID  string     `gorm:"not null;type:uuid;index"`
	Reference   string     `gorm:"not null;type:varchar(50);uniqueIndex:idx_equipment_hires_project_reference"`
	Description string     `gorm:"not null;type:text"`
	WeeklyRate  float64    `gorm:"not null"`
	OnHireAt    *time.Time
	OffHireAt   *time.Time
	Status      string     `gorm:"not null;type:varchar(50);index"`
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EquipmentHireModel) TableName() string {
	return "equipment_hires"
}

// ToDomain converts GORM model to domain entity
func (m *EquipmentHireModel) ToDomain() *procurement.EquipmentHire {
	return &procurement.EquipmentHire{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		SupplierID:  m.SupplierID,
		Reference:   m.Reference,
		Description: m.Description,
		WeeklyRate:  m.WeeklyRate,
		OnHireAt:    m.OnHireAt,
		OffHireAt:   m.OffHireAt,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EquipmentHireModel) FromDomain(h *procurement.EquipmentHire) {
	m.ID = h.ID
	m.ProjectID = h.ProjectID
	m.SupplierID = h.SupplierID
	m.Reference = h.Reference
	m.Description = h.Description
	m.WeeklyRate = h.WeeklyRate
	m.OnHireAt = h.OnHireAt
	m.OffHireAt = h.OffHireAt
	m.Status = h.Status
	m.CreatedAt = h.CreatedAt
}
