package procurement

import (
	"context"
)

// SupplierService defines methods for managing suppliers.
type SupplierService interface {
	Create(ctx context.Context, supplier *Supplier) (*Supplier, error)
	List(ctx context.Context, query *SupplierQuery) ([]*Supplier, error)
	GetByID(ctx context.Context, supplierID string) (*Supplier, error)
	UpdateByID(ctx context.Context, supplier *Supplier) error
	DeleteByID(ctx context.Context, supplierID string) error
}

// RequisitionService defines methods for managing purchase requisitions.
type RequisitionService interface {
	// Create registers a new requisition, assigns its project-sequential
	// reference and computes the total cost from quantity and unit cost.
	Create(ctx context.Context, requisition *PurchaseRequisition) (*PurchaseRequisition, error)

	// List retrieves requisitions considering a query filter when set.
	List(ctx context.Context, query *RequisitionQuery) ([]*PurchaseRequisition, error)

	// GetByID retrieves a requisition by its unique ID.
	GetByID(ctx context.Context, requisitionID string) (*PurchaseRequisition, error)

	// UpdateByID updates an existing requisition. Status changes must follow
	// the allowed transition order; the total cost is recomputed.
	UpdateByID(ctx context.Context, requisition *PurchaseRequisition) error

	// DeleteByID deletes a requisition by ID.
	DeleteByID(ctx context.Context, requisitionID string) error
}

// HireService defines methods for managing equipment hires.
type HireService interface {
	Create(ctx context.Context, hire *EquipmentHire) (*EquipmentHire, error)
	List(ctx context.Context, query *HireQuery) ([]*EquipmentHire, error)
	GetByID(ctx context.Context, hireID string) (*EquipmentHire, error)
	UpdateByID(ctx context.Context, hire *EquipmentHire) error
	DeleteByID(ctx context.Context, hireID string) error
}

// SupplierRepository defines the interface for Supplier-related persistence operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	List(ctx context.Context, query *SupplierQuery) ([]*Supplier, error)
	GetByID(ctx context.Context, supplierID string) (*Supplier, error)
	UpdateByID(ctx context.Context, supplier *Supplier) error
	DeleteByID(ctx context.Context, supplierID string) error
}

// RequisitionRepository defines the interface for PurchaseRequisition-related persistence operations
type RequisitionRepository interface {
	Create(ctx context.Context, requisition *PurchaseRequisition) error
	List(ctx context.Context, query *RequisitionQuery) ([]*PurchaseRequisition, error)
	GetByID(ctx context.Context, requisitionID string) (*PurchaseRequisition, error)
	UpdateByID(ctx context.Context, requisition *PurchaseRequisition) error
	DeleteByID(ctx context.Context, requisitionID string) error
	// NextSequence returns the next unused sequence number for a project's
	// requisition references, derived from the highest reference on record
	NextSequence(ctx context.Context, projectID string) (int, error)
}

// HireRepository defines the interface for EquipmentHire-related persistence operations
type HireRepository interface {
	Create(ctx context.Context, hire *EquipmentHire) error
	List(ctx context.Context, query *HireQuery) ([]*EquipmentHire, error)
	GetByID(ctx context.Context, hireID string) (*EquipmentHire, error)
	UpdateByID(ctx context.Context, hire *EquipmentHire) error
	DeleteByID(ctx context.Context, hireID string) error
	// NextSequence returns the next unused sequence number for a project's
	// hire references, derived from the highest reference on record
	NextSequence(ctx context.Context, projectID string) (int, error)
}
