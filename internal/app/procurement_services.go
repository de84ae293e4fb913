package app

import (
	"context"
	"fmt"
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/domain/projects"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"github.com/google/uuid"
)

// supplierService implements the SupplierService interface for managing suppliers
type supplierService struct {
	supplierRepo procurement.SupplierRepository
	logger       logger.Logger
}

// NewSupplierService creates a new instance of SupplierService
func NewSupplierService(supplierRepo procurement.SupplierRepository, logger logger.Logger) (procurement.SupplierService, error) {
	return &supplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}, nil
}

func (s *supplierService) Create(ctx context.Context, supplier *procurement.Supplier) (*procurement.Supplier, error) {
	if supplier.ID == "" {
		supplier.ID = uuid.NewString()
	}
	if supplier.CreatedAt.IsZero() {
		supplier.CreatedAt = time.Now()
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.logger.Info("Created supplier ", supplier.Name)
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context, query *procurement.SupplierQuery) ([]*procurement.Supplier, error) {
	if query == nil {
		query = procurement.NewSupplierQuery()
	}

	list, err := s.supplierRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return list, nil
}

func (s *supplierService) GetByID(ctx context.Context, supplierID string) (*procurement.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) UpdateByID(ctx context.Context, supplier *procurement.Supplier) error {
	if _, err := s.supplierRepo.GetByID(ctx, supplier.ID); err != nil {
		return fmt.Errorf("failed to get supplier: %w", err)
	}

	if err := s.supplierRepo.UpdateByID(ctx, supplier); err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

func (s *supplierService) DeleteByID(ctx context.Context, supplierID string) error {
	if err := s.supplierRepo.DeleteByID(ctx, supplierID); err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}

// requisitionService implements the RequisitionService interface for managing
// purchase requisitions
type requisitionService struct {
	requisitionRepo procurement.RequisitionRepository
	supplierRepo    procurement.SupplierRepository
	projectRepo     projects.ProjectRepository
	logger          logger.Logger
}

// NewRequisitionService creates a new instance of RequisitionService
func NewRequisitionService(
	requisitionRepo procurement.RequisitionRepository,
	supplierRepo procurement.SupplierRepository,
	projectRepo projects.ProjectRepository,
	logger logger.Logger,
) (procurement.RequisitionService, error) {
	return &requisitionService{
		requisitionRepo: requisitionRepo,
		supplierRepo:    supplierRepo,
		projectRepo:     projectRepo,
		logger:          logger,
	}, nil
}

// Create registers a new requisition. The reference is assigned sequentially
// per project (PR-001, PR-002, ...), the total cost is computed from quantity
// and unit cost, and new requisitions start in draft.
func (s *requisitionService) Create(ctx context.Context, requisition *procurement.PurchaseRequisition) (*procurement.PurchaseRequisition, error) {
	if _, err := s.projectRepo.GetByID(ctx, requisition.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if _, err := s.supplierRepo.GetByID(ctx, requisition.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	sequence, err := s.requisitionRepo.NextSequence(ctx, requisition.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next reference: %w", err)
	}

	if requisition.ID == "" {
		requisition.ID = uuid.NewString()
	}
	requisition.Reference = fmt.Sprintf("PR-%03d", sequence)
	requisition.Status = procurement.RequisitionStatusDraft
	requisition.TotalCost = requisition.Quantity * requisition.UnitCost
	if requisition.CreatedAt.IsZero() {
		requisition.CreatedAt = time.Now()
	}

	if err := s.requisitionRepo.Create(ctx, requisition); err != nil {
		return nil, fmt.Errorf("failed to create requisition: %w", err)
	}

	s.logger.Info("Created requisition ", requisition.Reference, " on project ", requisition.ProjectID)
	return requisition, nil
}

func (s *requisitionService) List(ctx context.Context, query *procurement.RequisitionQuery) ([]*procurement.PurchaseRequisition, error) {
	if query == nil {
		query = procurement.NewRequisitionQuery()
	}

	list, err := s.requisitionRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list requisitions: %w", err)
	}
	return list, nil
}

func (s *requisitionService) GetByID(ctx context.Context, requisitionID string) (*procurement.PurchaseRequisition, error) {
	requisition, err := s.requisitionRepo.GetByID(ctx, requisitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get requisition: %w", err)
	}
	return requisition, nil
}

// UpdateByID updates an existing requisition. Status changes must follow the
// allowed transition order; the reference is immutable and the total cost is
// recomputed from quantity and unit cost.
func (s *requisitionService) UpdateByID(ctx context.Context, requisition *procurement.PurchaseRequisition) error {
	existing, err := s.requisitionRepo.GetByID(ctx, requisition.ID)
	if err != nil {
		return fmt.Errorf("failed to get requisition: %w", err)
	}

	if requisition.Status != existing.Status {
		if !procurement.CanTransitionRequisition(existing.Status, requisition.Status) {
			return fmt.Errorf("invalid status transition from %s to %s", existing.Status, requisition.Status)
		}
	}

	requisition.Reference = existing.Reference
	requisition.TotalCost = requisition.Quantity * requisition.UnitCost

	if err := s.requisitionRepo.UpdateByID(ctx, requisition); err != nil {
		return fmt.Errorf("failed to update requisition: %w", err)
	}
	return nil
}

func (s *requisitionService) DeleteByID(ctx context.Context, requisitionID string) error {
	if err := s.requisitionRepo.DeleteByID(ctx, requisitionID); err != nil {
		return fmt.Errorf("failed to delete requisition: %w", err)
	}
	return nil
}

// hireService implements the HireService interface for managing equipment hires
type hireService struct {
	hireRepo     procurement.HireRepository
	supplierRepo procurement.SupplierRepository
	projectRepo  projects.ProjectRepository
	logger       logger.Logger
}

// NewHireService creates a new instance of HireService
func NewHireService(
	hireRepo procurement.HireRepository,
	supplierRepo procurement.SupplierRepository,
	projectRepo projects.ProjectRepository,
	logger logger.Logger,
) (procurement.HireService, error) {
	return &hireService{
		hireRepo:     hireRepo,
		supplierRepo: supplierRepo,
		projectRepo:  projectRepo,
		logger:       logger,
	}, nil
}

// Create registers a new equipment hire. The reference is assigned
// sequentially per project (EH-001, EH-002, ...).
func (s *hireService) Create(ctx context.Context, hire *procurement.EquipmentHire) (*procurement.EquipmentHire, error) {
	if _, err := s.projectRepo.GetByID(ctx, hire.ProjectID); err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if _, err := s.supplierRepo.GetByID(ctx, hire.SupplierID); err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	sequence, err := s.hireRepo.NextSequence(ctx, hire.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next reference: %w", err)
	}

	if hire.ID == "" {
		hire.ID = uuid.NewString()
	}
	hire.Reference = fmt.Sprintf("EH-%03d", sequence)
	if hire.Status == "" {
		hire.Status = procurement.HireStatusRequested
	}
	if hire.CreatedAt.IsZero() {
		hire.CreatedAt = time.Now()
	}

	if err := s.hireRepo.Create(ctx, hire); err != nil {
		return nil, fmt.Errorf("failed to create equipment hire: %w", err)
	}

	s.logger.Info("Created equipment hire ", hire.Reference, " on project ", hire.ProjectID)
	return hire, nil
}

func (s *hireService) List(ctx context.Context, query *procurement.HireQuery) ([]*procurement.EquipmentHire, error) {
	if query == nil {
		query = procurement.NewHireQuery()
	}

	list, err := s.hireRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment hires: %w", err)
	}
	return list, nil
}

func (s *hireService) GetByID(ctx context.Context, hireID string) (*procurement.EquipmentHire, error) {
	hire, err := s.hireRepo.GetByID(ctx, hireID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment hire: %w", err)
	}
	return hire, nil
}

func (s *hireService) UpdateByID(ctx context.Context, hire *procurement.EquipmentHire) error {
	existing, err := s.hireRepo.GetByID(ctx, hire.ID)
	if err != nil {
		return fmt.Errorf("failed to get equipment hire: %w", err)
	}
	hire.Reference = existing.Reference

	if err := s.hireRepo.UpdateByID(ctx, hire); err != nil {
		return fmt.Errorf("failed to update equipment hire: %w", err)
	}
	return nil
}

func (s *hireService) DeleteByID(ctx context.Context, hireID string) error {
	if err := s.hireRepo.DeleteByID(ctx, hireID); err != nil {
		return fmt.Errorf("failed to delete equipment hire: %w", err)
	}
	return nil
}
