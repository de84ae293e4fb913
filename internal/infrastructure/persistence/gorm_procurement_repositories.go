package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/procurement"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSupplierRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSupplierRepository creates a new GORM-based SupplierRepository implementation
func NewGormSupplierRepository(db *gorm.DB, logger logger.Logger) (procurement.SupplierRepository, error) {
	return &gormSupplierRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSupplierRepository) Create(ctx context.Context, supplier *procurement.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SupplierModel{}
	model.FromDomain(supplier)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	r.logger.Info("Created supplier with id ", supplier.ID)
	return nil
}

func (r *gormSupplierRepository) List(ctx context.Context, query *procurement.SupplierQuery) ([]*procurement.Supplier, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SupplierModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SupplierModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.GPSMACSCode != "" {
		dbQuery = dbQuery.Where("gpsmacs_code = ?", query.GPSMACSCode)
	}
	if query.ApprovedOnly {
		dbQuery = dbQuery.Where("approved = ?", true)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}

	domainList := make([]*procurement.Supplier, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSupplierRepository) GetByID(ctx context.Context, supplierID string) (*procurement.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).Where("id = ?", supplierID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier with ID %s not found", supplierID)
		}
		return nil, fmt.Errorf("failed to fetch supplier: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSupplierRepository) UpdateByID(ctx context.Context, supplier *procurement.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SupplierModel{}
	model.FromDomain(supplier)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}

	r.logger.Info("Updated supplier with id ", supplier.ID)
	return nil
}

func (r *gormSupplierRepository) DeleteByID(ctx context.Context, supplierID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", supplierID).Delete(&models.SupplierModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	r.logger.Info("Deleted supplier with id ", supplierID)
	return nil
}

type gormRequisitionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRequisitionRepository creates a new GORM-based RequisitionRepository implementation
func NewGormRequisitionRepository(db *gorm.DB, logger logger.Logger) (procurement.RequisitionRepository, error) {
	return &gormRequisitionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRequisitionRepository) Create(ctx context.Context, requisition *procurement.PurchaseRequisition) error {
	if err := requisition.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RequisitionModel{}
	model.FromDomain(requisition)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create requisition: %w", err)
	}

	r.logger.Info("Created requisition with id ", requisition.ID)
	return nil
}

func (r *gormRequisitionRepository) List(ctx context.Context, query *procurement.RequisitionQuery) ([]*procurement.PurchaseRequisition, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.RequisitionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.RequisitionModel{})

	if query.ProjectID != "" {
		dbQuery = dbQuery.Where("project_id = ?", query.ProjectID)
	}
	if query.SupplierID != "" {
		dbQuery = dbQuery.Where("supplier_id = ?", query.SupplierID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.GPSMACSCode != "" {
		dbQuery = dbQuery.Where("gpsmacs_code = ?", query.GPSMACSCode)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch requisitions: %w", err)
	}

	domainList := make([]*procurement.PurchaseRequisition, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormRequisitionRepository) GetByID(ctx context.Context, requisitionID string) (*procurement.PurchaseRequisition, error) {
	var model models.RequisitionModel
	if err := r.db.WithContext(ctx).Where("id = ?", requisitionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("requisition with ID %s not found", requisitionID)
		}
		return nil, fmt.Errorf("failed to fetch requisition: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRequisitionRepository) UpdateByID(ctx context.Context, requisition *procurement.PurchaseRequisition) error {
	if err := requisition.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RequisitionModel{}
	model.FromDomain(requisition)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update requisition: %w", err)
	}

	r.logger.Info("Updated requisition with id ", requisition.ID)
	return nil
}

func (r *gormRequisitionRepository) DeleteByID(ctx context.Context, requisitionID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", requisitionID).Delete(&models.RequisitionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete requisition: %w", err)
	}

	r.logger.Info("Deleted requisition with id ", requisitionID)
	return nil
}

func (r *gormRequisitionRepository) NextSequence(ctx context.Context, projectID string) (int, error) {
	sequence, err := nextReferenceSequence(r.db.WithContext(ctx).Model(&models.RequisitionModel{}), projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine next requisition sequence: %w", err)
	}
	return sequence, nil
}

type gormHireRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormHireRepository creates a new GORM-based HireRepository implementation
func NewGormHireRepository(db *gorm.DB, logger logger.Logger) (procurement.HireRepository, error) {
	return &gormHireRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormHireRepository) Create(ctx context.Context, hire *procurement.EquipmentHire) error {
	if err := hire.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EquipmentHireModel{}
	model.FromDomain(hire)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create equipment hire: %w", err)
	}

	r.logger.Info("Created equipment hire with id ", hire.ID)
	return nil
}

func (r *gormHireRepository) List(ctx context.Context, query *procurement.HireQuery) ([]*procurement.EquipmentHire, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.EquipmentHireModel
	dbQuery := r.db.WithContext(ctx).Model(&models.EquipmentHireModel{})

	if query.ProjectID != "" {
		dbQuery = dbQuery.Where("project_id = ?", query.ProjectID)
	}
	if query.SupplierID != "" {
		dbQuery = dbQuery.Where("supplier_id = ?", query.SupplierID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch equipment hires: %w", err)
	}

	domainList := make([]*procurement.EquipmentHire, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormHireRepository) GetByID(ctx context.Context, hireID string) (*procurement.EquipmentHire, error) {
	var model models.EquipmentHireModel
	if err := r.db.WithContext(ctx).Where("id = ?", hireID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("equipment hire with ID %s not found", hireID)
		}
		return nil, fmt.Errorf("failed to fetch equipment hire: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormHireRepository) UpdateByID(ctx context.Context, hire *procurement.EquipmentHire) error {
	if err := hire.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EquipmentHireModel{}
	model.FromDomain(hire)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update equipment hire: %w", err)
	}

	r.logger.Info("Updated equipment hire with id ", hire.ID)
	return nil
}

func (r *gormHireRepository) DeleteByID(ctx context.Context, hireID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", hireID).Delete(&models.EquipmentHireModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete equipment hire: %w", err)
	}

	r.logger.Info("Deleted equipment hire with id ", hireID)
	return nil
}

func (r *gormHireRepository) NextSequence(ctx context.Context, projectID string) (int, error) {
	sequence, err := nextReferenceSequence(r.db.WithContext(ctx).Model(&models.EquipmentHireModel{}), projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to determine next equipment hire sequence: %w", err)
	}
	return sequence, nil
}
