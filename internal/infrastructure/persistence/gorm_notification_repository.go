package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
	"github.com/wesrioswart/nervecontract/internal/infrastructure/persistence/models"
	"github.com/wesrioswart/nervecontract/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormNotificationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository implementation
func NewGormNotificationRepository(db *gorm.DB, logger logger.Logger) (notifications.NotificationRepository, error) {
	return &gormNotificationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormNotificationRepository) Create(ctx context.Context, notification *notifications.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	r.logger.Info("Created notification with id ", notification.ID)
	return nil
}

func (r *gormNotificationRepository) List(ctx context.Context, query *notifications.NotificationQuery) ([]*notifications.Notification, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.NotificationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.NotificationModel{})

	if query.UserID != "" {
		// Broadcast notifications (nil user) are visible to every user
		dbQuery = dbQuery.Where("user_id = ? OR user_id IS NULL", query.UserID)
	}
	if query.UnreadOnly {
		dbQuery = dbQuery.Where("read = ?", false)
	}
	if query.Kind != "" {
		dbQuery = dbQuery.Where("kind = ?", query.Kind)
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
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	domainList := make([]*notifications.Notification, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, notificationID string) (*notifications.Notification, error) {
	var model models.NotificationModel
	if err := r.db.WithContext(ctx).Where("id = ?", notificationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification with ID %s not found", notificationID)
		}
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormNotificationRepository) UpdateByID(ctx context.Context, notification *notifications.Notification) error {
	if err := notification.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.NotificationModel{}
	model.FromDomain(notification)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	r.logger.Info("Updated notification with id ", notification.ID)
	return nil
}

func (r *gormNotificationRepository) DeleteByID(ctx context.Context, notificationID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", notificationID).Delete(&models.NotificationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	r.logger.Info("Deleted notification with id ", notificationID)
	return nil
}
