package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notifications"
)

// NotificationModel is the GORM database model for notifications (infrastructure concern)
type NotificationModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	UserID     *string   `gorm:"type:uuid;index"`
	Kind       string    `gorm:"not null;type:varchar(100);index"`
	Title      string    `gorm:"not null;type:varchar(255)"`
	Body       string    `gorm:"type:text"`
	SourceType string    `gorm:"not null;type:varchar(100)"`
	SourceID   string    `gorm:"not null;type:varchar(100);index"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts GORM model to domain entity
func (m *NotificationModel) ToDomain() *notifications.Notification {
	return &notifications.Notification{
		ID:         m.ID,
		UserID:     m.UserID,
		Kind:       m.Kind,
		Title:      m.Title,
		Body:       m.Body,
		SourceType: m.SourceType,
		SourceID:   m.SourceID,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *NotificationModel) FromDomain(n *notifications.Notification) {
	m.ID = n.ID
	m.UserID = n.UserID
	m.Kind = n.Kind
	m.Title = n.Title
	m.Body = n.Body
	m.SourceType = n.SourceType
	m.SourceID = n.SourceID
	m.Read = n.Read
	m.CreatedAt = n.CreatedAt
}
