package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/mail"
)

// InboundEmailModel is the GORM database model for classified inbound emails
// (infrastructure concern)
type InboundEmailModel struct {
	ID             string     `gorm:"primaryKey;type:uuid"`
	ProjectID      *string    `gorm:"type:uuid;index"`
	From           string     `gorm:"not null;type:varchar(255);column:from_address"`
	Subject        string     `gorm:"not null;type:varchar(500)"`
	Body           string     `gorm:"type:text"`
	Classification string     `gorm:"not null;type:varchar(50);index"`
	Confidence     float64    `gorm:"not null;default:0"`
	ReceivedAt     time.Time  `gorm:"not null"`
	ProcessedAt    *time.Time
}

// TableName specifies the table name for GORM
func (InboundEmailModel) TableName() string {
	return "inbound_emails"
}

// ToDomain converts GORM model to domain entity
func (m *InboundEmailModel) ToDomain() *mail.InboundEmail {
	return &mail.InboundEmail{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		From:           m.From,
		Subject:        m.Subject,
		Body:           m.Body,
		Classification: m.Classification,
		Confidence:     m.Confidence,
		ReceivedAt:     m.ReceivedAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *InboundEmailModel) FromDomain(e *mail.InboundEmail) {
	m.ID = e.ID
	m.ProjectID = e.ProjectID
	m.From = e.From
	m.Subject = e.Subject
	m.Body = e.Body
	m.Classification = e.Classification
	m.Confidence = e.Confidence
	m.ReceivedAt = e.ReceivedAt
	m.ProcessedAt = e.ProcessedAt
}
