package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/notices"
)

// EarlyWarningModel is the GORM database model for early warnings (infrastructure concern)
type EarlyWarningModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	ProjectID       string    `gorm:"not null;type:uuid;uniqueIndex:idx_early_warnings_project_reference"`
	Reference       string    `gorm:"not null;type:varchar(50);uniqueIndex:idx_early_warnings_project_reference"`
	Description     string    `gorm:"not null;type:text"`
	RaisedBy        string    `gorm:"not null;type:varchar(255)"`
	Status          string    `gorm:"not null;type:varchar(50);index"`
	MeetingRequired bool      `gorm:"not null"`
	RaisedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EarlyWarningModel) TableName() string {
	return "early_warnings"
}

// ToDomain converts GORM model to domain entity
func (m *EarlyWarningModel) ToDomain() *notices.EarlyWarning {
	return &notices.EarlyWarning{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		Reference:       m.Reference,
		Description:     m.Description,
		RaisedBy:        m.RaisedBy,
		Status:          m.Status,
		MeetingRequired: m.MeetingRequired,
		RaisedAt:        m.RaisedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EarlyWarningModel) FromDomain(w *notices.EarlyWarning) {
	m.ID = w.ID
	m.ProjectID = w.ProjectID
	m.Reference = w.Reference
	m.Description = w.Description
	m.RaisedBy = w.RaisedBy
	m.Status = w.Status
	m.MeetingRequired = w.MeetingRequired
	m.RaisedAt = w.RaisedAt
}

// CompensationEventModel is the GORM database model for compensation events (infrastructure concern)
type CompensationEventModel struct {
	ID             string     `gorm:"primaryKey;type:uuid"`
	ProjectID      string     `gorm:"not null;type:uuid;uniqueIndex:idx_compensation_events_project_reference"`
	Reference      string     `gorm:"not null;type:varchar(50);uniqueIndex:idx_compensation_events_project_reference"`
	ClauseRef      string     `gorm:"not null;type:varchar(50)"`
	Description    string     `gorm:"not null;type:text"`
	Status         string     `gorm:"not null;type:varchar(50);index"`
	EstimatedValue float64    `gorm:"not null;default:0"`
	RaisedBy       string     `gorm:"not null;type:varchar(255)"`
	RaisedAt       time.Time  `gorm:"not null"`
	ResponseDue    *time.Time
}

// TableName specifies the table name for GORM
func (CompensationEventModel) TableName() string {
	return "compensation_events"
}

// ToDomain converts GORM model to domain entity
func (m *CompensationEventModel) ToDomain() *notices.CompensationEvent {
	return &notices.CompensationEvent{
		ID:             m.ID,
		ProjectID:      m.ProjectID,
		Reference:      m.Reference,
		ClauseRef:      m.ClauseRef,
		Description:    m.Description,
		Status:         m.Status,
		EstimatedValue: m.EstimatedValue,
		RaisedBy:       m.RaisedBy,
		RaisedAt:       m.RaisedAt,
		ResponseDue:    m.ResponseDue,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CompensationEventModel) FromDomain(e *notices.CompensationEvent) {
	m.ID = e.ID
	m.ProjectID = e.ProjectID
	m.Reference = e.Reference
	m.ClauseRef = e.ClauseRef
	m.Description = e.Description
	m.Status = e.Status
	m.EstimatedValue = e.EstimatedValue
	m.RaisedBy = e.RaisedBy
	m.RaisedAt = e.RaisedAt
	m.ResponseDue = e.ResponseDue
}
