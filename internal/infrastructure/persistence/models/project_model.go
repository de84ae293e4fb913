package models

import (
	"time"

	"github.com/wesrioswart/nervecontract/internal/domain/projects"
)

// ProjectModel is the GORM database model for projects (infrastructure concern)
type ProjectModel struct {
	ID                string     `gorm:"primaryKey;type:uuid"`
	Name              string     `gorm:"not null;type:varchar(255)"`
	ContractReference string     `gorm:"not null;type:varchar(100);index"`
	ContractType      string     `gorm:"not null;type:varchar(100)"`
	Client            string     `gorm:"not null;type:varchar(255)"`
	StartDate         time.Time  `gorm:"not null"`
	CompletionDate    *time.Time
	Status            string     `gorm:"not null;type:varchar(50);index"`
	CreatedAt         time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	return &projects.Project{
		ID:                m.ID,
		Name:              m.Name,
		ContractReference: m.ContractReference,
		ContractType:      m.ContractType,
		Client:            m.Client,
		StartDate:         m.StartDate,
		CompletionDate:    m.CompletionDate,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Name = p.Name
	m.ContractReference = p.ContractReference
	m.ContractType = p.ContractType
	m.Client = p.Client
	m.StartDate = p.StartDate
	m.CompletionDate = p.CompletionDate
	m.Status = p.Status
	m.CreatedAt = p.CreatedAt
}
