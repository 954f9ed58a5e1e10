package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StageStatus is the lifecycle of a PRINCE2 stage.
type StageStatus string

const (
	StageStatusPlanned   StageStatus = "planned"
	StageStatusActive    StageStatus = "active"
	StageStatusCompleted StageStatus = "completed"
)

// IsValid checks if the StageStatus is valid
func (s StageStatus) IsValid() bool {
	switch s {
	case StageStatusPlanned, StageStatusActive, StageStatusCompleted:
		return true
	}
	return false
}

// Stage is an ordered PRINCE2 management stage. Gate approval requires the
// previous stage in order to be completed.
type Stage struct {
	BaseModel
	CompanyID    uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID    uuid.UUID   `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_stage_project_order" validate:"required"`
	Name         string      `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Order        int         `json:"order" gorm:"column:stage_order;not null;uniqueIndex:idx_stage_project_order"`
	Status       StageStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
	GateApproved bool        `json:"gate_approved" gorm:"default:false"`
	ApprovedAt   *time.Time  `json:"approved_at,omitempty"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Stage
func (Stage) TableName() string {
	return "prince2_stages"
}

// Product is a PRINCE2 product with quality criteria. Approval requires every
// criterion checked; criteria/checks are stored as JSONB sets.
type Product struct {
	BaseModel
	CompanyID       uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID       uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	StageID         *uuid.UUID      `json:"stage_id,omitempty" gorm:"type:uuid;index"`
	Name            string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	QualityCriteria json.RawMessage `json:"quality_criteria" gorm:"type:jsonb"`
	CheckedCriteria json.RawMessage `json:"checked_criteria" gorm:"type:jsonb"`
	IsApproved      bool            `json:"is_approved" gorm:"default:false"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "prince2_products"
}
