package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProgramComponent is a PMI program element with governance fields and
// depends_on edges that must stay acyclic.
type ProgramComponent struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID uuid.UUID       `json:"programme_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	Governance  json.RawMessage `json:"governance,omitempty" gorm:"type:jsonb"`
	DependsOn   json.RawMessage `json:"depends_on,omitempty" gorm:"type:jsonb"`

	Programme Programme `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ProgramComponent
func (ProgramComponent) TableName() string {
	return "pmi_program_components"
}

// Tranche is an MSP delivery step. Sequences per programme are {1..N}
// gap-free; LockVersion guards concurrent renumbering.
type Tranche struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID uuid.UUID  `json:"programme_id" gorm:"type:uuid;not null;uniqueIndex:idx_tranche_prog_seq" validate:"required"`
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Sequence    int        `json:"sequence" gorm:"not null;uniqueIndex:idx_tranche_prog_seq"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	LockVersion int        `json:"-" gorm:"not null;default:0"`

	Programme Programme `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tranche
func (Tranche) TableName() string {
	return "msp_tranches"
}

// Benefit is an MSP benefit with a target value and an append-only
// realization timeline.
type Benefit struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID uuid.UUID  `json:"programme_id" gorm:"type:uuid;not null;index" validate:"required"`
	TrancheID   *uuid.UUID `json:"tranche_id,omitempty" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	TargetValue float64    `json:"target_value" gorm:"not null" validate:"required"`
	Unit        string     `json:"unit" gorm:"size:50"`

	Programme    Programme            `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
	Realizations []BenefitRealization `json:"realizations,omitempty" gorm:"foreignKey:BenefitID"`
}

// TableName returns the table name for Benefit
func (Benefit) TableName() string {
	return "msp_benefits"
}

// BenefitRealization is an append-only realization entry against a benefit.
type BenefitRealization struct {
	BaseModel
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	BenefitID  uuid.UUID `json:"benefit_id" gorm:"type:uuid;not null;index" validate:"required"`
	Value      float64   `json:"value" gorm:"not null" validate:"required"`
	RealizedAt time.Time `json:"realized_at" gorm:"not null"`
	Note       string    `json:"note" gorm:"type:text"`

	Benefit Benefit `json:"-" gorm:"foreignKey:BenefitID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BenefitRealization
func (BenefitRealization) TableName() string {
	return "msp_benefit_realizations"
}

// BlueprintStatus is the lifecycle of a P2 programme blueprint version.
type BlueprintStatus string

const (
	BlueprintStatusDraft    BlueprintStatus = "draft"
	BlueprintStatusActive   BlueprintStatus = "active"
	BlueprintStatusArchived BlueprintStatus = "archived"
)

// IsValid checks if the BlueprintStatus is valid
func (s BlueprintStatus) IsValid() bool {
	switch s {
	case BlueprintStatusDraft, BlueprintStatusActive, BlueprintStatusArchived:
		return true
	}
	return false
}

// Blueprint describes the target operating model of a programme. Versions per
// programme are monotonic; at most one version is active at a time.
type Blueprint struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID uuid.UUID       `json:"programme_id" gorm:"type:uuid;not null;uniqueIndex:idx_blueprint_prog_version" validate:"required"`
	Version     int             `json:"version" gorm:"not null;uniqueIndex:idx_blueprint_prog_version"`
	Status      BlueprintStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	Content     json.RawMessage `json:"content,omitempty" gorm:"type:jsonb"`

	Programme Programme `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Blueprint
func (Blueprint) TableName() string {
	return "p2_blueprints"
}
