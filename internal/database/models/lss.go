package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DMAICRecord is a Lean Six Sigma phase record. Phases per project advance
// strictly in D -> M -> A -> I -> C order.
type DMAICRecord struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_dmaic_project_phase,priority:3"`
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_dmaic_project_phase,priority:1" validate:"required"`
	Phase       DMAICPhase `json:"phase" gorm:"type:varchar(10);not null;uniqueIndex:idx_dmaic_project_phase,priority:2" validate:"required"`
	Summary     string     `json:"summary" gorm:"type:text"`
	IsComplete  bool       `json:"is_complete" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DMAICRecord
func (DMAICRecord) TableName() string {
	return "lss_dmaic_records"
}

// SixSigmaMetric is a measurement keyed by metric_type within a project phase.
type SixSigmaMetric struct {
	BaseModel
	CompanyID  uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID  uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_lss_metric_key,priority:1" validate:"required"`
	Phase      DMAICPhase `json:"phase" gorm:"type:varchar(10);not null;uniqueIndex:idx_lss_metric_key,priority:2"`
	MetricType string     `json:"metric_type" gorm:"not null;size:100;uniqueIndex:idx_lss_metric_key,priority:3" validate:"required,max=100"`
	Value      float64    `json:"value" gorm:"not null"`
	Unit       string     `json:"unit" gorm:"size:50"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SixSigmaMetric
func (SixSigmaMetric) TableName() string {
	return "lss_metrics"
}

// HypothesisTest stores a statistical test artifact. The core validates the
// bounds of alpha and p_value; it does not compute them.
type HypothesisTest struct {
	BaseModel
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	TestType   string    `json:"test_type" gorm:"size:100"`
	Alpha      float64   `json:"alpha" gorm:"not null"`
	PValue     float64   `json:"p_value" gorm:"not null"`
	Conclusion string    `json:"conclusion" gorm:"type:text"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HypothesisTest
func (HypothesisTest) TableName() string {
	return "lss_hypothesis_tests"
}

// DoExperiment is a design-of-experiments artifact with at least one factor
// and two or more levels.
type DoExperiment struct {
	BaseModel
	CompanyID uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Factors   json.RawMessage `json:"factors" gorm:"type:jsonb"`
	Levels    int             `json:"levels" gorm:"not null" validate:"min=2"`
	Response  string          `json:"response" gorm:"size:200"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DoExperiment
func (DoExperiment) TableName() string {
	return "lss_doe_experiments"
}

// SPCChart stores control chart limits; lcl <= center_line <= ucl.
type SPCChart struct {
	BaseModel
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	ChartType  string    `json:"chart_type" gorm:"size:50"`
	LCL        float64   `json:"lcl" gorm:"not null"`
	CenterLine float64   `json:"center_line" gorm:"not null"`
	UCL        float64   `json:"ucl" gorm:"not null"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SPCChart
func (SPCChart) TableName() string {
	return "lss_spc_charts"
}

// ControlPlan records monitoring and reaction steps for a controlled process.
type ControlPlan struct {
	BaseModel
	CompanyID     uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID     uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Metric        string          `json:"metric" gorm:"size:200"`
	ReactionSteps json.RawMessage `json:"reaction_steps" gorm:"type:jsonb"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ControlPlan
func (ControlPlan) TableName() string {
	return "lss_control_plans"
}
