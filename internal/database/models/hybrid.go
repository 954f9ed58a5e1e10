package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// HybridConfig declares the methodology mix of a hybrid project: one primary,
// a set of secondaries excluding it, and a total phase -> methodology map.
// Secondaries and PhaseMap are JSONB ([]Methodology, map[string]Methodology).
type HybridConfig struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	Primary     Methodology     `json:"primary_methodology" gorm:"type:varchar(20);not null" validate:"required"`
	Secondaries json.RawMessage `json:"secondary_methodologies" gorm:"type:jsonb"`
	PhaseMap    json.RawMessage `json:"phase_map" gorm:"type:jsonb"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HybridConfig
func (HybridConfig) TableName() string {
	return "hybrid_configs"
}

// SecondarySet decodes the stored secondaries.
func (h *HybridConfig) SecondarySet() ([]Methodology, error) {
	if len(h.Secondaries) == 0 {
		return nil, nil
	}
	var out []Methodology
	if err := json.Unmarshal(h.Secondaries, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Phases decodes the stored phase -> methodology map.
func (h *HybridConfig) Phases() (map[string]Methodology, error) {
	if len(h.PhaseMap) == 0 {
		return nil, nil
	}
	out := map[string]Methodology{}
	if err := json.Unmarshal(h.PhaseMap, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Allows reports whether the given methodology is in {primary} + secondaries.
func (h *HybridConfig) Allows(m Methodology) bool {
	if m == h.Primary {
		return true
	}
	secondaries, err := h.SecondarySet()
	if err != nil {
		return false
	}
	for _, s := range secondaries {
		if s == m {
			return true
		}
	}
	return false
}

// HybridArtifact is a mixed-methodology artifact on a hybrid project. Its
// source methodology must be admitted by the project's HybridConfig.
type HybridArtifact struct {
	BaseModel
	CompanyID         uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID         uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Phase             string          `json:"phase" gorm:"size:100"`
	SourceMethodology Methodology     `json:"source_methodology" gorm:"type:varchar(20);not null" validate:"required"`
	TypeTag           string          `json:"type_tag" gorm:"not null;size:100" validate:"required,max=100"`
	Payload           json.RawMessage `json:"payload,omitempty" gorm:"type:jsonb"`
	Order             int             `json:"order" gorm:"column:artifact_order;not null;default:0"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HybridArtifact
func (HybridArtifact) TableName() string {
	return "hybrid_artifacts"
}
