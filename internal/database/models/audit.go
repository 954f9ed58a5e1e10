package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of an accepted mutation. Rows are never
// updated or deleted; it deliberately skips BaseModel's soft delete.
type AuditLog struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CompanyID  *uuid.UUID      `json:"company_id,omitempty" gorm:"type:uuid;index"`
	ActorID    uuid.UUID       `json:"actor_id" gorm:"type:uuid;not null;index"`
	ActorEmail string          `json:"actor_email" gorm:"size:255"`
	Action     string          `json:"action" gorm:"not null;size:100;index"`
	EntityType string          `json:"entity_type" gorm:"not null;size:100;index"`
	EntityID   uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	Before     json.RawMessage `json:"before,omitempty" gorm:"type:jsonb"`
	After      json.RawMessage `json:"after,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets the UUID if not already set
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
