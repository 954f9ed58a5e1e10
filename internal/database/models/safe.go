package models

import (
	"time"

	"github.com/google/uuid"
)

// ART is a SAFe Agile Release Train attached to a programme.
type ART struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID uuid.UUID `json:"programme_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Cadence     string    `json:"cadence" gorm:"size:50"`

	Programme Programme `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ART
func (ART) TableName() string {
	return "safe_arts"
}

// ProgramIncrement is a SAFe time-box holding at least one iteration.
type ProgramIncrement struct {
	BaseModel
	CompanyID      uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID    uuid.UUID  `json:"programme_id" gorm:"type:uuid;not null;index" validate:"required"`
	ARTID          *uuid.UUID `json:"art_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	IterationCount int        `json:"iteration_count" gorm:"not null;default:5" validate:"min=1"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`

	Programme  Programme     `json:"-" gorm:"foreignKey:ProgrammeID;constraint:OnDelete:CASCADE"`
	Objectives []PIObjective `json:"objectives,omitempty" gorm:"foreignKey:ProgramIncrementID"`
}

// TableName returns the table name for ProgramIncrement
func (ProgramIncrement) TableName() string {
	return "safe_program_increments"
}

// PIObjective carries a 1-10 business value and a committed flag.
type PIObjective struct {
	BaseModel
	CompanyID          uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgramIncrementID uuid.UUID `json:"program_increment_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title              string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	BusinessValue      int       `json:"business_value" gorm:"not null" validate:"min=1,max=10"`
	IsCommitted        bool      `json:"is_committed" gorm:"default:false"`

	ProgramIncrement ProgramIncrement `json:"-" gorm:"foreignKey:ProgramIncrementID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PIObjective
func (PIObjective) TableName() string {
	return "safe_pi_objectives"
}

// ARTSyncMeeting is an append-only, date-stamped sync record for an ART.
type ARTSyncMeeting struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ARTID     uuid.UUID `json:"art_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date      time.Time `json:"date" gorm:"type:date;not null" validate:"required"`
	Notes     string    `json:"notes" gorm:"type:text"`

	ART ART `json:"-" gorm:"foreignKey:ARTID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ARTSyncMeeting
func (ARTSyncMeeting) TableName() string {
	return "safe_art_sync_meetings"
}
