package models

import (
	"time"

	"github.com/google/uuid"
)

// Programme is a framework-governed container of projects. Tranches, ARTs,
// PIs and blueprints attach here depending on the framework.
type Programme struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID  `json:"manager_id" gorm:"type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Framework   Framework  `json:"methodology_framework" gorm:"type:varchar(20);not null;default:'generic'"`
	Status      WorkStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`

	Company  Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Manager  User      `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ProgrammeID"`
}

// TableName returns the table name for Programme
func (Programme) TableName() string {
	return "programmes"
}
