package models

import (
	"github.com/google/uuid"
)

// Portfolio groups programmes and projects within a company. A super admin
// may create a global portfolio with no company.
type Portfolio struct {
	BaseModel
	CompanyID   *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Status      WorkStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`

	Company  *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Owner    User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:PortfolioID"`
}

// TableName returns the table name for Portfolio
func (Portfolio) TableName() string {
	return "portfolios"
}
