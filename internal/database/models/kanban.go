package models

import (
	"github.com/google/uuid"
)

// Board owns the ordered columns of a Kanban project.
type Board struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text"`

	Project Project  `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Columns []Column `json:"columns,omitempty" gorm:"foreignKey:BoardID"`
}

// TableName returns the table name for Board
func (Board) TableName() string {
	return "kanban_boards"
}

// Column is an ordered lane on a board. WIPLimit nil means unlimited;
// CountsWIP marks in-progress style columns whose cards occupy the budget.
type Column struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	BoardID     uuid.UUID `json:"board_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Order       int       `json:"order" gorm:"column:column_order;not null;default:0"`
	WIPLimit    *int      `json:"wip_limit,omitempty"`
	CountsWIP   bool      `json:"counts_wip" gorm:"default:true"`
	LockVersion int       `json:"-" gorm:"not null;default:0"`

	Board Board  `json:"-" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Cards []Card `json:"cards,omitempty" gorm:"foreignKey:ColumnID"`
}

// TableName returns the table name for Column
func (Column) TableName() string {
	return "kanban_columns"
}

// Card is a work item positioned within a column. Moves are compare-and-swap
// on LockVersion; a stale version surfaces as a retryable conflict.
type Card struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	BoardID     uuid.UUID  `json:"board_id" gorm:"type:uuid;not null;index"`
	ColumnID    uuid.UUID  `json:"column_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Position    int        `json:"position" gorm:"not null;default:0"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid"`
	LockVersion int        `json:"lock_version" gorm:"not null;default:0"`

	Column Column `json:"-" gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Card
func (Card) TableName() string {
	return "kanban_cards"
}

// WorkPolicy is an explicit team policy on a Kanban project, listed in
// stable (order, id) order.
type WorkPolicy struct {
	BaseModel
	CompanyID uuid.UUID      `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID      `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Title     string         `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Category  PolicyCategory `json:"category" gorm:"type:varchar(20);not null;default:'workflow'"`
	Order     int            `json:"order" gorm:"column:policy_order;not null;default:0"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkPolicy
func (WorkPolicy) TableName() string {
	return "kanban_work_policies"
}
