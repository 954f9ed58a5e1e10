package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// IterationStatus is the lifecycle of a scrum iteration.
type IterationStatus string

const (
	IterationStatusPlanned   IterationStatus = "planned"
	IterationStatusActive    IterationStatus = "active"
	IterationStatusCompleted IterationStatus = "completed"
)

// IsValid checks if the IterationStatus is valid
func (s IterationStatus) IsValid() bool {
	switch s {
	case IterationStatusPlanned, IterationStatusActive, IterationStatusCompleted:
		return true
	}
	return false
}

// Iteration is a scrum time-box. Two active iterations of the same project
// must not overlap; LockVersion guards concurrent overlap checks.
type Iteration struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Goal        string          `json:"goal" gorm:"type:text"`
	StartDate   time.Time       `json:"start_date" gorm:"not null" validate:"required"`
	EndDate     time.Time       `json:"end_date" gorm:"not null"`
	Status      IterationStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
	LockVersion int             `json:"-" gorm:"not null;default:0"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Iteration
func (Iteration) TableName() string {
	return "scrum_iterations"
}

// DurationDays returns the inclusive-start exclusive-end length in days.
func (i *Iteration) DurationDays() int {
	return int(i.EndDate.Sub(i.StartDate).Hours() / 24)
}

// MarshalJSON adds the computed duration_days field to serialized iterations
// and surfaces the lock version clients must echo back on update.
func (i Iteration) MarshalJSON() ([]byte, error) {
	type alias Iteration
	return json.Marshal(struct {
		alias
		DurationDays int `json:"duration_days"`
		LockVersion  int `json:"lock_version"`
	}{alias(i), i.DurationDays(), i.LockVersion})
}

// BacklogItem is a MoSCoW-prioritized work item with a per-project unique order.
type BacklogItem struct {
	BaseModel
	CompanyID   uuid.UUID  `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_backlog_project_order" validate:"required"`
	IterationID *uuid.UUID `json:"iteration_id,omitempty" gorm:"type:uuid;index"`
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	Priority    Priority   `json:"priority" gorm:"type:varchar(10);not null;default:'should'"`
	StoryPoints int        `json:"story_points" gorm:"default:0" validate:"min=0"`
	Order       int        `json:"order" gorm:"column:item_order;not null;uniqueIndex:idx_backlog_project_order"`
	IsDone      bool       `json:"is_done" gorm:"default:false"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for BacklogItem
func (BacklogItem) TableName() string {
	return "scrum_backlog_items"
}

// DailyUpdate is a stand-up note keyed by (iteration, date, author).
type DailyUpdate struct {
	BaseModel
	CompanyID   uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	IterationID uuid.UUID `json:"iteration_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_iter_date_author" validate:"required"`
	AuthorID    uuid.UUID `json:"author_id" gorm:"type:uuid;not null;uniqueIndex:idx_daily_iter_date_author"`
	Date        time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_daily_iter_date_author" validate:"required"`
	Yesterday   string    `json:"yesterday" gorm:"type:text"`
	Today       string    `json:"today" gorm:"type:text"`
	Blockers    string    `json:"blockers" gorm:"type:text"`

	Iteration Iteration `json:"-" gorm:"foreignKey:IterationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DailyUpdate
func (DailyUpdate) TableName() string {
	return "scrum_daily_updates"
}

// DoDItem is a Definition of Done criterion at project, iteration or task scope.
type DoDItem struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Scope     DoDScope  `json:"scope" gorm:"type:varchar(10);not null;default:'project'"`
	Criterion string    `json:"criterion" gorm:"not null;size:500" validate:"required,max=500"`
	Order     int       `json:"order" gorm:"column:item_order;not null;default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DoDItem
func (DoDItem) TableName() string {
	return "scrum_dod_items"
}
