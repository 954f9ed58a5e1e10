package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the central work entity. It carries exactly one primary
// methodology from the catalog; hybrid projects declare their mix in a
// HybridConfig row.
type Project struct {
	BaseModel
	CompanyID   uuid.UUID   `json:"company_id" gorm:"type:uuid;not null;index"`
	PortfolioID *uuid.UUID  `json:"portfolio_id,omitempty" gorm:"type:uuid;index"`
	ProgrammeID *uuid.UUID  `json:"programme_id,omitempty" gorm:"type:uuid;index"`
	Name        string      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string      `json:"description" gorm:"type:text"`
	Methodology Methodology `json:"methodology" gorm:"type:varchar(20);not null" validate:"required"`
	Status      WorkStatus  `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`

	Company   Company    `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Portfolio *Portfolio `json:"portfolio,omitempty" gorm:"foreignKey:PortfolioID"`
	Programme *Programme `json:"programme,omitempty" gorm:"foreignKey:ProgrammeID"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// DependencyScope is the graph a dependency edge belongs to.
type DependencyScope string

const (
	DependencyScopeProject   DependencyScope = "project"
	DependencyScopeProgramme DependencyScope = "programme"
)

// Dependency is a precedence edge between two projects. Edges within a scope
// must stay acyclic; both ends share one tenant.
type Dependency struct {
	BaseModel
	CompanyID     uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProgrammeID   *uuid.UUID      `json:"programme_id,omitempty" gorm:"type:uuid;index"`
	PredecessorID uuid.UUID       `json:"predecessor_id" gorm:"type:uuid;not null;index" validate:"required"`
	SuccessorID   uuid.UUID       `json:"successor_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type          DependencyType  `json:"type" gorm:"type:varchar(2);not null;default:'FS'"`
	Scope         DependencyScope `json:"scope" gorm:"type:varchar(10);not null;default:'project'"`

	Predecessor Project `json:"predecessor,omitempty" gorm:"foreignKey:PredecessorID"`
	Successor   Project `json:"successor,omitempty" gorm:"foreignKey:SuccessorID"`
}

// TableName returns the table name for Dependency
func (Dependency) TableName() string {
	return "dependencies"
}

// ResourceType classifies a resource.
type ResourceType string

const (
	ResourceTypePerson    ResourceType = "person"
	ResourceTypeEquipment ResourceType = "equipment"
	ResourceTypeBudget    ResourceType = "budget"
)

// IsValid checks if the ResourceType is valid
func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceTypePerson, ResourceTypeEquipment, ResourceTypeBudget:
		return true
	}
	return false
}

// Resource is an allocation owned by a project or programme. Allocations of
// one person across projects should not exceed 100%; exceeding warns unless
// the resource is a declared hard constraint.
type Resource struct {
	BaseModel
	CompanyID            uuid.UUID    `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID            *uuid.UUID   `json:"project_id,omitempty" gorm:"type:uuid;index"`
	ProgrammeID          *uuid.UUID   `json:"programme_id,omitempty" gorm:"type:uuid;index"`
	Name                 string       `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Type                 ResourceType `json:"type" gorm:"type:varchar(20);not null;default:'person'"`
	AllocationPercentage int          `json:"allocation_percentage" gorm:"not null;default:0" validate:"min=0,max=100"`
	SharedAcrossProjects bool         `json:"shared_across_projects" gorm:"default:false"`
	HardConstraint       bool         `json:"hard_constraint" gorm:"default:false"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}

// Milestone is a dated checkpoint on a project. It doubles as the Waterfall
// artifact set; completion records its timestamp.
type Milestone struct {
	BaseModel
	CompanyID   uuid.UUID       `json:"company_id" gorm:"type:uuid;not null;index"`
	ProjectID   uuid.UUID       `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string          `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string          `json:"description" gorm:"type:text"`
	DueDate     time.Time       `json:"due_date" gorm:"not null" validate:"required"`
	Status      MilestoneStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}
