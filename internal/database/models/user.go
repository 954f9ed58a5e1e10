package models

import (
	"github.com/google/uuid"
)

// UserRole is the single account-level role of a user.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleMember     UserRole = "member"
	RoleGuest      UserRole = "guest"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleMember, RoleGuest:
		return true
	}
	return false
}

// User represents an account. A user belongs to at most one company;
// super admins are cross-tenant and carry no company.
type User struct {
	BaseModel
	CompanyID    *uuid.UUID `json:"company_id,omitempty" gorm:"type:uuid;index"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string     `json:"-" gorm:"not null;size:255"`
	FirstName    string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName     string     `json:"last_name" gorm:"size:100" validate:"max=100"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`
	ProfileImage string     `json:"profile_image,omitempty" gorm:"size:500"`
	Theme        string     `json:"theme" gorm:"size:20;default:'light'"`
	IsVerified   bool       `json:"is_verified" gorm:"default:false"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
