package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenPurpose distinguishes verification from password-reset tokens.
type TokenPurpose string

const (
	TokenPurposeVerification  TokenPurpose = "verification"
	TokenPurposePasswordReset TokenPurpose = "password_reset"
)

// AuthToken is a single-use, time-bounded token owned by a user. At most one
// unused non-expired token exists per (user, purpose); issuing a new one
// supersedes the previous.
type AuthToken struct {
	BaseModel
	UserID    uuid.UUID    `json:"user_id" gorm:"type:uuid;not null;index"`
	Token     string       `json:"token" gorm:"uniqueIndex;not null;size:64"`
	Purpose   TokenPurpose `json:"purpose" gorm:"type:varchar(20);not null;index"`
	ExpiresAt time.Time    `json:"expires_at" gorm:"not null"`
	IsUsed    bool         `json:"is_used" gorm:"default:false"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AuthToken
func (AuthToken) TableName() string {
	return "auth_tokens"
}

// IsExpired reports whether the token is past its expiry.
func (t *AuthToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsLive reports whether the token can still be consumed.
func (t *AuthToken) IsLive(now time.Time) bool {
	return !t.IsUsed && !t.IsExpired(now)
}
