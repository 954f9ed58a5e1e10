package repository

import (
	"strings"
	"time"

	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByCompanyID retrieves all users of a company with pagination
func (r *UserRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.Model(&models.User{}).Where("company_id = ?", companyID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("email").Limit(limit).Offset(offset).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// TokenRepository handles verification and password-reset tokens
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Issue supersedes any live token for (user, purpose) and creates a new one.
// Keeps the invariant of at most one unused non-expired token per pair.
func (r *TokenRepository) Issue(token *models.AuthToken) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AuthToken{}).
			Where("user_id = ? AND purpose = ? AND is_used = false AND expires_at > ?",
				token.UserID, token.Purpose, time.Now()).
			Update("is_used", true).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// GetLive retrieves an unused, unexpired token by value and purpose
func (r *TokenRepository) GetLive(tokenValue string, purpose models.TokenPurpose) (*models.AuthToken, error) {
	var token models.AuthToken
	err := r.db.First(&token,
		"token = ? AND purpose = ? AND is_used = false AND expires_at > ?",
		tokenValue, purpose, time.Now()).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MarkUsed consumes a token
func (r *TokenRepository) MarkUsed(id uuid.UUID) error {
	return r.db.Model(&models.AuthToken{}).Where("id = ?", id).Update("is_used", true).Error
}
