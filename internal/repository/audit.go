package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"gorm.io/gorm"
)

// AuditRepository appends to and reads the audit log
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append writes an audit entry. Entries are never updated or deleted.
func (r *AuditRepository) Append(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// List retrieves audit entries for the tenant, newest first
func (r *AuditRepository) List(scope auth.TenantScope, entityType string, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := scope.Apply(r.db.Model(&models.AuditLog{}))
	if entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
