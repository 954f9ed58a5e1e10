package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgrammeRepository handles database operations for programmes
type ProgrammeRepository struct {
	db *gorm.DB
}

// NewProgrammeRepository creates a new programme repository
func NewProgrammeRepository(db *gorm.DB) *ProgrammeRepository {
	return &ProgrammeRepository{db: db}
}

// Create creates a new programme
func (r *ProgrammeRepository) Create(programme *models.Programme) error {
	return r.db.Create(programme).Error
}

// GetByID retrieves a programme by ID within the caller's tenant
func (r *ProgrammeRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Programme, error) {
	var programme models.Programme
	err := scope.Apply(r.db).First(&programme, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &programme, nil
}

// GetWithProjects retrieves a programme with its projects preloaded
func (r *ProgrammeRepository) GetWithProjects(scope auth.TenantScope, id uuid.UUID) (*models.Programme, error) {
	var programme models.Programme
	err := scope.Apply(r.db).Preload("Projects").First(&programme, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &programme, nil
}

// List retrieves programmes for the tenant, optionally filtered by status
func (r *ProgrammeRepository) List(scope auth.TenantScope, status models.WorkStatus, limit, offset int) ([]models.Programme, int64, error) {
	var programmes []models.Programme
	var total int64

	query := scope.Apply(r.db.Model(&models.Programme{}))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&programmes).Error
	if err != nil {
		return nil, 0, err
	}
	return programmes, total, nil
}

// Update updates a programme
func (r *ProgrammeRepository) Update(programme *models.Programme) error {
	return r.db.Save(programme).Error
}

// SoftDelete soft-deletes a programme
func (r *ProgrammeRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Programme{}, "id = ?", id).Error
}

// CountByStatus returns programme counts per status for the tenant
func (r *ProgrammeRepository) CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error) {
	return countByStatus(scope.Apply(r.db.Model(&models.Programme{})))
}
