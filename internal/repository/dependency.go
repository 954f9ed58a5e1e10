package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DependencyRepository handles precedence edges between projects
type DependencyRepository struct {
	db *gorm.DB
}

// NewDependencyRepository creates a new dependency repository
func NewDependencyRepository(db *gorm.DB) *DependencyRepository {
	return &DependencyRepository{db: db}
}

// Create creates a new dependency edge
func (r *DependencyRepository) Create(dep *models.Dependency) error {
	return r.db.Create(dep).Error
}

// GetByID retrieves a dependency by ID within the caller's tenant
func (r *DependencyRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Dependency, error) {
	var dep models.Dependency
	err := scope.Apply(r.db).First(&dep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dep, nil
}

// ListByScope retrieves all edges of one dependency graph. For programme
// scope the graph is the programme's edge set; for project scope it is the
// tenant-wide project graph.
func (r *DependencyRepository) ListByScope(scope auth.TenantScope, depScope models.DependencyScope, programmeID *uuid.UUID) ([]models.Dependency, error) {
	var deps []models.Dependency
	query := scope.Apply(r.db).Where("scope = ?", depScope)
	if programmeID != nil {
		query = query.Where("programme_id = ?", *programmeID)
	}
	err := query.Order("created_at").Find(&deps).Error
	if err != nil {
		return nil, err
	}
	return deps, nil
}

// Delete removes a dependency edge (hard delete; edges are never soft-kept)
func (r *DependencyRepository) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&models.Dependency{}, "id = ?", id).Error
}
