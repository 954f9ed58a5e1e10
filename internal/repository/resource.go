package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create creates a new resource
func (r *ResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// GetByID retrieves a resource by ID within the caller's tenant
func (r *ResourceRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := scope.Apply(r.db).First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// ListByProject retrieves the resources of a project
func (r *ResourceRepository) ListByProject(scope auth.TenantScope, projectID uuid.UUID) ([]models.Resource, error) {
	var resources []models.Resource
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("name").Find(&resources).Error
	return resources, err
}

// ListByProgramme retrieves resources across a programme: those owned by the
// programme plus those of its projects.
func (r *ResourceRepository) ListByProgramme(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Resource, error) {
	var resources []models.Resource
	err := scope.Apply(r.db).
		Where("programme_id = ? OR project_id IN (?)", programmeID,
			r.db.Model(&models.Project{}).Select("id").Where("programme_id = ?", programmeID)).
		Order("name").Find(&resources).Error
	return resources, err
}

// SumAllocationByName sums allocation of same-named person resources in the
// tenant, excluding one resource (for update checks).
func (r *ResourceRepository) SumAllocationByName(scope auth.TenantScope, name string, excludeID uuid.UUID) (int, error) {
	var total *int
	err := scope.Apply(r.db.Model(&models.Resource{})).
		Where("name = ? AND type = ? AND id <> ?", name, models.ResourceTypePerson, excludeID).
		Select("sum(allocation_percentage)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// Update updates a resource
func (r *ResourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

// SoftDelete soft-deletes a resource
func (r *ResourceRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}
