package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HybridRepository handles hybrid configs and mixed-methodology artifacts
type HybridRepository struct {
	db *gorm.DB
}

// NewHybridRepository creates a new hybrid repository
func NewHybridRepository(db *gorm.DB) *HybridRepository {
	return &HybridRepository{db: db}
}

// CreateConfig creates a hybrid config for a project
func (r *HybridRepository) CreateConfig(config *models.HybridConfig) error {
	return r.db.Create(config).Error
}

// GetConfigByProject retrieves a project's hybrid config
func (r *HybridRepository) GetConfigByProject(scope auth.TenantScope, projectID uuid.UUID) (*models.HybridConfig, error) {
	var config models.HybridConfig
	err := scope.Apply(r.db).First(&config, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// UpdateConfig updates a hybrid config
func (r *HybridRepository) UpdateConfig(config *models.HybridConfig) error {
	return r.db.Save(config).Error
}

// CreateArtifact creates a hybrid artifact
func (r *HybridRepository) CreateArtifact(artifact *models.HybridArtifact) error {
	return r.db.Create(artifact).Error
}

// GetArtifact retrieves a hybrid artifact by ID within the caller's tenant
func (r *HybridRepository) GetArtifact(scope auth.TenantScope, id uuid.UUID) (*models.HybridArtifact, error) {
	var artifact models.HybridArtifact
	err := scope.Apply(r.db).First(&artifact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

// ListArtifacts retrieves a project's hybrid artifacts in stable order
func (r *HybridRepository) ListArtifacts(scope auth.TenantScope, projectID uuid.UUID) ([]models.HybridArtifact, error) {
	var artifacts []models.HybridArtifact
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("artifact_order, id").Find(&artifacts).Error
	return artifacts, err
}

// UpdateArtifact updates a hybrid artifact
func (r *HybridRepository) UpdateArtifact(artifact *models.HybridArtifact) error {
	return r.db.Save(artifact).Error
}

// SoftDeleteArtifact soft-deletes a hybrid artifact
func (r *HybridRepository) SoftDeleteArtifact(id uuid.UUID) error {
	return r.db.Delete(&models.HybridArtifact{}, "id = ?", id).Error
}
