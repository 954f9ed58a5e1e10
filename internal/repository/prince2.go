package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Prince2Repository handles PRINCE2 stages and products
type Prince2Repository struct {
	db *gorm.DB
}

// NewPrince2Repository creates a new PRINCE2 repository
func NewPrince2Repository(db *gorm.DB) *Prince2Repository {
	return &Prince2Repository{db: db}
}

// CreateStage creates a new stage
func (r *Prince2Repository) CreateStage(stage *models.Stage) error {
	return r.db.Create(stage).Error
}

// GetStage retrieves a stage by ID within the caller's tenant
func (r *Prince2Repository) GetStage(scope auth.TenantScope, id uuid.UUID) (*models.Stage, error) {
	var stage models.Stage
	err := scope.Apply(r.db).First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// ListStages retrieves a project's stages in order
func (r *Prince2Repository) ListStages(scope auth.TenantScope, projectID uuid.UUID) ([]models.Stage, error) {
	var stages []models.Stage
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("stage_order, id").Find(&stages).Error
	return stages, err
}

// GetStageByOrder retrieves a specific stage of a project by its order
func (r *Prince2Repository) GetStageByOrder(projectID uuid.UUID, order int) (*models.Stage, error) {
	var stage models.Stage
	err := r.db.First(&stage, "project_id = ? AND stage_order = ?", projectID, order).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// UpdateStage updates a stage
func (r *Prince2Repository) UpdateStage(stage *models.Stage) error {
	return r.db.Save(stage).Error
}

// SoftDeleteStage soft-deletes a stage
func (r *Prince2Repository) SoftDeleteStage(id uuid.UUID) error {
	return r.db.Delete(&models.Stage{}, "id = ?", id).Error
}

// CreateProduct creates a new product
func (r *Prince2Repository) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

// GetProduct retrieves a product by ID within the caller's tenant
func (r *Prince2Repository) GetProduct(scope auth.TenantScope, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := scope.Apply(r.db).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts retrieves a project's products
func (r *Prince2Repository) ListProducts(scope auth.TenantScope, projectID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("name").Find(&products).Error
	return products, err
}

// UpdateProduct updates a product
func (r *Prince2Repository) UpdateProduct(product *models.Product) error {
	return r.db.Save(product).Error
}

// SoftDeleteProduct soft-deletes a product
func (r *Prince2Repository) SoftDeleteProduct(id uuid.UUID) error {
	return r.db.Delete(&models.Product{}, "id = ?", id).Error
}
