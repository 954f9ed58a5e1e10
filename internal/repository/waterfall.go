package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MilestoneRepository handles waterfall and core project milestones
type MilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new milestone repository
func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// Create creates a new milestone
func (r *MilestoneRepository) Create(milestone *models.Milestone) error {
	return r.db.Create(milestone).Error
}

// GetByID retrieves a milestone by ID within the caller's tenant
func (r *MilestoneRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Milestone, error) {
	var milestone models.Milestone
	err := scope.Apply(r.db).First(&milestone, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

// ListByProject retrieves a project's milestones ordered by due date
func (r *MilestoneRepository) ListByProject(scope auth.TenantScope, projectID uuid.UUID) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("due_date, id").Find(&milestones).Error
	return milestones, err
}

// Update updates a milestone
func (r *MilestoneRepository) Update(milestone *models.Milestone) error {
	return r.db.Save(milestone).Error
}

// SoftDelete soft-deletes a milestone
func (r *MilestoneRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Milestone{}, "id = ?", id).Error
}
