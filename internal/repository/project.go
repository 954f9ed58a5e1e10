package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID within the caller's tenant
func (r *ProjectRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := scope.Apply(r.db).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByIDIncludeDeleted retrieves a project even if soft-deleted (admin reads)
func (r *ProjectRepository) GetByIDIncludeDeleted(scope auth.TenantScope, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := scope.Apply(r.db.Unscoped()).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by name within a company
func (r *ProjectRepository) GetByName(companyID uuid.UUID, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "company_id = ? AND name = ?", companyID, name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List retrieves projects for the tenant with optional status and methodology filters
func (r *ProjectRepository) List(scope auth.TenantScope, status models.WorkStatus, methodology models.Methodology, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := scope.Apply(r.db.Model(&models.Project{}))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if methodology != "" {
		query = query.Where("methodology = ?", methodology)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// ListByProgramme retrieves the projects of a programme
func (r *ProjectRepository) ListByProgramme(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).Order("name").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// SoftDelete soft-deletes a project and cascades to its owned artifacts.
func (r *ProjectRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Columns and cards hang off boards, not the project, so collect
		// the board IDs before the boards themselves are deleted.
		var boardIDs []uuid.UUID
		if err := tx.Model(&models.Board{}).Where("project_id = ?", id).Pluck("id", &boardIDs).Error; err != nil {
			return err
		}
		if len(boardIDs) > 0 {
			if err := tx.Where("board_id IN ?", boardIDs).Delete(&models.Card{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id IN ?", boardIDs).Delete(&models.Column{}).Error; err != nil {
				return err
			}
		}
		owned := []interface{}{
			&models.Milestone{},
			&models.Iteration{},
			&models.BacklogItem{},
			&models.DoDItem{},
			&models.Board{},
			&models.WorkPolicy{},
			&models.Stage{},
			&models.Product{},
			&models.DMAICRecord{},
			&models.SixSigmaMetric{},
			&models.HypothesisTest{},
			&models.DoExperiment{},
			&models.SPCChart{},
			&models.ControlPlan{},
			&models.HybridConfig{},
			&models.HybridArtifact{},
		}
		for _, model := range owned {
			if err := tx.Where("project_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// CountByStatus returns project counts per status for the tenant
func (r *ProjectRepository) CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error) {
	return countByStatus(scope.Apply(r.db.Model(&models.Project{})))
}

// CountByMethodology returns project counts per methodology for the tenant
func (r *ProjectRepository) CountByMethodology(scope auth.TenantScope) (map[models.Methodology]int64, error) {
	var rows []struct {
		Methodology models.Methodology
		Count       int64
	}
	query := scope.Apply(r.db.Model(&models.Project{}))
	if err := query.Select("methodology, count(*) as count").Group("methodology").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.Methodology]int64, len(rows))
	for _, row := range rows {
		out[row.Methodology] = row.Count
	}
	return out, nil
}
