package repository

import (
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScrumRepository handles iterations, backlog items, daily updates and DoD
type ScrumRepository struct {
	db *gorm.DB
}

// NewScrumRepository creates a new scrum repository
func NewScrumRepository(db *gorm.DB) *ScrumRepository {
	return &ScrumRepository{db: db}
}

// CreateIteration creates a new iteration
func (r *ScrumRepository) CreateIteration(iteration *models.Iteration) error {
	return r.db.Create(iteration).Error
}

// GetIteration retrieves an iteration by ID within the caller's tenant
func (r *ScrumRepository) GetIteration(scope auth.TenantScope, id uuid.UUID) (*models.Iteration, error) {
	var iteration models.Iteration
	err := scope.Apply(r.db).First(&iteration, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &iteration, nil
}

// ListIterations retrieves a project's iterations ordered by start date
func (r *ScrumRepository) ListIterations(scope auth.TenantScope, projectID uuid.UUID) ([]models.Iteration, error) {
	var iterations []models.Iteration
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("start_date, id").Find(&iterations).Error
	return iterations, err
}

// CountOverlappingActive counts active iterations of the project whose date
// range intersects [start, end), excluding one iteration.
func (r *ScrumRepository) CountOverlappingActive(projectID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Iteration{}).
		Where("project_id = ? AND status = ? AND id <> ?", projectID, models.IterationStatusActive, excludeID).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	return count, err
}

// UpdateIteration updates an iteration with an optimistic version check.
func (r *ScrumRepository) UpdateIteration(iteration *models.Iteration, expectedVersion int) (bool, error) {
	iteration.LockVersion = expectedVersion + 1
	res := r.db.Model(&models.Iteration{}).
		Where("id = ? AND lock_version = ?", iteration.ID, expectedVersion).
		Updates(iteration)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SoftDeleteIteration soft-deletes an iteration
func (r *ScrumRepository) SoftDeleteIteration(id uuid.UUID) error {
	return r.db.Delete(&models.Iteration{}, "id = ?", id).Error
}

// CreateBacklogItem creates a new backlog item
func (r *ScrumRepository) CreateBacklogItem(item *models.BacklogItem) error {
	return r.db.Create(item).Error
}

// GetBacklogItem retrieves a backlog item by ID within the caller's tenant
func (r *ScrumRepository) GetBacklogItem(scope auth.TenantScope, id uuid.UUID) (*models.BacklogItem, error) {
	var item models.BacklogItem
	err := scope.Apply(r.db).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListBacklog retrieves a project's backlog in stable order
func (r *ScrumRepository) ListBacklog(scope auth.TenantScope, projectID uuid.UUID) ([]models.BacklogItem, error) {
	var items []models.BacklogItem
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("item_order, id").Find(&items).Error
	return items, err
}

// OrderTaken reports whether a backlog order is already used in the project.
func (r *ScrumRepository) OrderTaken(projectID uuid.UUID, order int, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.BacklogItem{}).
		Where("project_id = ? AND item_order = ? AND id <> ?", projectID, order, excludeID).
		Count(&count).Error
	return count > 0, err
}

// UpdateBacklogItem updates a backlog item
func (r *ScrumRepository) UpdateBacklogItem(item *models.BacklogItem) error {
	return r.db.Save(item).Error
}

// SoftDeleteBacklogItem soft-deletes a backlog item
func (r *ScrumRepository) SoftDeleteBacklogItem(id uuid.UUID) error {
	return r.db.Delete(&models.BacklogItem{}, "id = ?", id).Error
}

// CreateDailyUpdate creates a stand-up note
func (r *ScrumRepository) CreateDailyUpdate(update *models.DailyUpdate) error {
	return r.db.Create(update).Error
}

// GetDailyUpdateByKey retrieves a note by its (iteration, date, author) key
func (r *ScrumRepository) GetDailyUpdateByKey(iterationID, authorID uuid.UUID, date time.Time) (*models.DailyUpdate, error) {
	var update models.DailyUpdate
	err := r.db.First(&update,
		"iteration_id = ? AND author_id = ? AND date = ?", iterationID, authorID, date).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// ListDailyUpdates retrieves an iteration's notes ordered by date
func (r *ScrumRepository) ListDailyUpdates(scope auth.TenantScope, iterationID uuid.UUID) ([]models.DailyUpdate, error) {
	var updates []models.DailyUpdate
	err := scope.Apply(r.db).Where("iteration_id = ?", iterationID).
		Order("date, id").Find(&updates).Error
	return updates, err
}

// CreateDoDItems inserts a batch of DoD criteria
func (r *ScrumRepository) CreateDoDItems(items []models.DoDItem) error {
	return r.db.Create(&items).Error
}

// ListDoD retrieves the DoD of a project, optionally scoped
func (r *ScrumRepository) ListDoD(scope auth.TenantScope, projectID uuid.UUID, dodScope models.DoDScope) ([]models.DoDItem, error) {
	var items []models.DoDItem
	query := scope.Apply(r.db).Where("project_id = ?", projectID)
	if dodScope != "" {
		query = query.Where("scope = ?", dodScope)
	}
	err := query.Order("item_order, id").Find(&items).Error
	return items, err
}

// CountDoD counts DoD entries of a project
func (r *ScrumRepository) CountDoD(projectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.DoDItem{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// GetDoDItem retrieves a DoD criterion by ID within the caller's tenant
func (r *ScrumRepository) GetDoDItem(scope auth.TenantScope, id uuid.UUID) (*models.DoDItem, error) {
	var item models.DoDItem
	err := scope.Apply(r.db).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateDoDItem updates a DoD criterion
func (r *ScrumRepository) UpdateDoDItem(item *models.DoDItem) error {
	return r.db.Save(item).Error
}

// SoftDeleteDoDItem soft-deletes a DoD criterion
func (r *ScrumRepository) SoftDeleteDoDItem(id uuid.UUID) error {
	return r.db.Delete(&models.DoDItem{}, "id = ?", id).Error
}
