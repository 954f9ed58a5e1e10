package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SAFeRepository handles ARTs, program increments, objectives and sync meetings
type SAFeRepository struct {
	db *gorm.DB
}

// NewSAFeRepository creates a new SAFe repository
func NewSAFeRepository(db *gorm.DB) *SAFeRepository {
	return &SAFeRepository{db: db}
}

// CreateART creates an Agile Release Train
func (r *SAFeRepository) CreateART(art *models.ART) error {
	return r.db.Create(art).Error
}

// GetART retrieves an ART by ID within the caller's tenant
func (r *SAFeRepository) GetART(scope auth.TenantScope, id uuid.UUID) (*models.ART, error) {
	var art models.ART
	err := scope.Apply(r.db).First(&art, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &art, nil
}

// ListARTs retrieves a programme's ARTs
func (r *SAFeRepository) ListARTs(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ART, error) {
	var arts []models.ART
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).Order("name").Find(&arts).Error
	return arts, err
}

// SoftDeleteART soft-deletes an ART
func (r *SAFeRepository) SoftDeleteART(id uuid.UUID) error {
	return r.db.Delete(&models.ART{}, "id = ?", id).Error
}

// CreatePI creates a program increment
func (r *SAFeRepository) CreatePI(pi *models.ProgramIncrement) error {
	return r.db.Create(pi).Error
}

// GetPI retrieves a program increment with objectives
func (r *SAFeRepository) GetPI(scope auth.TenantScope, id uuid.UUID) (*models.ProgramIncrement, error) {
	var pi models.ProgramIncrement
	err := scope.Apply(r.db).Preload("Objectives").First(&pi, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pi, nil
}

// ListPIs retrieves a programme's program increments
func (r *SAFeRepository) ListPIs(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ProgramIncrement, error) {
	var pis []models.ProgramIncrement
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).
		Order("start_date, id").Find(&pis).Error
	return pis, err
}

// UpdatePI updates a program increment
func (r *SAFeRepository) UpdatePI(pi *models.ProgramIncrement) error {
	return r.db.Save(pi).Error
}

// SoftDeletePI soft-deletes a program increment
func (r *SAFeRepository) SoftDeletePI(id uuid.UUID) error {
	return r.db.Delete(&models.ProgramIncrement{}, "id = ?", id).Error
}

// CreateObjective creates a PI objective
func (r *SAFeRepository) CreateObjective(objective *models.PIObjective) error {
	return r.db.Create(objective).Error
}

// GetObjective retreives a PI objective by ID within the caller's tenant
func (r *SAFeRepository) GetObjective(scope auth.TenantScope, id uuid.UUID) (*models.PIObjective, error) {
	var objective models.PIObjective
	err := scope.Apply(r.db).First(&objective, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// UpdateObjective updates a PI objective
func (r *SAFeRepository) UpdateObjective(objective *models.PIObjective) error {
	return r.db.Save(objective).Error
}

// AppendSyncMeeting appends a date-stamped sync record (append-only)
func (r *SAFeRepository) AppendSyncMeeting(meeting *models.ARTSyncMeeting) error {
	return r.db.Create(meeting).Error
}

// ListSyncMeetings retrieves an ART's sync records by date
func (r *SAFeRepository) ListSyncMeetings(scope auth.TenantScope, artID uuid.UUID) ([]models.ARTSyncMeeting, error) {
	var meetings []models.ARTSyncMeeting
	err := scope.Apply(r.db).Where("art_id = ?", artID).Order("date, id").Find(&meetings).Error
	return meetings, err
}
