package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgrammeArtifactRepository handles PMI components, MSP tranches and
// benefits, and P2 blueprints.
type ProgrammeArtifactRepository struct {
	db *gorm.DB
}

// NewProgrammeArtifactRepository creates a new programme artifact repository
func NewProgrammeArtifactRepository(db *gorm.DB) *ProgrammeArtifactRepository {
	return &ProgrammeArtifactRepository{db: db}
}

// CreateComponent creates a PMI program component
func (r *ProgrammeArtifactRepository) CreateComponent(component *models.ProgramComponent) error {
	return r.db.Create(component).Error
}

// GetComponent retrieves a program component by ID within the caller's tenant
func (r *ProgrammeArtifactRepository) GetComponent(scope auth.TenantScope, id uuid.UUID) (*models.ProgramComponent, error) {
	var component models.ProgramComponent
	err := scope.Apply(r.db).First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// ListComponents retrieves a programme's components
func (r *ProgrammeArtifactRepository) ListComponents(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ProgramComponent, error) {
	var components []models.ProgramComponent
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).Order("name").Find(&components).Error
	return components, err
}

// UpdateComponent updates a program component
func (r *ProgrammeArtifactRepository) UpdateComponent(component *models.ProgramComponent) error {
	return r.db.Save(component).Error
}

// SoftDeleteComponent soft-deletes a program component
func (r *ProgrammeArtifactRepository) SoftDeleteComponent(id uuid.UUID) error {
	return r.db.Delete(&models.ProgramComponent{}, "id = ?", id).Error
}

// CreateTranche creates a tranche
func (r *ProgrammeArtifactRepository) CreateTranche(tranche *models.Tranche) error {
	return r.db.Create(tranche).Error
}

// GetTranche retrieves a tranche by ID within the caller's tenant
func (r *ProgrammeArtifactRepository) GetTranche(scope auth.TenantScope, id uuid.UUID) (*models.Tranche, error) {
	var tranche models.Tranche
	err := scope.Apply(r.db).First(&tranche, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tranche, nil
}

// ListTranches retrieves a programme's tranches in sequence order
func (r *ProgrammeArtifactRepository) ListTranches(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Tranche, error) {
	var tranches []models.Tranche
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).
		Order("sequence").Find(&tranches).Error
	return tranches, err
}

// MaxTrancheSequence returns the highest sequence in a programme, 0 if none.
func (r *ProgrammeArtifactRepository) MaxTrancheSequence(programmeID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.Tranche{}).Where("programme_id = ?", programmeID).
		Select("max(sequence)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// DeleteTrancheAndClose deletes a tranche and renumbers successors so
// sequences stay gap-free.
func (r *ProgrammeArtifactRepository) DeleteTrancheAndClose(tranche *models.Tranche) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Tranche{}, "id = ?", tranche.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Tranche{}).
			Where("programme_id = ? AND sequence > ?", tranche.ProgrammeID, tranche.Sequence).
			UpdateColumn("sequence", gorm.Expr("sequence - 1")).Error
	})
}

// CreateBenefit creates a benefit
func (r *ProgrammeArtifactRepository) CreateBenefit(benefit *models.Benefit) error {
	return r.db.Create(benefit).Error
}

// GetBenefit retrieves a benefit with its realizations
func (r *ProgrammeArtifactRepository) GetBenefit(scope auth.TenantScope, id uuid.UUID) (*models.Benefit, error) {
	var benefit models.Benefit
	err := scope.Apply(r.db).
		Preload("Realizations", func(db *gorm.DB) *gorm.DB { return db.Order("realized_at, id") }).
		First(&benefit, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &benefit, nil
}

// ListBenefits retrieves a programme's benefits
func (r *ProgrammeArtifactRepository) ListBenefits(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Benefit, error) {
	var benefits []models.Benefit
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).Order("name").Find(&benefits).Error
	return benefits, err
}

// AppendRealization appends a realization entry (timeline is append-only)
func (r *ProgrammeArtifactRepository) AppendRealization(entry *models.BenefitRealization) error {
	return r.db.Create(entry).Error
}

// SumRealized sums the realized value of a benefit
func (r *ProgrammeArtifactRepository) SumRealized(benefitID uuid.UUID) (float64, error) {
	var total *float64
	err := r.db.Model(&models.BenefitRealization{}).Where("benefit_id = ?", benefitID).
		Select("sum(value)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// CreateBlueprint creates a blueprint version
func (r *ProgrammeArtifactRepository) CreateBlueprint(blueprint *models.Blueprint) error {
	return r.db.Create(blueprint).Error
}

// GetBlueprint retrieves a blueprint by ID within the caller's tenant
func (r *ProgrammeArtifactRepository) GetBlueprint(scope auth.TenantScope, id uuid.UUID) (*models.Blueprint, error) {
	var blueprint models.Blueprint
	err := scope.Apply(r.db).First(&blueprint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blueprint, nil
}

// ListBlueprints retrieves a programme's blueprint versions in order
func (r *ProgrammeArtifactRepository) ListBlueprints(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Blueprint, error) {
	var blueprints []models.Blueprint
	err := scope.Apply(r.db).Where("programme_id = ?", programmeID).
		Order("version").Find(&blueprints).Error
	return blueprints, err
}

// MaxBlueprintVersion returns the highest version in a programme, 0 if none.
func (r *ProgrammeArtifactRepository) MaxBlueprintVersion(programmeID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.Blueprint{}).Where("programme_id = ?", programmeID).
		Select("max(version)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// ActivateBlueprint marks a blueprint active and archives the previous
// active version in the same transaction.
func (r *ProgrammeArtifactRepository) ActivateBlueprint(blueprint *models.Blueprint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Blueprint{}).
			Where("programme_id = ? AND status = ? AND id <> ?",
				blueprint.ProgrammeID, models.BlueprintStatusActive, blueprint.ID).
			Update("status", models.BlueprintStatusArchived).Error; err != nil {
			return err
		}
		return tx.Model(&models.Blueprint{}).Where("id = ?", blueprint.ID).
			Update("status", models.BlueprintStatusActive).Error
	})
}
