package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LSSRepository handles Lean Six Sigma artifacts for both belts
type LSSRepository struct {
	db *gorm.DB
}

// NewLSSRepository creates a new Lean Six Sigma repository
func NewLSSRepository(db *gorm.DB) *LSSRepository {
	return &LSSRepository{db: db}
}

// CreateDMAICRecord creates a DMAIC phase record
func (r *LSSRepository) CreateDMAICRecord(record *models.DMAICRecord) error {
	return r.db.Create(record).Error
}

// GetDMAICRecord retrieves a phase record by ID within the caller's tenant
func (r *LSSRepository) GetDMAICRecord(scope auth.TenantScope, id uuid.UUID) (*models.DMAICRecord, error) {
	var record models.DMAICRecord
	err := scope.Apply(r.db).First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetDMAICByPhase retrieves a project's record for one phase
func (r *LSSRepository) GetDMAICByPhase(projectID uuid.UUID, phase models.DMAICPhase) (*models.DMAICRecord, error) {
	var record models.DMAICRecord
	err := r.db.First(&record, "project_id = ? AND phase = ?", projectID, phase).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListDMAICRecords retrieves a project's phase records in DMAIC order
func (r *LSSRepository) ListDMAICRecords(scope auth.TenantScope, projectID uuid.UUID) ([]models.DMAICRecord, error) {
	var records []models.DMAICRecord
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Find(&records).Error
	if err != nil {
		return nil, err
	}
	// Stable DMAIC ordering is semantic, not lexical.
	ordered := make([]models.DMAICRecord, 0, len(records))
	for _, phase := range models.DMAICOrder {
		for _, rec := range records {
			if rec.Phase == phase {
				ordered = append(ordered, rec)
			}
		}
	}
	return ordered, nil
}

// UpdateDMAICRecord updates a phase record
func (r *LSSRepository) UpdateDMAICRecord(record *models.DMAICRecord) error {
	return r.db.Save(record).Error
}

// UpsertMetric creates or replaces the metric for (project, phase, type)
func (r *LSSRepository) UpsertMetric(metric *models.SixSigmaMetric) error {
	existing := &models.SixSigmaMetric{}
	err := r.db.First(existing,
		"project_id = ? AND phase = ? AND metric_type = ?",
		metric.ProjectID, metric.Phase, metric.MetricType).Error
	if err == nil {
		existing.Value = metric.Value
		existing.Unit = metric.Unit
		*metric = *existing
		return r.db.Save(existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(metric).Error
}

// ListMetrics retrieves a project's metrics
func (r *LSSRepository) ListMetrics(scope auth.TenantScope, projectID uuid.UUID) ([]models.SixSigmaMetric, error) {
	var metrics []models.SixSigmaMetric
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("phase, metric_type").Find(&metrics).Error
	return metrics, err
}

// CreateHypothesisTest creates a hypothesis test artifact
func (r *LSSRepository) CreateHypothesisTest(test *models.HypothesisTest) error {
	return r.db.Create(test).Error
}

// ListHypothesisTests retrieves a project's hypothesis tests
func (r *LSSRepository) ListHypothesisTests(scope auth.TenantScope, projectID uuid.UUID) ([]models.HypothesisTest, error) {
	var tests []models.HypothesisTest
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("created_at, id").Find(&tests).Error
	return tests, err
}

// CreateDoE creates a design-of-experiments artifact
func (r *LSSRepository) CreateDoE(doe *models.DoExperiment) error {
	return r.db.Create(doe).Error
}

// ListDoE retrieves a project's DoE artifacts
func (r *LSSRepository) ListDoE(scope auth.TenantScope, projectID uuid.UUID) ([]models.DoExperiment, error) {
	var does []models.DoExperiment
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("created_at, id").Find(&does).Error
	return does, err
}

// CreateSPCChart creates an SPC chart artifact
func (r *LSSRepository) CreateSPCChart(chart *models.SPCChart) error {
	return r.db.Create(chart).Error
}

// ListSPCCharts retrieves a project's SPC charts
func (r *LSSRepository) ListSPCCharts(scope auth.TenantScope, projectID uuid.UUID) ([]models.SPCChart, error) {
	var charts []models.SPCChart
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("created_at, id").Find(&charts).Error
	return charts, err
}

// CreateControlPlan creates a control plan artifact
func (r *LSSRepository) CreateControlPlan(plan *models.ControlPlan) error {
	return r.db.Create(plan).Error
}

// ListControlPlans retrieves a project's control plans
func (r *LSSRepository) ListControlPlans(scope auth.TenantScope, projectID uuid.UUID) ([]models.ControlPlan, error) {
	var plans []models.ControlPlan
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("created_at, id").Find(&plans).Error
	return plans, err
}
