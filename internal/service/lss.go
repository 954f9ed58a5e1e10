package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LSSService manages Lean Six Sigma artifacts. DMAIC phases advance in
// strict order; the statistical artifact set (hypothesis tests, DoE, SPC
// charts, control plans) is black belt only.
type LSSService struct {
	repo      repository.LSSRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewLSSService creates a new Lean Six Sigma service
func NewLSSService(
	repo repository.LSSRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	hybrids repository.HybridRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *LSSService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &LSSService{
		repo:      repo,
		guard:     &parentGuard{projects: projects, hybrids: hybrids},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

func (s *LSSService) requireProject(scope auth.TenantScope, projectID uuid.UUID) (*models.Project, error) {
	return s.guard.RequireProject(scope, projectID, models.MethodologyLSSGreen, models.MethodologyLSSBlack)
}

func (s *LSSService) requireBlackBelt(scope auth.TenantScope, projectID uuid.UUID) (*models.Project, error) {
	return s.guard.RequireProject(scope, projectID, models.MethodologyLSSBlack)
}

// CreateDMAICRequest opens one DMAIC phase.
type CreateDMAICRequest struct {
	ProjectID uuid.UUID         `json:"project_id" validate:"required"`
	Phase     models.DMAICPhase `json:"phase" validate:"required"`
	Summary   string            `json:"summary"`
}

// CreateDMAICRecord opens a phase record. Define opens freely; every later
// phase requires the previous one completed.
func (s *LSSService) CreateDMAICRecord(claims *auth.Claims, req *CreateDMAICRequest) (*models.DMAICRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Phase.IsValid() {
		return nil, apperrors.NewValidationError("phase", "unknown DMAIC phase")
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetDMAICByPhase(project.ID, req.Phase); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("phase already opened")
	}
	if idx := req.Phase.Index(); idx > 0 {
		previous, err := s.repo.GetDMAICByPhase(project.ID, models.DMAICOrder[idx-1])
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDMAICOrderViolation
			}
			return nil, fmt.Errorf("failed to load previous phase: %w", err)
		}
		if !previous.IsComplete {
			return nil, apperrors.ErrDMAICOrderViolation
		}
	}

	record := &models.DMAICRecord{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Phase:     req.Phase,
		Summary:   req.Summary,
	}
	if err := s.repo.CreateDMAICRecord(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("phase already opened")
		}
		return nil, fmt.Errorf("failed to create DMAIC record: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "dmaic_record", record.ID, nil, record)
	s.publisher.Publish(&project.CompanyID, fmt.Sprintf("%s.dmaic.opened", project.Methodology),
		"DMAIC phase opened", string(req.Phase))
	return record, nil
}

// ListDMAICRecords returns a project's phase records in DMAIC order.
func (s *LSSService) ListDMAICRecords(claims *auth.Claims, projectID uuid.UUID) ([]models.DMAICRecord, error) {
	records, err := s.repo.ListDMAICRecords(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list DMAIC records: %w", err)
	}
	return records, nil
}

// CompleteDMAICPhase marks an open phase complete, stamping the time.
func (s *LSSService) CompleteDMAICPhase(claims *auth.Claims, recordID uuid.UUID, summary string) (*models.DMAICRecord, error) {
	record, err := s.repo.GetDMAICRecord(auth.ScopeFromClaims(claims), recordID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("DMAIC record"))
	}
	if record.IsComplete {
		return record, nil
	}

	before := *record
	now := time.Now()
	record.IsComplete = true
	record.CompletedAt = &now
	if summary != "" {
		record.Summary = summary
	}
	if err := s.repo.UpdateDMAICRecord(record); err != nil {
		return nil, fmt.Errorf("failed to update DMAIC record: %w", err)
	}
	s.auditor.Record(claims, &record.CompanyID, "complete", "dmaic_record", record.ID, &before, record)
	return record, nil
}

// UpsertMetricRequest carries one six sigma measurement.
type UpsertMetricRequest struct {
	ProjectID  uuid.UUID         `json:"project_id" validate:"required"`
	Phase      models.DMAICPhase `json:"phase" validate:"required"`
	MetricType string            `json:"metric_type" validate:"required,max=100"`
	Value      float64           `json:"value"`
	Unit       string            `json:"unit" validate:"max=50"`
}

// UpsertMetric records a measurement keyed by (project, phase, metric_type),
// overwriting any previous reading of the same key.
func (s *LSSService) UpsertMetric(claims *auth.Claims, req *UpsertMetricRequest) (*models.SixSigmaMetric, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Phase.IsValid() {
		return nil, apperrors.NewValidationError("phase", "unknown DMAIC phase")
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	metric := &models.SixSigmaMetric{
		CompanyID:  project.CompanyID,
		ProjectID:  project.ID,
		Phase:      req.Phase,
		MetricType: req.MetricType,
		Value:      req.Value,
		Unit:       req.Unit,
	}
	if err := s.repo.UpsertMetric(metric); err != nil {
		return nil, fmt.Errorf("failed to upsert metric: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "upsert", "six_sigma_metric", metric.ID, nil, metric)
	return metric, nil
}

// ListMetrics returns a project's measurements.
func (s *LSSService) ListMetrics(claims *auth.Claims, projectID uuid.UUID) ([]models.SixSigmaMetric, error) {
	metrics, err := s.repo.ListMetrics(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return metrics, nil
}

// CreateHypothesisTestRequest carries a statistical test artifact. Alpha is
// open-interval (0,1); p_value is closed [0,1].
type CreateHypothesisTestRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=200"`
	TestType   string    `json:"test_type" validate:"max=100"`
	Alpha      float64   `json:"alpha"`
	PValue     float64   `json:"p_value"`
	Conclusion string    `json:"conclusion"`
}

// CreateHypothesisTest stores a test result. The server validates bounds,
// it does not compute statistics.
func (s *LSSService) CreateHypothesisTest(claims *auth.Claims, req *CreateHypothesisTestRequest) (*models.HypothesisTest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Alpha <= 0 || req.Alpha >= 1 {
		return nil, apperrors.NewValidationError("alpha", "must be strictly between 0 and 1")
	}
	if req.PValue < 0 || req.PValue > 1 {
		return nil, apperrors.NewValidationError("p_value", "must be between 0 and 1")
	}
	project, err := s.requireBlackBelt(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	test := &models.HypothesisTest{
		CompanyID:  project.CompanyID,
		ProjectID:  project.ID,
		Name:       req.Name,
		TestType:   req.TestType,
		Alpha:      req.Alpha,
		PValue:     req.PValue,
		Conclusion: req.Conclusion,
	}
	if err := s.repo.CreateHypothesisTest(test); err != nil {
		return nil, fmt.Errorf("failed to create hypothesis test: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "hypothesis_test", test.ID, nil, test)
	return test, nil
}

// ListHypothesisTests returns a project's test artifacts.
func (s *LSSService) ListHypothesisTests(claims *auth.Claims, projectID uuid.UUID) ([]models.HypothesisTest, error) {
	tests, err := s.repo.ListHypothesisTests(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hypothesis tests: %w", err)
	}
	return tests, nil
}

// CreateDoERequest carries a design-of-experiments artifact.
type CreateDoERequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
	Factors   []string  `json:"factors" validate:"required,min=1"`
	Levels    int       `json:"levels" validate:"min=2"`
	Response  string    `json:"response" validate:"max=200"`
}

// CreateDoE stores an experiment design with at least one factor and two
// levels.
func (s *LSSService) CreateDoE(claims *auth.Claims, req *CreateDoERequest) (*models.DoExperiment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.requireBlackBelt(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	factors, err := json.Marshal(req.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to encode factors: %w", err)
	}
	doe := &models.DoExperiment{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Name:      req.Name,
		Factors:   factors,
		Levels:    req.Levels,
		Response:  req.Response,
	}
	if err := s.repo.CreateDoE(doe); err != nil {
		return nil, fmt.Errorf("failed to create experiment: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "doe_experiment", doe.ID, nil, doe)
	return doe, nil
}

// ListDoE returns a project's experiment designs.
func (s *LSSService) ListDoE(claims *auth.Claims, projectID uuid.UUID) ([]models.DoExperiment, error) {
	does, err := s.repo.ListDoE(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	return does, nil
}

// CreateSPCChartRequest carries control chart limits.
type CreateSPCChartRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=200"`
	ChartType  string    `json:"chart_type" validate:"max=50"`
	LCL        float64   `json:"lcl"`
	CenterLine float64   `json:"center_line"`
	UCL        float64   `json:"ucl"`
}

// CreateSPCChart stores a control chart. Limits must satisfy
// lcl <= center_line <= ucl.
func (s *LSSService) CreateSPCChart(claims *auth.Claims, req *CreateSPCChartRequest) (*models.SPCChart, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.LCL > req.CenterLine || req.CenterLine > req.UCL {
		return nil, apperrors.NewValidationError("center_line", "limits must satisfy lcl <= center_line <= ucl")
	}
	project, err := s.requireBlackBelt(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	chart := &models.SPCChart{
		CompanyID:  project.CompanyID,
		ProjectID:  project.ID,
		Name:       req.Name,
		ChartType:  req.ChartType,
		LCL:        req.LCL,
		CenterLine: req.CenterLine,
		UCL:        req.UCL,
	}
	if err := s.repo.CreateSPCChart(chart); err != nil {
		return nil, fmt.Errorf("failed to create SPC chart: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "spc_chart", chart.ID, nil, chart)
	return chart, nil
}

// ListSPCCharts returns a project's control charts.
func (s *LSSService) ListSPCCharts(claims *auth.Claims, projectID uuid.UUID) ([]models.SPCChart, error) {
	charts, err := s.repo.ListSPCCharts(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list SPC charts: %w", err)
	}
	return charts, nil
}

// CreateControlPlanRequest carries a control plan.
type CreateControlPlanRequest struct {
	ProjectID     uuid.UUID `json:"project_id" validate:"required"`
	Name          string    `json:"name" validate:"required,max=200"`
	Metric        string    `json:"metric" validate:"max=200"`
	ReactionSteps []string  `json:"reaction_steps"`
}

// CreateControlPlan stores monitoring and reaction steps for a controlled
// process.
func (s *LSSService) CreateControlPlan(claims *auth.Claims, req *CreateControlPlanRequest) (*models.ControlPlan, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.requireBlackBelt(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	steps, err := json.Marshal(req.ReactionSteps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reaction steps: %w", err)
	}
	plan := &models.ControlPlan{
		CompanyID:     project.CompanyID,
		ProjectID:     project.ID,
		Name:          req.Name,
		Metric:        req.Metric,
		ReactionSteps: steps,
	}
	if err := s.repo.CreateControlPlan(plan); err != nil {
		return nil, fmt.Errorf("failed to create control plan: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "control_plan", plan.ID, nil, plan)
	return plan, nil
}

// ListControlPlans returns a project's control plans.
func (s *LSSService) ListControlPlans(claims *auth.Claims, projectID uuid.UUID) ([]models.ControlPlan, error) {
	plans, err := s.repo.ListControlPlans(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list control plans: %w", err)
	}
	return plans, nil
}
