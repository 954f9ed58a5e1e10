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

// Prince2Service manages stage-gated delivery. Gate approval for stage N
// requires stage N-1 completed; product approval requires every quality
// criterion checked.
type Prince2Service struct {
	repo      repository.Prince2RepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewPrince2Service creates a new PRINCE2 service
func NewPrince2Service(
	repo repository.Prince2RepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	hybrids repository.HybridRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *Prince2Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Prince2Service{
		repo:      repo,
		guard:     &parentGuard{projects: projects, hybrids: hybrids},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

func (s *Prince2Service) requireProject(scope auth.TenantScope, projectID uuid.UUID) (*models.Project, error) {
	return s.guard.RequireProject(scope, projectID, models.MethodologyPrince2)
}

// CreateStageRequest carries the stage payload.
type CreateStageRequest struct {
	ProjectID uuid.UUID `json:"project_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=200"`
	Order     int       `json:"order" validate:"min=1"`
}

// CreateStage adds a management stage with a per-project unique order.
func (s *Prince2Service) CreateStage(claims *auth.Claims, req *CreateStageRequest) (*models.Stage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetStageByOrder(project.ID, req.Order); err == nil && existing != nil {
		return nil, apperrors.NewConflictError("stage order already taken")
	}

	stage := &models.Stage{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Name:      req.Name,
		Order:     req.Order,
		Status:    models.StageStatusPlanned,
	}
	if err := s.repo.CreateStage(stage); err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "stage", stage.ID, nil, stage)
	return stage, nil
}

// ListStages returns a project's stages in order.
func (s *Prince2Service) ListStages(claims *auth.Claims, projectID uuid.UUID) ([]models.Stage, error) {
	stages, err := s.repo.ListStages(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	return stages, nil
}

// ApproveGate approves the gate into a stage. The previous stage in order
// must exist and be completed; stage 1 has no predecessor.
func (s *Prince2Service) ApproveGate(claims *auth.Claims, stageID uuid.UUID) (*models.Stage, error) {
	stage, err := s.repo.GetStage(auth.ScopeFromClaims(claims), stageID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrStageNotFound)
	}
	if stage.GateApproved {
		return stage, nil
	}

	if stage.Order > 1 {
		previous, err := s.repo.GetStageByOrder(stage.ProjectID, stage.Order-1)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStageOrderViolation
			}
			return nil, fmt.Errorf("failed to load previous stage: %w", err)
		}
		if previous.Status != models.StageStatusCompleted {
			return nil, apperrors.ErrStageOrderViolation
		}
	}

	before := *stage
	now := time.Now()
	stage.GateApproved = true
	stage.ApprovedAt = &now
	stage.Status = models.StageStatusActive
	if err := s.repo.UpdateStage(stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	s.auditor.Record(claims, &stage.CompanyID, "approve_gate", "stage", stage.ID, &before, stage)
	s.publisher.Publish(&stage.CompanyID, "prince2.stage.gate_approved", "Stage gate approved", stage.Name)
	return stage, nil
}

// CompleteStage marks an active stage completed, opening the next gate.
func (s *Prince2Service) CompleteStage(claims *auth.Claims, stageID uuid.UUID) (*models.Stage, error) {
	stage, err := s.repo.GetStage(auth.ScopeFromClaims(claims), stageID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrStageNotFound)
	}
	if stage.Status == models.StageStatusCompleted {
		return stage, nil
	}
	if !stage.GateApproved {
		return nil, apperrors.ErrStageOrderViolation
	}

	before := *stage
	stage.Status = models.StageStatusCompleted
	if err := s.repo.UpdateStage(stage); err != nil {
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	s.auditor.Record(claims, &stage.CompanyID, "complete", "stage", stage.ID, &before, stage)
	s.publisher.Publish(&stage.CompanyID, "prince2.stage.completed", "Stage completed", stage.Name)
	return stage, nil
}

// DeleteStage soft-deletes a stage that has not been gate-approved.
func (s *Prince2Service) DeleteStage(claims *auth.Claims, id uuid.UUID) error {
	stage, err := s.repo.GetStage(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrStageNotFound)
	}
	if stage.GateApproved {
		return apperrors.NewConflictError("approved stages cannot be deleted")
	}
	if err := s.repo.SoftDeleteStage(stage.ID); err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	s.auditor.Record(claims, &stage.CompanyID, "delete", "stage", stage.ID, stage, nil)
	return nil
}

// CreateProductRequest carries the product payload with its quality criteria.
type CreateProductRequest struct {
	ProjectID       uuid.UUID  `json:"project_id" validate:"required"`
	StageID         *uuid.UUID `json:"stage_id,omitempty"`
	Name            string     `json:"name" validate:"required,max=200"`
	QualityCriteria []string   `json:"quality_criteria"`
}

// CreateProduct adds a product with its quality criteria set.
func (s *Prince2Service) CreateProduct(claims *auth.Claims, req *CreateProductRequest) (*models.Product, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	project, err := s.requireProject(scope, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if req.StageID != nil {
		stage, err := s.repo.GetStage(scope, *req.StageID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrStageNotFound)
		}
		if stage.ProjectID != project.ID {
			return nil, apperrors.NewValidationError("stage_id", "stage belongs to another project")
		}
	}

	criteria, err := json.Marshal(req.QualityCriteria)
	if err != nil {
		return nil, fmt.Errorf("failed to encode criteria: %w", err)
	}
	checked, _ := json.Marshal([]string{})

	product := &models.Product{
		CompanyID:       project.CompanyID,
		ProjectID:       project.ID,
		StageID:         req.StageID,
		Name:            req.Name,
		QualityCriteria: criteria,
		CheckedCriteria: checked,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "product", product.ID, nil, product)
	return product, nil
}

// ListProducts returns a project's products.
func (s *Prince2Service) ListProducts(claims *auth.Claims, projectID uuid.UUID) ([]models.Product, error) {
	products, err := s.repo.ListProducts(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CheckCriterion marks one quality criterion checked. Unknown criteria are
// rejected; re-checking is a no-op.
func (s *Prince2Service) CheckCriterion(claims *auth.Claims, productID uuid.UUID, criterion string) (*models.Product, error) {
	product, err := s.repo.GetProduct(auth.ScopeFromClaims(claims), productID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("product"))
	}

	criteria, checked, err := decodeCriteria(product)
	if err != nil {
		return nil, err
	}
	if !containsString(criteria, criterion) {
		return nil, apperrors.NewValidationError("criterion", "unknown quality criterion")
	}
	if containsString(checked, criterion) {
		return product, nil
	}

	before := *product
	checked = append(checked, criterion)
	raw, err := json.Marshal(checked)
	if err != nil {
		return nil, fmt.Errorf("failed to encode checked criteria: %w", err)
	}
	product.CheckedCriteria = raw
	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	s.auditor.Record(claims, &product.CompanyID, "check_criterion", "product", product.ID, &before, product)
	return product, nil
}

// ApproveProduct approves a product once every quality criterion is checked.
func (s *Prince2Service) ApproveProduct(claims *auth.Claims, productID uuid.UUID) (*models.Product, error) {
	product, err := s.repo.GetProduct(auth.ScopeFromClaims(claims), productID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("product"))
	}
	if product.IsApproved {
		return product, nil
	}

	criteria, checked, err := decodeCriteria(product)
	if err != nil {
		return nil, err
	}
	for _, criterion := range criteria {
		if !containsString(checked, criterion) {
			return nil, apperrors.ErrProductCriteriaOpen
		}
	}

	before := *product
	product.IsApproved = true
	if err := s.repo.UpdateProduct(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	s.auditor.Record(claims, &product.CompanyID, "approve", "product", product.ID, &before, product)
	s.publisher.Publish(&product.CompanyID, "prince2.product.approved", "Product approved", product.Name)
	return product, nil
}

// DeleteProduct soft-deletes a product.
func (s *Prince2Service) DeleteProduct(claims *auth.Claims, id uuid.UUID) error {
	product, err := s.repo.GetProduct(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("product"))
	}
	if err := s.repo.SoftDeleteProduct(product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.auditor.Record(claims, &product.CompanyID, "delete", "product", product.ID, product, nil)
	return nil
}

func decodeCriteria(product *models.Product) (criteria, checked []string, err error) {
	if len(product.QualityCriteria) > 0 {
		if err := json.Unmarshal(product.QualityCriteria, &criteria); err != nil {
			return nil, nil, fmt.Errorf("failed to decode criteria: %w", err)
		}
	}
	if len(product.CheckedCriteria) > 0 {
		if err := json.Unmarshal(product.CheckedCriteria, &checked); err != nil {
			return nil, nil, fmt.Errorf("failed to decode checked criteria: %w", err)
		}
	}
	return criteria, checked, nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
