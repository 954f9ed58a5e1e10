package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HybridService manages the methodology mix of hybrid projects and their
// mixed artifacts. Every artifact's source methodology must be admitted by
// the project's declared mix.
type HybridService struct {
	repo      repository.HybridRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	auditor   *Auditor
	validator *validator.Validate
}

// NewHybridService creates a new hybrid service
func NewHybridService(
	repo repository.HybridRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	auditor *Auditor,
) *HybridService {
	return &HybridService{
		repo:      repo,
		projects:  projects,
		auditor:   auditor,
		validator: validator.New(),
	}
}

// ConfigRequest declares a hybrid project's mix: one primary, secondaries
// excluding it, and an optional phase -> methodology map drawn from the mix.
type ConfigRequest struct {
	ProjectID   uuid.UUID                     `json:"project_id" validate:"required"`
	Primary     models.Methodology            `json:"primary_methodology" validate:"required"`
	Secondaries []models.Methodology          `json:"secondary_methodologies"`
	PhaseMap    map[string]models.Methodology `json:"phase_map,omitempty"`
}

func (s *HybridService) validateMix(req *ConfigRequest) error {
	if !req.Primary.IsValid() || req.Primary == models.MethodologyHybrid {
		return apperrors.NewValidationError("primary_methodology", "must be a concrete catalog methodology")
	}
	seen := map[models.Methodology]bool{req.Primary: true}
	for _, secondary := range req.Secondaries {
		if !secondary.IsValid() || secondary == models.MethodologyHybrid {
			return apperrors.NewValidationError("secondary_methodologies", "must be concrete catalog methodologies")
		}
		if seen[secondary] {
			return apperrors.NewValidationError("secondary_methodologies", "must not repeat or include the primary")
		}
		seen[secondary] = true
	}
	for phase, m := range req.PhaseMap {
		if !seen[m] {
			return apperrors.NewValidationError("phase_map", fmt.Sprintf("phase %q maps outside the declared mix", phase))
		}
	}
	return nil
}

// SetConfig creates or replaces a hybrid project's configuration.
func (s *HybridService) SetConfig(claims *auth.Claims, req *ConfigRequest) (*models.HybridConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.validateMix(req); err != nil {
		return nil, err
	}
	scope := auth.ScopeFromClaims(claims)
	project, err := s.projects.GetByID(scope, req.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	if project.Methodology != models.MethodologyHybrid {
		return nil, apperrors.ErrMethodologyMismatch
	}

	secondaries, err := json.Marshal(req.Secondaries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode secondaries: %w", err)
	}
	phaseMap, err := json.Marshal(req.PhaseMap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode phase map: %w", err)
	}

	existing, err := s.repo.GetConfigByProject(scope, project.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if existing != nil && err == nil {
		before := *existing
		existing.Primary = req.Primary
		existing.Secondaries = secondaries
		existing.PhaseMap = phaseMap
		if err := s.repo.UpdateConfig(existing); err != nil {
			return nil, fmt.Errorf("failed to update config: %w", err)
		}
		s.auditor.Record(claims, &project.CompanyID, "update", "hybrid_config", existing.ID, &before, existing)
		return existing, nil
	}

	config := &models.HybridConfig{
		CompanyID:   project.CompanyID,
		ProjectID:   project.ID,
		Primary:     req.Primary,
		Secondaries: secondaries,
		PhaseMap:    phaseMap,
	}
	if err := s.repo.CreateConfig(config); err != nil {
		return nil, fmt.Errorf("failed to create config: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "hybrid_config", config.ID, nil, config)
	return config, nil
}

// GetConfig returns a hybrid project's configuration.
func (s *HybridService) GetConfig(claims *auth.Claims, projectID uuid.UUID) (*models.HybridConfig, error) {
	config, err := s.repo.GetConfigByProject(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("hybrid config"))
	}
	return config, nil
}

// CreateArtifactRequest carries one mixed artifact.
type CreateArtifactRequest struct {
	ProjectID         uuid.UUID          `json:"project_id" validate:"required"`
	Phase             string             `json:"phase" validate:"max=100"`
	SourceMethodology models.Methodology `json:"source_methodology" validate:"required"`
	TypeTag           string             `json:"type_tag" validate:"required,max=100"`
	Payload           json.RawMessage    `json:"payload,omitempty"`
	Order             int                `json:"order"`
}

// CreateArtifact adds a mixed artifact. The source methodology must be in
// the project's declared mix; a project without a config admits nothing.
func (s *HybridService) CreateArtifact(claims *auth.Claims, req *CreateArtifactRequest) (*models.HybridArtifact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	project, err := s.projects.GetByID(scope, req.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	if project.Methodology != models.MethodologyHybrid {
		return nil, apperrors.ErrMethodologyMismatch
	}
	config, err := s.repo.GetConfigByProject(scope, project.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMethodologyMismatch
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !config.Allows(req.SourceMethodology) {
		return nil, apperrors.ErrMethodologyMismatch
	}

	artifact := &models.HybridArtifact{
		CompanyID:         project.CompanyID,
		ProjectID:         project.ID,
		Phase:             req.Phase,
		SourceMethodology: req.SourceMethodology,
		TypeTag:           req.TypeTag,
		Payload:           req.Payload,
		Order:             req.Order,
	}
	if err := s.repo.CreateArtifact(artifact); err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "hybrid_artifact", artifact.ID, nil, artifact)
	return artifact, nil
}

// ListArtifacts returns a project's mixed artifacts in stable order.
func (s *HybridService) ListArtifacts(claims *auth.Claims, projectID uuid.UUID) ([]models.HybridArtifact, error) {
	artifacts, err := s.repo.ListArtifacts(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return artifacts, nil
}

// UpdateArtifactRequest carries mutable artifact fields. The source
// methodology is fixed at creation.
type UpdateArtifactRequest struct {
	Phase   *string         `json:"phase,omitempty" validate:"omitempty,max=100"`
	TypeTag *string         `json:"type_tag,omitempty" validate:"omitempty,max=100"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Order   *int            `json:"order,omitempty"`
}

// UpdateArtifact changes a mixed artifact.
func (s *HybridService) UpdateArtifact(claims *auth.Claims, id uuid.UUID, req *UpdateArtifactRequest) (*models.HybridArtifact, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	artifact, err := s.repo.GetArtifact(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrArtifactNotFound)
	}

	before := *artifact
	if req.Phase != nil {
		artifact.Phase = *req.Phase
	}
	if req.TypeTag != nil {
		artifact.TypeTag = *req.TypeTag
	}
	if req.Payload != nil {
		artifact.Payload = req.Payload
	}
	if req.Order != nil {
		artifact.Order = *req.Order
	}
	if err := s.repo.UpdateArtifact(artifact); err != nil {
		return nil, fmt.Errorf("failed to update artifact: %w", err)
	}
	s.auditor.Record(claims, &artifact.CompanyID, "update", "hybrid_artifact", artifact.ID, &before, artifact)
	return artifact, nil
}

// DeleteArtifact soft-deletes a mixed artifact.
func (s *HybridService) DeleteArtifact(claims *auth.Claims, id uuid.UUID) error {
	artifact, err := s.repo.GetArtifact(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrArtifactNotFound)
	}
	if err := s.repo.SoftDeleteArtifact(artifact.ID); err != nil {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	s.auditor.Record(claims, &artifact.CompanyID, "delete", "hybrid_artifact", artifact.ID, artifact, nil)
	return nil
}
