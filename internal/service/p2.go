package service

import (
	"encoding/json"
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// P2Service manages PRINCE2-programme blueprints. Versions per programme
// are monotonic and at most one blueprint is active at any time.
type P2Service struct {
	repo      repository.ProgrammeArtifactRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewP2Service creates a new P2 programme service
func NewP2Service(
	repo repository.ProgrammeArtifactRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *P2Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &P2Service{
		repo:      repo,
		guard:     &parentGuard{programmes: programmes},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreateBlueprintRequest carries the blueprint content. Versions are
// assigned by the server, never by the client.
type CreateBlueprintRequest struct {
	ProgrammeID uuid.UUID       `json:"programme_id" validate:"required"`
	Content     json.RawMessage `json:"content,omitempty"`
}

// CreateBlueprint adds a draft blueprint at version max+1.
func (s *P2Service) CreateBlueprint(claims *auth.Claims, req *CreateBlueprintRequest) (*models.Blueprint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	programme, err := s.guard.RequireProgramme(auth.ScopeFromClaims(claims), req.ProgrammeID, models.FrameworkP2Programme)
	if err != nil {
		return nil, err
	}

	max, err := s.repo.MaxBlueprintVersion(programme.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint version: %w", err)
	}
	blueprint := &models.Blueprint{
		CompanyID:   programme.CompanyID,
		ProgrammeID: programme.ID,
		Version:     max + 1,
		Status:      models.BlueprintStatusDraft,
		Content:     req.Content,
	}
	if err := s.repo.CreateBlueprint(blueprint); err != nil {
		return nil, fmt.Errorf("failed to create blueprint: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "blueprint", blueprint.ID, nil, blueprint)
	return blueprint, nil
}

// ListBlueprints returns a programme's blueprint versions, newest first.
func (s *P2Service) ListBlueprints(claims *auth.Claims, programmeID uuid.UUID) ([]models.Blueprint, error) {
	blueprints, err := s.repo.ListBlueprints(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blueprints: %w", err)
	}
	return blueprints, nil
}

// ActivateBlueprint makes a draft blueprint the single active version,
// archiving whichever version was active before, in one transaction.
func (s *P2Service) ActivateBlueprint(claims *auth.Claims, id uuid.UUID) (*models.Blueprint, error) {
	blueprint, err := s.repo.GetBlueprint(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBlueprintNotFound)
	}
	if blueprint.Status == models.BlueprintStatusActive {
		return blueprint, nil
	}
	if blueprint.Status == models.BlueprintStatusArchived {
		return nil, apperrors.NewConflictError("archived blueprints cannot be activated")
	}

	before := *blueprint
	if err := s.repo.ActivateBlueprint(blueprint); err != nil {
		return nil, fmt.Errorf("failed to activate blueprint: %w", err)
	}
	s.auditor.Record(claims, &blueprint.CompanyID, "activate", "blueprint", blueprint.ID, &before, blueprint)
	s.publisher.Publish(&blueprint.CompanyID, "p2-programme.blueprint.activated", "Blueprint activated",
		fmt.Sprintf("version %d is now active", blueprint.Version))
	return blueprint, nil
}
