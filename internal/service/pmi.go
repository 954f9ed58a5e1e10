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

// PMIService manages PMI program components. The depends_on graph across a
// programme's components stays acyclic.
type PMIService struct {
	repo      repository.ProgrammeArtifactRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	validator *validator.Validate
}

// NewPMIService creates a new PMI service
func NewPMIService(
	repo repository.ProgrammeArtifactRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
) *PMIService {
	return &PMIService{
		repo:      repo,
		guard:     &parentGuard{programmes: programmes},
		auditor:   auditor,
		validator: validator.New(),
	}
}

// CreateComponentRequest carries the component payload. DependsOn names
// component IDs within the same programme.
type CreateComponentRequest struct {
	ProgrammeID uuid.UUID       `json:"programme_id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
	Governance  json.RawMessage `json:"governance,omitempty"`
	DependsOn   []uuid.UUID     `json:"depends_on,omitempty"`
}

// CreateComponent adds a program component, rejecting dependency cycles.
func (s *PMIService) CreateComponent(claims *auth.Claims, req *CreateComponentRequest) (*models.ProgramComponent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	programme, err := s.guard.RequireProgramme(scope, req.ProgrammeID, models.FrameworkPMI)
	if err != nil {
		return nil, err
	}

	if err := s.checkComponentGraph(scope, programme.ID, uuid.Nil, req.DependsOn); err != nil {
		return nil, err
	}

	dependsOn, err := json.Marshal(req.DependsOn)
	if err != nil {
		return nil, fmt.Errorf("failed to encode depends_on: %w", err)
	}
	component := &models.ProgramComponent{
		CompanyID:   programme.CompanyID,
		ProgrammeID: programme.ID,
		Name:        req.Name,
		Description: req.Description,
		Governance:  req.Governance,
		DependsOn:   dependsOn,
	}
	if err := s.repo.CreateComponent(component); err != nil {
		return nil, fmt.Errorf("failed to create component: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "program_component", component.ID, nil, component)
	return component, nil
}

// ListComponents returns a programme's components.
func (s *PMIService) ListComponents(claims *auth.Claims, programmeID uuid.UUID) ([]models.ProgramComponent, error) {
	components, err := s.repo.ListComponents(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	return components, nil
}

// UpdateComponentRequest carries mutable component fields. A non-nil
// DependsOn replaces the edge set after a cycle check.
type UpdateComponentRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string         `json:"description,omitempty"`
	Governance  json.RawMessage `json:"governance,omitempty"`
	DependsOn   *[]uuid.UUID    `json:"depends_on,omitempty"`
}

// UpdateComponent changes a component, keeping the dependency graph acyclic.
func (s *PMIService) UpdateComponent(claims *auth.Claims, id uuid.UUID, req *UpdateComponentRequest) (*models.ProgramComponent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	component, err := s.repo.GetComponent(scope, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("program component"))
	}

	before := *component
	if req.Name != nil {
		component.Name = *req.Name
	}
	if req.Description != nil {
		component.Description = *req.Description
	}
	if req.Governance != nil {
		component.Governance = req.Governance
	}
	if req.DependsOn != nil {
		if err := s.checkComponentGraph(scope, component.ProgrammeID, component.ID, *req.DependsOn); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(*req.DependsOn)
		if err != nil {
			return nil, fmt.Errorf("failed to encode depends_on: %w", err)
		}
		component.DependsOn = raw
	}
	if err := s.repo.UpdateComponent(component); err != nil {
		return nil, fmt.Errorf("failed to update component: %w", err)
	}
	s.auditor.Record(claims, &component.CompanyID, "update", "program_component", component.ID, &before, component)
	return component, nil
}

// DeleteComponent soft-deletes a component. Other components referring to it
// keep the dangling ID; readers skip unknown references.
func (s *PMIService) DeleteComponent(claims *auth.Claims, id uuid.UUID) error {
	component, err := s.repo.GetComponent(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("program component"))
	}
	if err := s.repo.SoftDeleteComponent(component.ID); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}
	s.auditor.Record(claims, &component.CompanyID, "delete", "program_component", component.ID, component, nil)
	return nil
}

// checkComponentGraph verifies that giving the component the listed
// dependencies keeps the programme's component graph acyclic. The edge
// direction is dependency -> dependent.
func (s *PMIService) checkComponentGraph(scope auth.TenantScope, programmeID, componentID uuid.UUID, dependsOn []uuid.UUID) error {
	if len(dependsOn) == 0 {
		return nil
	}
	components, err := s.repo.ListComponents(scope, programmeID)
	if err != nil {
		return fmt.Errorf("failed to load component graph: %w", err)
	}

	known := make(map[uuid.UUID]bool, len(components))
	var pairs [][2]uuid.UUID
	for _, c := range components {
		known[c.ID] = true
		if c.ID == componentID || len(c.DependsOn) == 0 {
			continue
		}
		var deps []uuid.UUID
		if err := json.Unmarshal(c.DependsOn, &deps); err != nil {
			continue
		}
		for _, dep := range deps {
			pairs = append(pairs, [2]uuid.UUID{dep, c.ID})
		}
	}

	edges := edgeSet(pairs)
	for _, dep := range dependsOn {
		if dep == componentID {
			return apperrors.ErrDependencyCycle
		}
		if !known[dep] {
			return apperrors.NewValidationError("depends_on", "unknown component reference")
		}
		if componentID != uuid.Nil && wouldCreateCycle(edges, dep, componentID) {
			return apperrors.ErrDependencyCycle
		}
		edges[dep] = append(edges[dep], componentID)
	}
	return nil
}
