package service

import (
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/google/uuid"
)

// DependencyService manages precedence edges between projects. Each scoped
// graph stays acyclic.
type DependencyService struct {
	repo     repository.DependencyRepositoryInterface
	projects repository.ProjectRepositoryInterface
	auditor  *Auditor
}

// NewDependencyService creates a new dependency service
func NewDependencyService(repo repository.DependencyRepositoryInterface, projects repository.ProjectRepositoryInterface, auditor *Auditor) *DependencyService {
	return &DependencyService{repo: repo, projects: projects, auditor: auditor}
}

// CreateDependencyRequest carries a new edge.
type CreateDependencyRequest struct {
	PredecessorID uuid.UUID              `json:"predecessor_id"`
	SuccessorID   uuid.UUID              `json:"successor_id"`
	Type          models.DependencyType  `json:"type"`
	Scope         models.DependencyScope `json:"scope"`
	ProgrammeID   *uuid.UUID             `json:"programme_id,omitempty"`
}

// Create adds an edge after checking both endpoints share the tenant and the
// edge would not close a cycle in its scoped graph.
func (s *DependencyService) Create(claims *auth.Claims, req *CreateDependencyRequest) (*models.Dependency, error) {
	if req.PredecessorID == uuid.Nil || req.SuccessorID == uuid.Nil {
		return nil, apperrors.NewValidationError("", "predecessor_id and successor_id are required")
	}
	if req.PredecessorID == req.SuccessorID {
		return nil, apperrors.ErrDependencyCycle
	}
	depType := req.Type
	if depType == "" {
		depType = models.DependencyFinishToStart
	}
	if !depType.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown dependency type")
	}
	depScope := req.Scope
	if depScope == "" {
		depScope = models.DependencyScopeProject
	}
	if depScope == models.DependencyScopeProgramme && req.ProgrammeID == nil {
		return nil, apperrors.NewValidationError("programme_id", "required for programme-scoped dependencies")
	}

	scope := auth.ScopeFromClaims(claims)
	pred, err := s.projects.GetByID(scope, req.PredecessorID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	succ, err := s.projects.GetByID(scope, req.SuccessorID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	if pred.CompanyID != succ.CompanyID {
		return nil, apperrors.ErrProjectNotFound
	}
	if depScope == models.DependencyScopeProgramme {
		if pred.ProgrammeID == nil || succ.ProgrammeID == nil ||
			*pred.ProgrammeID != *req.ProgrammeID || *succ.ProgrammeID != *req.ProgrammeID {
			return nil, apperrors.NewValidationError("programme_id", "both projects must belong to the programme")
		}
	}

	existing, err := s.repo.ListByScope(scope, depScope, req.ProgrammeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dependency graph: %w", err)
	}
	pairs := make([][2]uuid.UUID, 0, len(existing))
	for _, e := range existing {
		pairs = append(pairs, [2]uuid.UUID{e.PredecessorID, e.SuccessorID})
	}
	if wouldCreateCycle(edgeSet(pairs), req.PredecessorID, req.SuccessorID) {
		return nil, apperrors.ErrDependencyCycle
	}

	dep := &models.Dependency{
		CompanyID:     pred.CompanyID,
		ProgrammeID:   req.ProgrammeID,
		PredecessorID: req.PredecessorID,
		SuccessorID:   req.SuccessorID,
		Type:          depType,
		Scope:         depScope,
	}
	if err := s.repo.Create(dep); err != nil {
		return nil, fmt.Errorf("failed to create dependency: %w", err)
	}
	s.auditor.Record(claims, &dep.CompanyID, "create", "dependency", dep.ID, nil, dep)
	return dep, nil
}

// List returns the edges of a scoped graph.
func (s *DependencyService) List(claims *auth.Claims, depScope models.DependencyScope, programmeID *uuid.UUID) ([]models.Dependency, error) {
	if depScope == "" {
		depScope = models.DependencyScopeProject
	}
	deps, err := s.repo.ListByScope(auth.ScopeFromClaims(claims), depScope, programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies: %w", err)
	}
	return deps, nil
}

// Delete removes an edge. Edges are hard-deleted; the graph carries no history.
func (s *DependencyService) Delete(claims *auth.Claims, id uuid.UUID) error {
	dep, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrDependencyNotFound)
	}
	if err := s.repo.Delete(dep.ID); err != nil {
		return fmt.Errorf("failed to delete dependency: %w", err)
	}
	s.auditor.Record(claims, &dep.CompanyID, "delete", "dependency", dep.ID, dep, nil)
	return nil
}
