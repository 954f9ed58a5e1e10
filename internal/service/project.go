package service

import (
	"fmt"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ProjectService manages projects, their methodology binding and their
// container attachments.
type ProjectService struct {
	repo       repository.ProjectRepositoryInterface
	portfolios repository.PortfolioRepositoryInterface
	programmes repository.ProgrammeRepositoryInterface
	auditor    *Auditor
	publisher  EventPublisher
	validator  *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(
	repo repository.ProjectRepositoryInterface,
	portfolios repository.PortfolioRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *ProjectService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ProjectService{
		repo:       repo,
		portfolios: portfolios,
		programmes: programmes,
		auditor:    auditor,
		publisher:  publisher,
		validator:  validator.New(),
	}
}

// CreateProjectRequest carries the project payload. Methodology is fixed at
// creation and comes from the closed catalog.
type CreateProjectRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Description string             `json:"description"`
	Methodology models.Methodology `json:"methodology" validate:"required"`
	PortfolioID *uuid.UUID         `json:"portfolio_id,omitempty"`
	ProgrammeID *uuid.UUID         `json:"programme_id,omitempty"`
	StartDate   *time.Time         `json:"start_date,omitempty"`
	EndDate     *time.Time         `json:"end_date,omitempty"`
}

// Create creates a project in the caller's tenant. Container attachments
// must resolve within the same tenant.
func (s *ProjectService) Create(claims *auth.Claims, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if claims.CompanyID == nil {
		return nil, apperrors.ErrCompanyRequired
	}
	if !req.Methodology.IsValid() {
		return nil, apperrors.NewValidationError("methodology", "unknown methodology")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not precede start_date")
	}

	scope := auth.ScopeFromClaims(claims)
	if req.PortfolioID != nil {
		if _, err := s.portfolios.GetByID(scope, *req.PortfolioID); err != nil {
			return nil, notFoundOr(err, apperrors.ErrPortfolioNotFound)
		}
	}
	if req.ProgrammeID != nil {
		if _, err := s.programmes.GetByID(scope, *req.ProgrammeID); err != nil {
			return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
		}
	}

	project := &models.Project{
		CompanyID:   *claims.CompanyID,
		PortfolioID: req.PortfolioID,
		ProgrammeID: req.ProgrammeID,
		Name:        req.Name,
		Description: req.Description,
		Methodology: req.Methodology,
		Status:      models.WorkStatusDraft,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.auditor.Record(claims, claims.CompanyID, "create", "project", project.ID, nil, project)
	s.publisher.Publish(claims.CompanyID, "core.project.created", "Project created", project.Name)
	return project, nil
}

// Get returns a project visible to the caller. Admins may ask to include a
// soft-deleted project.
func (s *ProjectService) Get(claims *auth.Claims, id uuid.UUID, includeDeleted bool) (*models.Project, error) {
	scope := auth.ScopeFromClaims(claims)
	if includeDeleted {
		if claims.Role != models.RoleAdmin && claims.Role != models.RoleSuperAdmin {
			return nil, apperrors.ErrForbidden
		}
		project, err := s.repo.GetByIDIncludeDeleted(scope, id)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
		}
		return project, nil
	}
	project, err := s.repo.GetByID(scope, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	return project, nil
}

// List returns the caller's projects filtered by status and methodology.
func (s *ProjectService) List(claims *auth.Claims, status models.WorkStatus, methodology models.Methodology, page, pageSize int) ([]models.Project, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.NewValidationError("status", "unknown status")
	}
	if methodology != "" && !methodology.IsValid() {
		return nil, 0, apperrors.NewValidationError("methodology", "unknown methodology")
	}
	limit, offset := paginate(page, pageSize)
	projects, total, err := s.repo.List(auth.ScopeFromClaims(claims), status, methodology, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// UpdateProjectRequest carries mutable project fields. Methodology is not
// among them; it is fixed at creation.
type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Update modifies a project's descriptive fields.
func (s *ProjectService) Update(claims *auth.Claims, id uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}

	before := *project
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not precede start_date")
	}
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "update", "project", project.ID, &before, project)
	return project, nil
}

// SetStatus moves a project through the status machine.
func (s *ProjectService) SetStatus(claims *auth.Claims, id uuid.UUID, next models.WorkStatus) (*models.Project, error) {
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	project, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	if !project.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	before := *project
	project.Status = next
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "set_status", "project", project.ID, &before, project)
	s.publisher.Publish(&project.CompanyID, "core.project.status_changed", "Project status changed",
		fmt.Sprintf("%s is now %s", project.Name, next))
	return project, nil
}

// AttachRequest names the containers a project should move into. A nil field
// leaves the attachment untouched; pointing at uuid.Nil detaches.
type AttachRequest struct {
	PortfolioID *uuid.UUID `json:"portfolio_id,omitempty"`
	ProgrammeID *uuid.UUID `json:"programme_id,omitempty"`
}

// Attach moves a project between portfolio and programme containers within
// the tenant.
func (s *ProjectService) Attach(claims *auth.Claims, id uuid.UUID, req *AttachRequest) (*models.Project, error) {
	scope := auth.ScopeFromClaims(claims)
	project, err := s.repo.GetByID(scope, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}

	before := *project
	if req.PortfolioID != nil {
		if *req.PortfolioID == uuid.Nil {
			project.PortfolioID = nil
		} else {
			if _, err := s.portfolios.GetByID(scope, *req.PortfolioID); err != nil {
				return nil, notFoundOr(err, apperrors.ErrPortfolioNotFound)
			}
			project.PortfolioID = req.PortfolioID
		}
	}
	if req.ProgrammeID != nil {
		if *req.ProgrammeID == uuid.Nil {
			project.ProgrammeID = nil
		} else {
			if _, err := s.programmes.GetByID(scope, *req.ProgrammeID); err != nil {
				return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
			}
			project.ProgrammeID = req.ProgrammeID
		}
	}
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "attach", "project", project.ID, &before, project)
	return project, nil
}

// Delete soft-deletes a project and cascades over its methodology artifacts
// in one transaction.
func (s *ProjectService) Delete(claims *auth.Claims, id uuid.UUID) error {
	project, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrProjectNotFound)
	}
	if err := s.repo.SoftDelete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "delete", "project", project.ID, project, nil)
	s.publisher.Publish(&project.CompanyID, "core.project.deleted", "Project deleted", project.Name)
	return nil
}
