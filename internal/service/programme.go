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

// ProgrammeService manages programmes and their framework binding.
type ProgrammeService struct {
	repo      repository.ProgrammeRepositoryInterface
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewProgrammeService creates a new programme service
func NewProgrammeService(repo repository.ProgrammeRepositoryInterface, auditor *Auditor, publisher EventPublisher) *ProgrammeService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ProgrammeService{
		repo:      repo,
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreateProgrammeRequest carries the programme payload.
type CreateProgrammeRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Framework   models.Framework `json:"methodology_framework"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
}

// Create creates a programme in the caller's tenant. The framework is fixed
// at creation; artifacts later attach according to it.
func (s *ProgrammeService) Create(claims *auth.Claims, req *CreateProgrammeRequest) (*models.Programme, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if claims.CompanyID == nil {
		return nil, apperrors.ErrCompanyRequired
	}
	framework := req.Framework
	if framework == "" {
		framework = models.FrameworkGeneric
	}
	if !framework.IsValid() {
		return nil, apperrors.NewValidationError("methodology_framework", "unknown framework")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not precede start_date")
	}

	programme := &models.Programme{
		CompanyID:   *claims.CompanyID,
		ManagerID:   claims.UserID,
		Name:        req.Name,
		Description: req.Description,
		Framework:   framework,
		Status:      models.WorkStatusDraft,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(programme); err != nil {
		return nil, fmt.Errorf("failed to create programme: %w", err)
	}

	s.auditor.Record(claims, claims.CompanyID, "create", "programme", programme.ID, nil, programme)
	s.publisher.Publish(claims.CompanyID, "core.programme.created", "Programme created", programme.Name)
	return programme, nil
}

// Get returns a programme visible to the caller.
func (s *ProgrammeService) Get(claims *auth.Claims, id uuid.UUID) (*models.Programme, error) {
	programme, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}
	return programme, nil
}

// GetWithProjects returns a programme with its member projects preloaded.
func (s *ProgrammeService) GetWithProjects(claims *auth.Claims, id uuid.UUID) (*models.Programme, error) {
	programme, err := s.repo.GetWithProjects(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}
	return programme, nil
}

// List returns the caller's programmes, optionally filtered by status.
func (s *ProgrammeService) List(claims *auth.Claims, status models.WorkStatus, page, pageSize int) ([]models.Programme, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.NewValidationError("status", "unknown status")
	}
	limit, offset := paginate(page, pageSize)
	programmes, total, err := s.repo.List(auth.ScopeFromClaims(claims), status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list programmes: %w", err)
	}
	return programmes, total, nil
}

// UpdateProgrammeRequest carries mutable programme fields. The framework is
// immutable once artifacts may reference it.
type UpdateProgrammeRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// Update modifies a programme's descriptive fields.
func (s *ProgrammeService) Update(claims *auth.Claims, id uuid.UUID, req *UpdateProgrammeRequest) (*models.Programme, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	programme, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}

	before := *programme
	if req.Name != nil {
		programme.Name = *req.Name
	}
	if req.Description != nil {
		programme.Description = *req.Description
	}
	if req.ManagerID != nil {
		programme.ManagerID = *req.ManagerID
	}
	if req.StartDate != nil {
		programme.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		programme.EndDate = req.EndDate
	}
	if programme.StartDate != nil && programme.EndDate != nil && programme.EndDate.Before(*programme.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must not precede start_date")
	}
	if err := s.repo.Update(programme); err != nil {
		return nil, fmt.Errorf("failed to update programme: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "update", "programme", programme.ID, &before, programme)
	return programme, nil
}

// SetStatus moves a programme through the status machine.
func (s *ProgrammeService) SetStatus(claims *auth.Claims, id uuid.UUID, next models.WorkStatus) (*models.Programme, error) {
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	programme, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}
	if !programme.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	before := *programme
	programme.Status = next
	if err := s.repo.Update(programme); err != nil {
		return nil, fmt.Errorf("failed to update programme: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "set_status", "programme", programme.ID, &before, programme)
	s.publisher.Publish(&programme.CompanyID, "core.programme.status_changed", "Programme status changed",
		fmt.Sprintf("%s is now %s", programme.Name, next))
	return programme, nil
}

// Delete soft-deletes a programme. Member projects are detached, not deleted.
func (s *ProgrammeService) Delete(claims *auth.Claims, id uuid.UUID) error {
	programme, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}
	if err := s.repo.SoftDelete(programme.ID); err != nil {
		return fmt.Errorf("failed to delete programme: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "delete", "programme", programme.ID, programme, nil)
	return nil
}
