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

// WaterfallService manages dated milestones. Milestones double as the
// Waterfall artifact set but attach to projects of any methodology.
type WaterfallService struct {
	repo      repository.MilestoneRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewWaterfallService creates a new waterfall service
func NewWaterfallService(
	repo repository.MilestoneRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *WaterfallService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &WaterfallService{
		repo:      repo,
		projects:  projects,
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreateMilestoneRequest carries the milestone payload.
type CreateMilestoneRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

// Create adds a milestone to a project in the caller's tenant.
func (s *WaterfallService) Create(claims *auth.Claims, req *CreateMilestoneRequest) (*models.Milestone, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.projects.GetByID(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}

	milestone := &models.Milestone{
		CompanyID:   project.CompanyID,
		ProjectID:   project.ID,
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      models.MilestoneStatusPending,
	}
	if err := s.repo.Create(milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "milestone", milestone.ID, nil, milestone)
	return milestone, nil
}

// ListByProject returns a project's milestones ordered by due date.
func (s *WaterfallService) ListByProject(claims *auth.Claims, projectID uuid.UUID) ([]models.Milestone, error) {
	milestones, err := s.repo.ListByProject(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	return milestones, nil
}

// UpdateMilestoneRequest carries mutable milestone fields.
type UpdateMilestoneRequest struct {
	Name        *string                 `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string                 `json:"description,omitempty"`
	DueDate     *time.Time              `json:"due_date,omitempty"`
	Status      *models.MilestoneStatus `json:"status,omitempty"`
}

// Update changes a milestone. Moving to completed stamps CompletedAt; moving
// away clears it.
func (s *WaterfallService) Update(claims *auth.Claims, id uuid.UUID, req *UpdateMilestoneRequest) (*models.Milestone, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	milestone, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrMilestoneNotFound)
	}

	before := *milestone
	if req.Name != nil {
		milestone.Name = *req.Name
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.DueDate != nil {
		milestone.DueDate = *req.DueDate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown milestone status")
		}
		milestone.Status = *req.Status
		if milestone.Status == models.MilestoneStatusCompleted {
			if milestone.CompletedAt == nil {
				now := time.Now()
				milestone.CompletedAt = &now
			}
		} else {
			milestone.CompletedAt = nil
		}
	}
	if err := s.repo.Update(milestone); err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	s.auditor.Record(claims, &milestone.CompanyID, "update", "milestone", milestone.ID, &before, milestone)
	if milestone.Status == models.MilestoneStatusCompleted && before.Status != models.MilestoneStatusCompleted {
		s.publisher.Publish(&milestone.CompanyID, "waterfall.milestone.completed", "Milestone completed", milestone.Name)
	}
	return milestone, nil
}

// Delete soft-deletes a milestone.
func (s *WaterfallService) Delete(claims *auth.Claims, id uuid.UUID) error {
	milestone, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrMilestoneNotFound)
	}
	if err := s.repo.SoftDelete(milestone.ID); err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	s.auditor.Record(claims, &milestone.CompanyID, "delete", "milestone", milestone.ID, milestone, nil)
	return nil
}
