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

// defaultIterationDays is applied when an iteration is created without an
// explicit end date.
const defaultIterationDays = 14

// defaultDoDCriteria seeds a project's Definition of Done on first use.
var defaultDoDCriteria = []string{
	"Code reviewed and approved",
	"Tests written and passing",
	"Acceptance criteria met",
	"Documentation updated",
}

// ScrumService manages iterations, backlog items, daily updates and the
// Definition of Done. Artifacts attach to scrum and agile projects, or to
// hybrid projects whose mix admits scrum.
type ScrumService struct {
	repo      repository.ScrumRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewScrumService creates a new scrum service
func NewScrumService(
	repo repository.ScrumRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	hybrids repository.HybridRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *ScrumService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &ScrumService{
		repo:      repo,
		guard:     &parentGuard{projects: projects, hybrids: hybrids},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

func (s *ScrumService) requireProject(scope auth.TenantScope, projectID uuid.UUID) (*models.Project, error) {
	return s.guard.RequireProject(scope, projectID, models.MethodologyScrum, models.MethodologyAgile)
}

// CreateIterationRequest carries the iteration payload. A missing end date
// defaults to fourteen days after the start.
type CreateIterationRequest struct {
	ProjectID uuid.UUID  `json:"project_id" validate:"required"`
	Name      string     `json:"name" validate:"required,max=200"`
	Goal      string     `json:"goal"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// CreateIteration adds a planned iteration to a scrum project.
func (s *ScrumService) CreateIteration(claims *auth.Claims, req *CreateIterationRequest) (*models.Iteration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	end := req.StartDate.AddDate(0, 0, defaultIterationDays)
	if req.EndDate != nil {
		end = *req.EndDate
	}
	if !end.After(req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must follow start_date")
	}

	iteration := &models.Iteration{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   end,
		Status:    models.IterationStatusPlanned,
	}
	if err := s.repo.CreateIteration(iteration); err != nil {
		return nil, fmt.Errorf("failed to create iteration: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "iteration", iteration.ID, nil, iteration)
	s.publisher.Publish(&project.CompanyID, "scrum.iteration.created", "Iteration created", iteration.Name)
	return iteration, nil
}

// GetIteration returns one iteration visible to the caller.
func (s *ScrumService) GetIteration(claims *auth.Claims, id uuid.UUID) (*models.Iteration, error) {
	iteration, err := s.repo.GetIteration(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrIterationNotFound)
	}
	return iteration, nil
}

// ListIterations returns a project's iterations.
func (s *ScrumService) ListIterations(claims *auth.Claims, projectID uuid.UUID) ([]models.Iteration, error) {
	iterations, err := s.repo.ListIterations(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list iterations: %w", err)
	}
	return iterations, nil
}

// UpdateIterationRequest carries mutable iteration fields. LockVersion, when
// set, is compared against the stored version; a mismatch means another
// writer got there first.
type UpdateIterationRequest struct {
	Name        *string                 `json:"name,omitempty" validate:"omitempty,max=200"`
	Goal        *string                 `json:"goal,omitempty"`
	StartDate   *time.Time              `json:"start_date,omitempty"`
	EndDate     *time.Time              `json:"end_date,omitempty"`
	Status      *models.IterationStatus `json:"status,omitempty"`
	LockVersion *int                    `json:"lock_version,omitempty" validate:"omitempty,min=0"`
}

// UpdateIteration changes an iteration under optimistic locking. Activating
// an iteration, or moving an active one, re-checks the no-overlap rule.
func (s *ScrumService) UpdateIteration(claims *auth.Claims, id uuid.UUID, req *UpdateIterationRequest) (*models.Iteration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	iteration, err := s.repo.GetIteration(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrIterationNotFound)
	}

	before := *iteration
	if req.LockVersion != nil && *req.LockVersion != iteration.LockVersion {
		return nil, apperrors.ErrStaleVersion
	}
	if req.Name != nil {
		iteration.Name = *req.Name
	}
	if req.Goal != nil {
		iteration.Goal = *req.Goal
	}
	if req.StartDate != nil {
		iteration.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		iteration.EndDate = *req.EndDate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown iteration status")
		}
		iteration.Status = *req.Status
	}
	if !iteration.EndDate.After(iteration.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "must follow start_date")
	}

	if iteration.Status == models.IterationStatusActive {
		overlapping, err := s.repo.CountOverlappingActive(iteration.ProjectID, iteration.StartDate, iteration.EndDate, iteration.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check overlap: %w", err)
		}
		if overlapping > 0 {
			return nil, apperrors.ErrIterationOverlap
		}
	}

	ok, err := s.repo.UpdateIteration(iteration, before.LockVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to update iteration: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrStaleVersion
	}
	s.auditor.Record(claims, &iteration.CompanyID, "update", "iteration", iteration.ID, &before, iteration)
	if req.Status != nil && *req.Status == models.IterationStatusActive && before.Status != models.IterationStatusActive {
		s.publisher.Publish(&iteration.CompanyID, "scrum.iteration.started", "Iteration started", iteration.Name)
	}
	return iteration, nil
}

// DeleteIteration soft-deletes an iteration.
func (s *ScrumService) DeleteIteration(claims *auth.Claims, id uuid.UUID) error {
	iteration, err := s.repo.GetIteration(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrIterationNotFound)
	}
	if err := s.repo.SoftDeleteIteration(iteration.ID); err != nil {
		return fmt.Errorf("failed to delete iteration: %w", err)
	}
	s.auditor.Record(claims, &iteration.CompanyID, "delete", "iteration", iteration.ID, iteration, nil)
	return nil
}

// CreateBacklogItemRequest carries the backlog item payload.
type CreateBacklogItemRequest struct {
	ProjectID   uuid.UUID       `json:"project_id" validate:"required"`
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
	StoryPoints int             `json:"story_points" validate:"min=0"`
	Order       int             `json:"order"`
}

// CreateBacklogItem adds a backlog item; the order must be free within the
// project.
func (s *ScrumService) CreateBacklogItem(claims *auth.Claims, req *CreateBacklogItemRequest) (*models.BacklogItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityShould
	}
	if !priority.IsValid() {
		return nil, apperrors.NewValidationError("priority", "unknown priority")
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.OrderTaken(project.ID, req.Order, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check backlog order: %w", err)
	}
	if taken {
		return nil, apperrors.ErrBacklogOrderTaken
	}

	item := &models.BacklogItem{
		CompanyID:   project.CompanyID,
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		StoryPoints: req.StoryPoints,
		Order:       req.Order,
	}
	if err := s.repo.CreateBacklogItem(item); err != nil {
		return nil, fmt.Errorf("failed to create backlog item: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "backlog_item", item.ID, nil, item)
	return item, nil
}

// ListBacklog returns a project's backlog in order.
func (s *ScrumService) ListBacklog(claims *auth.Claims, projectID uuid.UUID) ([]models.BacklogItem, error) {
	items, err := s.repo.ListBacklog(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backlog: %w", err)
	}
	return items, nil
}

// UpdateBacklogItemRequest carries mutable backlog fields. IterationID
// assigns the item to an iteration; uuid.Nil unassigns.
type UpdateBacklogItemRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string          `json:"description,omitempty"`
	Priority    *models.Priority `json:"priority,omitempty"`
	StoryPoints *int             `json:"story_points,omitempty" validate:"omitempty,min=0"`
	Order       *int             `json:"order,omitempty"`
	IterationID *uuid.UUID       `json:"iteration_id,omitempty"`
	IsDone      *bool            `json:"is_done,omitempty"`
}

// UpdateBacklogItem changes a backlog item, keeping per-project order unique.
func (s *ScrumService) UpdateBacklogItem(claims *auth.Claims, id uuid.UUID, req *UpdateBacklogItemRequest) (*models.BacklogItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	item, err := s.repo.GetBacklogItem(scope, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("backlog item"))
	}

	before := *item
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Priority != nil {
		if !req.Priority.IsValid() {
			return nil, apperrors.NewValidationError("priority", "unknown priority")
		}
		item.Priority = *req.Priority
	}
	if req.StoryPoints != nil {
		item.StoryPoints = *req.StoryPoints
	}
	if req.Order != nil && *req.Order != item.Order {
		taken, err := s.repo.OrderTaken(item.ProjectID, *req.Order, item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check backlog order: %w", err)
		}
		if taken {
			return nil, apperrors.ErrBacklogOrderTaken
		}
		item.Order = *req.Order
	}
	if req.IterationID != nil {
		if *req.IterationID == uuid.Nil {
			item.IterationID = nil
		} else {
			iteration, err := s.repo.GetIteration(scope, *req.IterationID)
			if err != nil {
				return nil, notFoundOr(err, apperrors.ErrIterationNotFound)
			}
			if iteration.ProjectID != item.ProjectID {
				return nil, apperrors.NewValidationError("iteration_id", "iteration belongs to another project")
			}
			item.IterationID = &iteration.ID
		}
	}
	if req.IsDone != nil {
		item.IsDone = *req.IsDone
	}
	if err := s.repo.UpdateBacklogItem(item); err != nil {
		return nil, fmt.Errorf("failed to update backlog item: %w", err)
	}
	s.auditor.Record(claims, &item.CompanyID, "update", "backlog_item", item.ID, &before, item)
	return item, nil
}

// DeleteBacklogItem soft-deletes a backlog item, freeing its order slot.
func (s *ScrumService) DeleteBacklogItem(claims *auth.Claims, id uuid.UUID) error {
	item, err := s.repo.GetBacklogItem(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("backlog item"))
	}
	if err := s.repo.SoftDeleteBacklogItem(item.ID); err != nil {
		return fmt.Errorf("failed to delete backlog item: %w", err)
	}
	s.auditor.Record(claims, &item.CompanyID, "delete", "backlog_item", item.ID, item, nil)
	return nil
}

// CreateDailyUpdateRequest carries a stand-up note.
type CreateDailyUpdateRequest struct {
	IterationID uuid.UUID `json:"iteration_id" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Yesterday   string    `json:"yesterday"`
	Today       string    `json:"today"`
	Blockers    string    `json:"blockers"`
}

// CreateDailyUpdate adds a stand-up note. One note per author per iteration
// per calendar day.
func (s *ScrumService) CreateDailyUpdate(claims *auth.Claims, req *CreateDailyUpdateRequest) (*models.DailyUpdate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	iteration, err := s.repo.GetIteration(auth.ScopeFromClaims(claims), req.IterationID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrIterationNotFound)
	}

	day := req.Date.Truncate(24 * time.Hour)
	if existing, err := s.repo.GetDailyUpdateByKey(iteration.ID, claims.UserID, day); err == nil && existing != nil {
		return nil, apperrors.ErrDailyUpdateExists
	}

	update := &models.DailyUpdate{
		CompanyID:   iteration.CompanyID,
		IterationID: iteration.ID,
		AuthorID:    claims.UserID,
		Date:        day,
		Yesterday:   req.Yesterday,
		Today:       req.Today,
		Blockers:    req.Blockers,
	}
	if err := s.repo.CreateDailyUpdate(update); err != nil {
		return nil, fmt.Errorf("failed to create daily update: %w", err)
	}
	s.auditor.Record(claims, &iteration.CompanyID, "create", "daily_update", update.ID, nil, update)
	return update, nil
}

// ListDailyUpdates returns the stand-up notes of one iteration.
func (s *ScrumService) ListDailyUpdates(claims *auth.Claims, iterationID uuid.UUID) ([]models.DailyUpdate, error) {
	updates, err := s.repo.ListDailyUpdates(auth.ScopeFromClaims(claims), iterationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily updates: %w", err)
	}
	return updates, nil
}

// InitializeDoD seeds the default Definition of Done for a project that has
// none yet. Idempotent: an already-seeded project returns its existing items.
func (s *ScrumService) InitializeDoD(claims *auth.Claims, projectID uuid.UUID) ([]models.DoDItem, error) {
	scope := auth.ScopeFromClaims(claims)
	project, err := s.requireProject(scope, projectID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountDoD(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count DoD items: %w", err)
	}
	if count == 0 {
		items := make([]models.DoDItem, 0, len(defaultDoDCriteria))
		for i, criterion := range defaultDoDCriteria {
			items = append(items, models.DoDItem{
				CompanyID: project.CompanyID,
				ProjectID: project.ID,
				Scope:     models.DoDScopeProject,
				Criterion: criterion,
				Order:     i,
				IsActive:  true,
			})
		}
		if err := s.repo.CreateDoDItems(items); err != nil {
			return nil, fmt.Errorf("failed to seed DoD items: %w", err)
		}
		s.auditor.Record(claims, &project.CompanyID, "initialize", "dod", project.ID, nil, items)
	}
	return s.repo.ListDoD(scope, project.ID, "")
}

// CreateDoDItemRequest carries one Definition of Done criterion.
type CreateDoDItemRequest struct {
	ProjectID uuid.UUID       `json:"project_id" validate:"required"`
	Scope     models.DoDScope `json:"scope"`
	Criterion string          `json:"criterion" validate:"required,max=500"`
	Order     int             `json:"order"`
}

// CreateDoDItem adds a criterion at project, iteration or task scope.
func (s *ScrumService) CreateDoDItem(claims *auth.Claims, req *CreateDoDItemRequest) (*models.DoDItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	dodScope := req.Scope
	if dodScope == "" {
		dodScope = models.DoDScopeProject
	}
	if !dodScope.IsValid() {
		return nil, apperrors.NewValidationError("scope", "unknown DoD scope")
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	items := []models.DoDItem{{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Scope:     dodScope,
		Criterion: req.Criterion,
		Order:     req.Order,
		IsActive:  true,
	}}
	if err := s.repo.CreateDoDItems(items); err != nil {
		return nil, fmt.Errorf("failed to create DoD item: %w", err)
	}
	item := &items[0]
	s.auditor.Record(claims, &project.CompanyID, "create", "dod_item", item.ID, nil, item)
	return item, nil
}

// ListDoD returns the criteria of a project, optionally filtered by scope.
func (s *ScrumService) ListDoD(claims *auth.Claims, projectID uuid.UUID, dodScope models.DoDScope) ([]models.DoDItem, error) {
	if dodScope != "" && !dodScope.IsValid() {
		return nil, apperrors.NewValidationError("scope", "unknown DoD scope")
	}
	items, err := s.repo.ListDoD(auth.ScopeFromClaims(claims), projectID, dodScope)
	if err != nil {
		return nil, fmt.Errorf("failed to list DoD items: %w", err)
	}
	return items, nil
}

// UpdateDoDItemRequest carries mutable criterion fields.
type UpdateDoDItemRequest struct {
	Criterion *string `json:"criterion,omitempty" validate:"omitempty,max=500"`
	Order     *int    `json:"order,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UpdateDoDItem changes a criterion.
func (s *ScrumService) UpdateDoDItem(claims *auth.Claims, id uuid.UUID, req *UpdateDoDItemRequest) (*models.DoDItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	item, err := s.repo.GetDoDItem(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("DoD item"))
	}

	before := *item
	if req.Criterion != nil {
		item.Criterion = *req.Criterion
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if err := s.repo.UpdateDoDItem(item); err != nil {
		return nil, fmt.Errorf("failed to update DoD item: %w", err)
	}
	s.auditor.Record(claims, &item.CompanyID, "update", "dod_item", item.ID, &before, item)
	return item, nil
}

// DeleteDoDItem soft-deletes a criterion.
func (s *ScrumService) DeleteDoDItem(claims *auth.Claims, id uuid.UUID) error {
	item, err := s.repo.GetDoDItem(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("DoD item"))
	}
	if err := s.repo.SoftDeleteDoDItem(item.ID); err != nil {
		return fmt.Errorf("failed to delete DoD item: %w", err)
	}
	s.auditor.Record(claims, &item.CompanyID, "delete", "dod_item", item.ID, item, nil)
	return nil
}
