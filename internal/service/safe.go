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

// SAFeService manages Agile Release Trains, Program Increments, PI
// objectives and sync meetings on SAFe programmes.
type SAFeService struct {
	repo      repository.SAFeRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewSAFeService creates a new SAFe service
func NewSAFeService(
	repo repository.SAFeRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *SAFeService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &SAFeService{
		repo:      repo,
		guard:     &parentGuard{programmes: programmes},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreateARTRequest carries the release train payload.
type CreateARTRequest struct {
	ProgrammeID uuid.UUID `json:"programme_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Cadence     string    `json:"cadence" validate:"max=50"`
}

// CreateART adds a release train to a SAFe programme.
func (s *SAFeService) CreateART(claims *auth.Claims, req *CreateARTRequest) (*models.ART, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	programme, err := s.guard.RequireProgramme(auth.ScopeFromClaims(claims), req.ProgrammeID, models.FrameworkSAFe)
	if err != nil {
		return nil, err
	}

	art := &models.ART{
		CompanyID:   programme.CompanyID,
		ProgrammeID: programme.ID,
		Name:        req.Name,
		Cadence:     req.Cadence,
	}
	if err := s.repo.CreateART(art); err != nil {
		return nil, fmt.Errorf("failed to create ART: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "art", art.ID, nil, art)
	return art, nil
}

// ListARTs returns a programme's release trains.
func (s *SAFeService) ListARTs(claims *auth.Claims, programmeID uuid.UUID) ([]models.ART, error) {
	arts, err := s.repo.ListARTs(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ARTs: %w", err)
	}
	return arts, nil
}

// DeleteART soft-deletes a release train.
func (s *SAFeService) DeleteART(claims *auth.Claims, id uuid.UUID) error {
	art, err := s.repo.GetART(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("ART"))
	}
	if err := s.repo.SoftDeleteART(art.ID); err != nil {
		return fmt.Errorf("failed to delete ART: %w", err)
	}
	s.auditor.Record(claims, &art.CompanyID, "delete", "art", art.ID, art, nil)
	return nil
}

// CreatePIRequest carries the Program Increment payload. IterationCount
// must be at least one.
type CreatePIRequest struct {
	ProgrammeID    uuid.UUID  `json:"programme_id" validate:"required"`
	ARTID          *uuid.UUID `json:"art_id,omitempty"`
	Name           string     `json:"name" validate:"required,max=200"`
	IterationCount int        `json:"iteration_count" validate:"min=1"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

// CreatePI adds a Program Increment, optionally bound to an ART.
func (s *SAFeService) CreatePI(claims *auth.Claims, req *CreatePIRequest) (*models.ProgramIncrement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	programme, err := s.guard.RequireProgramme(scope, req.ProgrammeID, models.FrameworkSAFe)
	if err != nil {
		return nil, err
	}
	if req.ARTID != nil {
		art, err := s.repo.GetART(scope, *req.ARTID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.NewNotFoundError("ART"))
		}
		if art.ProgrammeID != programme.ID {
			return nil, apperrors.NewValidationError("art_id", "ART belongs to another programme")
		}
	}

	pi := &models.ProgramIncrement{
		CompanyID:      programme.CompanyID,
		ProgrammeID:    programme.ID,
		ARTID:          req.ARTID,
		Name:           req.Name,
		IterationCount: req.IterationCount,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := s.repo.CreatePI(pi); err != nil {
		return nil, fmt.Errorf("failed to create PI: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "program_increment", pi.ID, nil, pi)
	s.publisher.Publish(&programme.CompanyID, "safe.pi.created", "Program Increment created", pi.Name)
	return pi, nil
}

// ListPIs returns a programme's Program Increments.
func (s *SAFeService) ListPIs(claims *auth.Claims, programmeID uuid.UUID) ([]models.ProgramIncrement, error) {
	pis, err := s.repo.ListPIs(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list PIs: %w", err)
	}
	return pis, nil
}

// CreateObjectiveRequest carries a PI objective. Business value is bounded
// to 1..10.
type CreateObjectiveRequest struct {
	ProgramIncrementID uuid.UUID `json:"program_increment_id" validate:"required"`
	Title              string    `json:"title" validate:"required,max=200"`
	BusinessValue      int       `json:"business_value" validate:"min=1,max=10"`
	IsCommitted        bool      `json:"is_committed"`
}

// CreateObjective adds an objective to a Program Increment.
func (s *SAFeService) CreateObjective(claims *auth.Claims, req *CreateObjectiveRequest) (*models.PIObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	pi, err := s.repo.GetPI(auth.ScopeFromClaims(claims), req.ProgramIncrementID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("program increment"))
	}

	objective := &models.PIObjective{
		CompanyID:          pi.CompanyID,
		ProgramIncrementID: pi.ID,
		Title:              req.Title,
		BusinessValue:      req.BusinessValue,
		IsCommitted:        req.IsCommitted,
	}
	if err := s.repo.CreateObjective(objective); err != nil {
		return nil, fmt.Errorf("failed to create objective: %w", err)
	}
	s.auditor.Record(claims, &pi.CompanyID, "create", "pi_objective", objective.ID, nil, objective)
	return objective, nil
}

// UpdateObjectiveRequest carries mutable objective fields.
type UpdateObjectiveRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	BusinessValue *int    `json:"business_value,omitempty" validate:"omitempty,min=1,max=10"`
	IsCommitted   *bool   `json:"is_committed,omitempty"`
}

// UpdateObjective changes a PI objective.
func (s *SAFeService) UpdateObjective(claims *auth.Claims, id uuid.UUID, req *UpdateObjectiveRequest) (*models.PIObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	objective, err := s.repo.GetObjective(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("PI objective"))
	}

	before := *objective
	if req.Title != nil {
		objective.Title = *req.Title
	}
	if req.BusinessValue != nil {
		objective.BusinessValue = *req.BusinessValue
	}
	if req.IsCommitted != nil {
		objective.IsCommitted = *req.IsCommitted
	}
	if err := s.repo.UpdateObjective(objective); err != nil {
		return nil, fmt.Errorf("failed to update objective: %w", err)
	}
	s.auditor.Record(claims, &objective.CompanyID, "update", "pi_objective", objective.ID, &before, objective)
	return objective, nil
}

// RecordSyncMeetingRequest carries one ART sync record.
type RecordSyncMeetingRequest struct {
	ARTID uuid.UUID `json:"art_id" validate:"required"`
	Date  time.Time `json:"date" validate:"required"`
	Notes string    `json:"notes"`
}

// RecordSyncMeeting appends a date-stamped sync record to an ART. Records
// are append-only.
func (s *SAFeService) RecordSyncMeeting(claims *auth.Claims, req *RecordSyncMeetingRequest) (*models.ARTSyncMeeting, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	art, err := s.repo.GetART(auth.ScopeFromClaims(claims), req.ARTID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("ART"))
	}

	meeting := &models.ARTSyncMeeting{
		CompanyID: art.CompanyID,
		ARTID:     art.ID,
		Date:      req.Date.Truncate(24 * time.Hour),
		Notes:     req.Notes,
	}
	if err := s.repo.AppendSyncMeeting(meeting); err != nil {
		return nil, fmt.Errorf("failed to append sync meeting: %w", err)
	}
	s.auditor.Record(claims, &art.CompanyID, "record_sync", "art_sync_meeting", meeting.ID, nil, meeting)
	return meeting, nil
}

// ListSyncMeetings returns the sync records of one ART.
func (s *SAFeService) ListSyncMeetings(claims *auth.Claims, artID uuid.UUID) ([]models.ARTSyncMeeting, error) {
	meetings, err := s.repo.ListSyncMeetings(auth.ScopeFromClaims(claims), artID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync meetings: %w", err)
	}
	return meetings, nil
}
