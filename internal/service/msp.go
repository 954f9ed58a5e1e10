package service

import (
	"errors"
	"fmt"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MSPService manages MSP tranches and benefits. Tranche sequences per
// programme are gap-free {1..N}; benefit realizations are append-only.
type MSPService struct {
	repo      repository.ProgrammeArtifactRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewMSPService creates a new MSP service
func NewMSPService(
	repo repository.ProgrammeArtifactRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *MSPService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &MSPService{
		repo:      repo,
		guard:     &parentGuard{programmes: programmes},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreateTrancheRequest carries the tranche payload. Tranches always append
// at the end of the sequence.
type CreateTrancheRequest struct {
	ProgrammeID uuid.UUID  `json:"programme_id" validate:"required"`
	Name        string     `json:"name" validate:"required,max=200"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// CreateTranche appends a tranche at sequence max+1.
func (s *MSPService) CreateTranche(claims *auth.Claims, req *CreateTrancheRequest) (*models.Tranche, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	programme, err := s.guard.RequireProgramme(auth.ScopeFromClaims(claims), req.ProgrammeID, models.FrameworkMSP)
	if err != nil {
		return nil, err
	}

	max, err := s.repo.MaxTrancheSequence(programme.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read tranche sequence: %w", err)
	}
	tranche := &models.Tranche{
		CompanyID:   programme.CompanyID,
		ProgrammeID: programme.ID,
		Name:        req.Name,
		Sequence:    max + 1,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.CreateTranche(tranche); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTrancheSequenceTaken
		}
		return nil, fmt.Errorf("failed to create tranche: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "tranche", tranche.ID, nil, tranche)
	return tranche, nil
}

// ListTranches returns a programme's tranches in sequence order.
func (s *MSPService) ListTranches(claims *auth.Claims, programmeID uuid.UUID) ([]models.Tranche, error) {
	tranches, err := s.repo.ListTranches(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tranches: %w", err)
	}
	return tranches, nil
}

// DeleteTranche removes a tranche and renumbers the later ones so the
// sequence stays gap-free.
func (s *MSPService) DeleteTranche(claims *auth.Claims, id uuid.UUID) error {
	tranche, err := s.repo.GetTranche(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrTrancheNotFound)
	}
	if err := s.repo.DeleteTrancheAndClose(tranche); err != nil {
		return fmt.Errorf("failed to delete tranche: %w", err)
	}
	s.auditor.Record(claims, &tranche.CompanyID, "delete", "tranche", tranche.ID, tranche, nil)
	return nil
}

// CreateBenefitRequest carries the benefit payload.
type CreateBenefitRequest struct {
	ProgrammeID uuid.UUID  `json:"programme_id" validate:"required"`
	TrancheID   *uuid.UUID `json:"tranche_id,omitempty"`
	Name        string     `json:"name" validate:"required,max=200"`
	TargetValue float64    `json:"target_value" validate:"required"`
	Unit        string     `json:"unit" validate:"max=50"`
}

// CreateBenefit adds a benefit with a target value.
func (s *MSPService) CreateBenefit(claims *auth.Claims, req *CreateBenefitRequest) (*models.Benefit, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	programme, err := s.guard.RequireProgramme(scope, req.ProgrammeID, models.FrameworkMSP)
	if err != nil {
		return nil, err
	}
	if req.TrancheID != nil {
		tranche, err := s.repo.GetTranche(scope, *req.TrancheID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrTrancheNotFound)
		}
		if tranche.ProgrammeID != programme.ID {
			return nil, apperrors.NewValidationError("tranche_id", "tranche belongs to another programme")
		}
	}

	benefit := &models.Benefit{
		CompanyID:   programme.CompanyID,
		ProgrammeID: programme.ID,
		TrancheID:   req.TrancheID,
		Name:        req.Name,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
	}
	if err := s.repo.CreateBenefit(benefit); err != nil {
		return nil, fmt.Errorf("failed to create benefit: %w", err)
	}
	s.auditor.Record(claims, &programme.CompanyID, "create", "benefit", benefit.ID, nil, benefit)
	return benefit, nil
}

// ListBenefits returns a programme's benefits with their realizations.
func (s *MSPService) ListBenefits(claims *auth.Claims, programmeID uuid.UUID) ([]models.Benefit, error) {
	benefits, err := s.repo.ListBenefits(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list benefits: %w", err)
	}
	return benefits, nil
}

// RealizationResult is an appended realization plus any over-target warning.
type RealizationResult struct {
	Realization *models.BenefitRealization `json:"realization"`
	Total       float64                    `json:"total_realized"`
	Warning     string                     `json:"warning,omitempty"`
}

// RecordRealizationRequest carries one realization entry.
type RecordRealizationRequest struct {
	Value      float64    `json:"value" validate:"required"`
	RealizedAt *time.Time `json:"realized_at,omitempty"`
	Note       string     `json:"note"`
}

// RecordRealization appends a realization entry. Exceeding the target is
// accepted with a warning; the timeline never mutates past entries.
func (s *MSPService) RecordRealization(claims *auth.Claims, benefitID uuid.UUID, req *RecordRealizationRequest) (*RealizationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	benefit, err := s.repo.GetBenefit(auth.ScopeFromClaims(claims), benefitID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBenefitNotFound)
	}

	realizedAt := time.Now()
	if req.RealizedAt != nil {
		realizedAt = *req.RealizedAt
	}
	entry := &models.BenefitRealization{
		CompanyID:  benefit.CompanyID,
		BenefitID:  benefit.ID,
		Value:      req.Value,
		RealizedAt: realizedAt,
		Note:       req.Note,
	}
	if err := s.repo.AppendRealization(entry); err != nil {
		return nil, fmt.Errorf("failed to append realization: %w", err)
	}

	total, err := s.repo.SumRealized(benefit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum realizations: %w", err)
	}
	var warning string
	if total > benefit.TargetValue {
		warning = fmt.Sprintf("benefit %q realized %.2f of target %.2f", benefit.Name, total, benefit.TargetValue)
		logrus.WithFields(logrus.Fields{
			"benefit": benefit.Name,
			"total":   total,
			"target":  benefit.TargetValue,
		}).Warn("benefit realized over target")
	}
	s.auditor.Record(claims, &benefit.CompanyID, "record_realization", "benefit", benefit.ID, nil, entry)
	s.publisher.Publish(&benefit.CompanyID, "msp.benefit.realized", "Benefit realization recorded",
		fmt.Sprintf("%s: %.2f %s", benefit.Name, req.Value, benefit.Unit))
	return &RealizationResult{Realization: entry, Total: total, Warning: warning}, nil
}
