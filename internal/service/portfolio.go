package service

import (
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// PortfolioService manages portfolios and their status lifecycle.
type PortfolioService struct {
	repo      repository.PortfolioRepositoryInterface
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(repo repository.PortfolioRepositoryInterface, auditor *Auditor, publisher EventPublisher) *PortfolioService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &PortfolioService{
		repo:      repo,
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

// CreatePortfolioRequest carries the portfolio payload. CompanyID is only
// honored for super admins; everyone else creates in their own tenant.
type CreatePortfolioRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
}

// Create creates a portfolio. A tenanted caller without a company is
// rejected; a super admin may create a global portfolio with no company.
func (s *PortfolioService) Create(claims *auth.Claims, req *CreatePortfolioRequest) (*models.Portfolio, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	scope := auth.ScopeFromClaims(claims)
	companyID := claims.CompanyID
	if scope.SuperAdmin {
		companyID = req.CompanyID
	} else if companyID == nil {
		return nil, apperrors.ErrCompanyRequired
	}

	portfolio := &models.Portfolio{
		CompanyID:   companyID,
		OwnerID:     claims.UserID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.WorkStatusDraft,
	}
	if err := s.repo.Create(portfolio); err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	s.auditor.Record(claims, companyID, "create", "portfolio", portfolio.ID, nil, portfolio)
	s.publisher.Publish(companyID, "core.portfolio.created", "Portfolio created", portfolio.Name)
	return portfolio, nil
}

// Get returns a portfolio visible to the caller.
func (s *PortfolioService) Get(claims *auth.Claims, id uuid.UUID) (*models.Portfolio, error) {
	portfolio, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPortfolioNotFound)
	}
	return portfolio, nil
}

// List returns the caller's portfolios, optionally filtered by status.
func (s *PortfolioService) List(claims *auth.Claims, status models.WorkStatus, page, pageSize int) ([]models.Portfolio, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.NewValidationError("status", "unknown status")
	}
	limit, offset := paginate(page, pageSize)
	portfolios, total, err := s.repo.List(auth.ScopeFromClaims(claims), status, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, total, nil
}

// UpdatePortfolioRequest carries mutable portfolio fields.
type UpdatePortfolioRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
}

// Update modifies a portfolio's descriptive fields.
func (s *PortfolioService) Update(claims *auth.Claims, id uuid.UUID, req *UpdatePortfolioRequest) (*models.Portfolio, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	portfolio, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPortfolioNotFound)
	}

	before := *portfolio
	if req.Name != nil {
		portfolio.Name = *req.Name
	}
	if req.Description != nil {
		portfolio.Description = *req.Description
	}
	if err := s.repo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	s.auditor.Record(claims, portfolio.CompanyID, "update", "portfolio", portfolio.ID, &before, portfolio)
	return portfolio, nil
}

// SetStatus moves a portfolio through the status machine.
func (s *PortfolioService) SetStatus(claims *auth.Claims, id uuid.UUID, next models.WorkStatus) (*models.Portfolio, error) {
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown status")
	}
	portfolio, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPortfolioNotFound)
	}
	if !portfolio.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrIllegalTransition
	}

	before := *portfolio
	portfolio.Status = next
	if err := s.repo.Update(portfolio); err != nil {
		return nil, fmt.Errorf("failed to update portfolio: %w", err)
	}
	s.auditor.Record(claims, portfolio.CompanyID, "set_status", "portfolio", portfolio.ID, &before, portfolio)
	s.publisher.Publish(portfolio.CompanyID, "core.portfolio.status_changed", "Portfolio status changed",
		fmt.Sprintf("%s is now %s", portfolio.Name, next))
	return portfolio, nil
}

// Delete soft-deletes a portfolio. Contained projects keep their portfolio
// reference but stop resolving it.
func (s *PortfolioService) Delete(claims *auth.Claims, id uuid.UUID) error {
	portfolio, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrPortfolioNotFound)
	}
	if err := s.repo.SoftDelete(portfolio.ID); err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}
	s.auditor.Record(claims, portfolio.CompanyID, "delete", "portfolio", portfolio.ID, portfolio, nil)
	return nil
}
