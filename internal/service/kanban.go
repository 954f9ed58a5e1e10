package service

import (
	"errors"
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// KanbanService manages boards, columns, cards and work policies. Card moves
// honor WIP limits atomically under optimistic locking.
type KanbanService struct {
	repo      repository.KanbanRepositoryInterface
	guard     *parentGuard
	auditor   *Auditor
	publisher EventPublisher
	validator *validator.Validate
}

// NewKanbanService creates a new kanban service
func NewKanbanService(
	repo repository.KanbanRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	hybrids repository.HybridRepositoryInterface,
	auditor *Auditor,
	publisher EventPublisher,
) *KanbanService {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &KanbanService{
		repo:      repo,
		guard:     &parentGuard{projects: projects, hybrids: hybrids},
		auditor:   auditor,
		publisher: publisher,
		validator: validator.New(),
	}
}

func (s *KanbanService) requireProject(scope auth.TenantScope, projectID uuid.UUID) (*models.Project, error) {
	return s.guard.RequireProject(scope, projectID, models.MethodologyKanban)
}

// CreateBoardRequest carries the board payload.
type CreateBoardRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description"`
}

// CreateBoard adds a board to a kanban project.
func (s *KanbanService) CreateBoard(claims *auth.Claims, req *CreateBoardRequest) (*models.Board, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	board := &models.Board{
		CompanyID:   project.CompanyID,
		ProjectID:   project.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.CreateBoard(board); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "board", board.ID, nil, board)
	return board, nil
}

// GetBoard returns a board with its columns in order.
func (s *KanbanService) GetBoard(claims *auth.Claims, id uuid.UUID) (*models.Board, error) {
	board, err := s.repo.GetBoard(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBoardNotFound)
	}
	return board, nil
}

// ListBoards returns a project's boards.
func (s *KanbanService) ListBoards(claims *auth.Claims, projectID uuid.UUID) ([]models.Board, error) {
	boards, err := s.repo.ListBoards(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	return boards, nil
}

// DeleteBoard soft-deletes a board.
func (s *KanbanService) DeleteBoard(claims *auth.Claims, id uuid.UUID) error {
	board, err := s.repo.GetBoard(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrBoardNotFound)
	}
	if err := s.repo.SoftDeleteBoard(board.ID); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	s.auditor.Record(claims, &board.CompanyID, "delete", "board", board.ID, board, nil)
	return nil
}

// CreateColumnRequest carries the column payload. A nil WIP limit means
// unlimited.
type CreateColumnRequest struct {
	BoardID   uuid.UUID `json:"board_id" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Order     int       `json:"order"`
	WIPLimit  *int      `json:"wip_limit,omitempty" validate:"omitempty,min=1"`
	CountsWIP *bool     `json:"counts_wip,omitempty"`
}

// CreateColumn adds a column to a board.
func (s *KanbanService) CreateColumn(claims *auth.Claims, req *CreateColumnRequest) (*models.Column, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	board, err := s.repo.GetBoard(auth.ScopeFromClaims(claims), req.BoardID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBoardNotFound)
	}

	countsWIP := true
	if req.CountsWIP != nil {
		countsWIP = *req.CountsWIP
	}
	column := &models.Column{
		CompanyID: board.CompanyID,
		BoardID:   board.ID,
		Name:      req.Name,
		Order:     req.Order,
		WIPLimit:  req.WIPLimit,
		CountsWIP: countsWIP,
	}
	if err := s.repo.CreateColumn(column); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	s.auditor.Record(claims, &board.CompanyID, "create", "column", column.ID, nil, column)
	return column, nil
}

// UpdateColumnRequest carries mutable column fields. Setting ClearWIPLimit
// removes the limit.
type UpdateColumnRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Order         *int    `json:"order,omitempty"`
	WIPLimit      *int    `json:"wip_limit,omitempty" validate:"omitempty,min=1"`
	ClearWIPLimit bool    `json:"clear_wip_limit,omitempty"`
	CountsWIP     *bool   `json:"counts_wip,omitempty"`
}

// UpdateColumn changes a column. Lowering a WIP limit below the current card
// count is allowed; the limit binds future moves only.
func (s *KanbanService) UpdateColumn(claims *auth.Claims, id uuid.UUID, req *UpdateColumnRequest) (*models.Column, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	column, err := s.repo.GetColumn(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrColumnNotFound)
	}

	before := *column
	if req.Name != nil {
		column.Name = *req.Name
	}
	if req.Order != nil {
		column.Order = *req.Order
	}
	if req.ClearWIPLimit {
		column.WIPLimit = nil
	} else if req.WIPLimit != nil {
		column.WIPLimit = req.WIPLimit
	}
	if req.CountsWIP != nil {
		column.CountsWIP = *req.CountsWIP
	}
	if err := s.repo.UpdateColumn(column); err != nil {
		return nil, fmt.Errorf("failed to update column: %w", err)
	}
	s.auditor.Record(claims, &column.CompanyID, "update", "column", column.ID, &before, column)
	return column, nil
}

// DeleteColumn soft-deletes a column and orphans none: the caller must move
// cards out first.
func (s *KanbanService) DeleteColumn(claims *auth.Claims, id uuid.UUID) error {
	column, err := s.repo.GetColumn(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrColumnNotFound)
	}
	count, err := s.repo.CountCards(column.ID)
	if err != nil {
		return fmt.Errorf("failed to count cards: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError("column still holds cards")
	}
	if err := s.repo.SoftDeleteColumn(column.ID); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	s.auditor.Record(claims, &column.CompanyID, "delete", "column", column.ID, column, nil)
	return nil
}

// CreateCardRequest carries the card payload.
type CreateCardRequest struct {
	ColumnID    uuid.UUID  `json:"column_id" validate:"required"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Position    int        `json:"position"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
}

// CreateCard adds a card to a column, honoring the column's WIP limit.
func (s *KanbanService) CreateCard(claims *auth.Claims, req *CreateCardRequest) (*models.Card, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	column, err := s.repo.GetColumn(auth.ScopeFromClaims(claims), req.ColumnID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrColumnNotFound)
	}

	if column.WIPLimit != nil && column.CountsWIP {
		count, err := s.repo.CountCards(column.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count cards: %w", err)
		}
		if int(count) >= *column.WIPLimit {
			return nil, apperrors.ErrWIPLimitExceeded
		}
	}

	card := &models.Card{
		CompanyID:   column.CompanyID,
		BoardID:     column.BoardID,
		ColumnID:    column.ID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		AssigneeID:  req.AssigneeID,
	}
	if err := s.repo.CreateCard(card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	s.auditor.Record(claims, &column.CompanyID, "create", "card", card.ID, nil, card)
	return card, nil
}

// ListCards returns the cards of one column in position order.
func (s *KanbanService) ListCards(claims *auth.Claims, columnID uuid.UUID) ([]models.Card, error) {
	cards, err := s.repo.ListCards(auth.ScopeFromClaims(claims), columnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// MoveCardRequest carries a card move. LockVersion is the version the client
// last read; Override lets managers exceed the destination WIP limit.
type MoveCardRequest struct {
	ColumnID    uuid.UUID `json:"column_id" validate:"required"`
	Position    int       `json:"position"`
	LockVersion int       `json:"lock_version"`
	Override    bool      `json:"override"`
}

// MoveCard moves a card between columns. The WIP count is re-checked inside
// the move transaction; a full destination conflicts unless overridden, and
// a stale lock version conflicts for retry.
func (s *KanbanService) MoveCard(claims *auth.Claims, cardID uuid.UUID, req *MoveCardRequest) (*models.Card, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	card, err := s.repo.GetCard(scope, cardID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrCardNotFound)
	}
	dest, err := s.repo.GetColumn(scope, req.ColumnID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrColumnNotFound)
	}
	if dest.BoardID != card.BoardID {
		return nil, apperrors.NewValidationError("column_id", "column belongs to another board")
	}
	if req.Override && claims.Role != models.RoleManager && claims.Role != models.RoleAdmin && claims.Role != models.RoleSuperAdmin {
		return nil, apperrors.ErrForbidden
	}

	before := *card
	var wipLimit *int
	if !req.Override && dest.ID != card.ColumnID && dest.WIPLimit != nil && dest.CountsWIP {
		wipLimit = dest.WIPLimit
	}
	ok, err := s.repo.MoveCard(card, dest.ID, req.Position, req.LockVersion, wipLimit)
	if err != nil {
		if errors.Is(err, repository.ErrWIPLimitReached) {
			return nil, apperrors.ErrWIPLimitExceeded
		}
		return nil, fmt.Errorf("failed to move card: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrStaleVersion
	}
	s.auditor.Record(claims, &card.CompanyID, "move", "card", card.ID, &before, card)
	s.publisher.Publish(&card.CompanyID, "kanban.card.moved", "Card moved",
		fmt.Sprintf("%s moved to %s", card.Title, dest.Name))
	return card, nil
}

// UpdateCardRequest carries mutable card fields other than placement.
type UpdateCardRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
}

// UpdateCard changes a card's descriptive fields.
func (s *KanbanService) UpdateCard(claims *auth.Claims, id uuid.UUID, req *UpdateCardRequest) (*models.Card, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	card, err := s.repo.GetCard(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrCardNotFound)
	}

	before := *card
	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.AssigneeID != nil {
		card.AssigneeID = req.AssigneeID
	}
	if err := s.repo.UpdateCard(card); err != nil {
		return nil, fmt.Errorf("failed to update card: %w", err)
	}
	s.auditor.Record(claims, &card.CompanyID, "update", "card", card.ID, &before, card)
	return card, nil
}

// DeleteCard soft-deletes a card.
func (s *KanbanService) DeleteCard(claims *auth.Claims, id uuid.UUID) error {
	card, err := s.repo.GetCard(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrCardNotFound)
	}
	if err := s.repo.SoftDeleteCard(card.ID); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	s.auditor.Record(claims, &card.CompanyID, "delete", "card", card.ID, card, nil)
	return nil
}

// CreateWorkPolicyRequest carries an explicit work policy.
type CreateWorkPolicyRequest struct {
	ProjectID uuid.UUID             `json:"project_id" validate:"required"`
	Title     string                `json:"title" validate:"required,max=200"`
	Category  models.PolicyCategory `json:"category"`
	Order     int                   `json:"order"`
}

// CreateWorkPolicy adds a work policy to a kanban project.
func (s *KanbanService) CreateWorkPolicy(claims *auth.Claims, req *CreateWorkPolicyRequest) (*models.WorkPolicy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	category := req.Category
	if category == "" {
		category = models.PolicyCategoryWorkflow
	}
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("category", "unknown policy category")
	}
	project, err := s.requireProject(auth.ScopeFromClaims(claims), req.ProjectID)
	if err != nil {
		return nil, err
	}

	policy := &models.WorkPolicy{
		CompanyID: project.CompanyID,
		ProjectID: project.ID,
		Title:     req.Title,
		Category:  category,
		Order:     req.Order,
		IsActive:  true,
	}
	if err := s.repo.CreateWorkPolicy(policy); err != nil {
		return nil, fmt.Errorf("failed to create work policy: %w", err)
	}
	s.auditor.Record(claims, &project.CompanyID, "create", "work_policy", policy.ID, nil, policy)
	return policy, nil
}

// ListWorkPolicies returns a project's work policies in stable order.
func (s *KanbanService) ListWorkPolicies(claims *auth.Claims, projectID uuid.UUID) ([]models.WorkPolicy, error) {
	policies, err := s.repo.ListWorkPolicies(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work policies: %w", err)
	}
	return policies, nil
}

// UpdateWorkPolicyRequest carries mutable policy fields.
type UpdateWorkPolicyRequest struct {
	Title    *string                `json:"title,omitempty" validate:"omitempty,max=200"`
	Category *models.PolicyCategory `json:"category,omitempty"`
	Order    *int                   `json:"order,omitempty"`
	IsActive *bool                  `json:"is_active,omitempty"`
}

// UpdateWorkPolicy changes a work policy.
func (s *KanbanService) UpdateWorkPolicy(claims *auth.Claims, id uuid.UUID, req *UpdateWorkPolicyRequest) (*models.WorkPolicy, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	policy, err := s.repo.GetWorkPolicy(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.NewNotFoundError("work policy"))
	}

	before := *policy
	if req.Title != nil {
		policy.Title = *req.Title
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.NewValidationError("category", "unknown policy category")
		}
		policy.Category = *req.Category
	}
	if req.Order != nil {
		policy.Order = *req.Order
	}
	if req.IsActive != nil {
		policy.IsActive = *req.IsActive
	}
	if err := s.repo.UpdateWorkPolicy(policy); err != nil {
		return nil, fmt.Errorf("failed to update work policy: %w", err)
	}
	s.auditor.Record(claims, &policy.CompanyID, "update", "work_policy", policy.ID, &before, policy)
	return policy, nil
}

// DeleteWorkPolicy soft-deletes a work policy.
func (s *KanbanService) DeleteWorkPolicy(claims *auth.Claims, id uuid.UUID) error {
	policy, err := s.repo.GetWorkPolicy(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.NewNotFoundError("work policy"))
	}
	if err := s.repo.SoftDeleteWorkPolicy(policy.ID); err != nil {
		return fmt.Errorf("failed to delete work policy: %w", err)
	}
	s.auditor.Record(claims, &policy.CompanyID, "delete", "work_policy", policy.ID, policy, nil)
	return nil
}
