package repository

import (
	"errors"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrWIPLimitReached aborts a card move whose destination is full.
var ErrWIPLimitReached = errors.New("wip limit reached")

// KanbanRepository handles boards, columns, cards and work policies
type KanbanRepository struct {
	db *gorm.DB
}

// NewKanbanRepository creates a new kanban repository
func NewKanbanRepository(db *gorm.DB) *KanbanRepository {
	return &KanbanRepository{db: db}
}

// CreateBoard creates a new board
func (r *KanbanRepository) CreateBoard(board *models.Board) error {
	return r.db.Create(board).Error
}

// GetBoard retrieves a board with ordered columns within the caller's tenant
func (r *KanbanRepository) GetBoard(scope auth.TenantScope, id uuid.UUID) (*models.Board, error) {
	var board models.Board
	err := scope.Apply(r.db).
		Preload("Columns", func(db *gorm.DB) *gorm.DB { return db.Order("column_order, id") }).
		First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// ListBoards retrieves a project's boards
func (r *KanbanRepository) ListBoards(scope auth.TenantScope, projectID uuid.UUID) ([]models.Board, error) {
	var boards []models.Board
	err := scope.Apply(r.db).Where("project_id = ?", projectID).Order("name").Find(&boards).Error
	return boards, err
}

// SoftDeleteBoard soft-deletes a board with its columns and cards
func (r *KanbanRepository) SoftDeleteBoard(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Column{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, "id = ?", id).Error
	})
}

// CreateColumn creates a new column
func (r *KanbanRepository) CreateColumn(column *models.Column) error {
	return r.db.Create(column).Error
}

// GetColumn retrieves a column by ID within the caller's tenant
func (r *KanbanRepository) GetColumn(scope auth.TenantScope, id uuid.UUID) (*models.Column, error) {
	var column models.Column
	err := scope.Apply(r.db).First(&column, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

// UpdateColumn updates a column
func (r *KanbanRepository) UpdateColumn(column *models.Column) error {
	return r.db.Save(column).Error
}

// SoftDeleteColumn soft-deletes a column
func (r *KanbanRepository) SoftDeleteColumn(id uuid.UUID) error {
	return r.db.Delete(&models.Column{}, "id = ?", id).Error
}

// CountCards counts the open cards of a column.
func (r *KanbanRepository) CountCards(columnID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Card{}).Where("column_id = ?", columnID).Count(&count).Error
	return count, err
}

// CreateCard creates a new card
func (r *KanbanRepository) CreateCard(card *models.Card) error {
	return r.db.Create(card).Error
}

// GetCard retrieves a card by ID within the caller's tenant
func (r *KanbanRepository) GetCard(scope auth.TenantScope, id uuid.UUID) (*models.Card, error) {
	var card models.Card
	err := scope.Apply(r.db).First(&card, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// ListCards retrieves a column's cards by position
func (r *KanbanRepository) ListCards(scope auth.TenantScope, columnID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	err := scope.Apply(r.db).Where("column_id = ?", columnID).Order("position, id").Find(&cards).Error
	return cards, err
}

// MoveCard atomically re-homes a card, guarded by the card's lock version.
// The destination WIP re-check runs inside the same transaction so a
// concurrent move cannot slip past the limit.
func (r *KanbanRepository) MoveCard(card *models.Card, destColumnID uuid.UUID, position, expectedVersion int, wipLimit *int) (bool, error) {
	moved := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if wipLimit != nil {
			var count int64
			if err := tx.Model(&models.Card{}).
				Where("column_id = ? AND id <> ?", destColumnID, card.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(*wipLimit) {
				return ErrWIPLimitReached
			}
		}
		res := tx.Model(&models.Card{}).
			Where("id = ? AND lock_version = ?", card.ID, expectedVersion).
			Updates(map[string]interface{}{
				"column_id":    destColumnID,
				"position":     position,
				"lock_version": expectedVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected == 1
		return nil
	})
	if err == nil && moved {
		card.ColumnID = destColumnID
		card.Position = position
		card.LockVersion = expectedVersion + 1
	}
	return moved, err
}

// UpdateCard updates a card
func (r *KanbanRepository) UpdateCard(card *models.Card) error {
	return r.db.Save(card).Error
}

// SoftDeleteCard soft-deletes a card
func (r *KanbanRepository) SoftDeleteCard(id uuid.UUID) error {
	return r.db.Delete(&models.Card{}, "id = ?", id).Error
}

// CreateWorkPolicy creates a new work policy
func (r *KanbanRepository) CreateWorkPolicy(policy *models.WorkPolicy) error {
	return r.db.Create(policy).Error
}

// GetWorkPolicy retrieves a work policy by ID within the caller's tenant
func (r *KanbanRepository) GetWorkPolicy(scope auth.TenantScope, id uuid.UUID) (*models.WorkPolicy, error) {
	var policy models.WorkPolicy
	err := scope.Apply(r.db).First(&policy, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// ListWorkPolicies retrieves a project's policies in stable (order, id) order
func (r *KanbanRepository) ListWorkPolicies(scope auth.TenantScope, projectID uuid.UUID) ([]models.WorkPolicy, error) {
	var policies []models.WorkPolicy
	err := scope.Apply(r.db).Where("project_id = ?", projectID).
		Order("policy_order, id").Find(&policies).Error
	return policies, err
}

// UpdateWorkPolicy updates a work policy
func (r *KanbanRepository) UpdateWorkPolicy(policy *models.WorkPolicy) error {
	return r.db.Save(policy).Error
}

// SoftDeleteWorkPolicy soft-deletes a work policy
func (r *KanbanRepository) SoftDeleteWorkPolicy(id uuid.UUID) error {
	return r.db.Delete(&models.WorkPolicy{}, "id = ?", id).Error
}
