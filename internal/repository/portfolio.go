package repository

import (
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortfolioRepository handles database operations for portfolios
type PortfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create creates a new portfolio
func (r *PortfolioRepository) Create(portfolio *models.Portfolio) error {
	return r.db.Create(portfolio).Error
}

// GetByID retrieves a portfolio by ID within the caller's tenant
func (r *PortfolioRepository) GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := scope.Apply(r.db).First(&portfolio, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// List retrieves portfolios for the tenant, optionally filtered by status
func (r *PortfolioRepository) List(scope auth.TenantScope, status models.WorkStatus, limit, offset int) ([]models.Portfolio, int64, error) {
	var portfolios []models.Portfolio
	var total int64

	query := scope.Apply(r.db.Model(&models.Portfolio{}))
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&portfolios).Error
	if err != nil {
		return nil, 0, err
	}
	return portfolios, total, nil
}

// Update updates a portfolio
func (r *PortfolioRepository) Update(portfolio *models.Portfolio) error {
	return r.db.Save(portfolio).Error
}

// SoftDelete soft-deletes a portfolio
func (r *PortfolioRepository) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Portfolio{}, "id = ?", id).Error
}

// CountByStatus returns portfolio counts per status for the tenant
func (r *PortfolioRepository) CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error) {
	return countByStatus(scope.Apply(r.db.Model(&models.Portfolio{})))
}

type statusCount struct {
	Status models.WorkStatus
	Count  int64
}

func countByStatus(query *gorm.DB) (map[models.WorkStatus]int64, error) {
	var rows []statusCount
	if err := query.Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.WorkStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
