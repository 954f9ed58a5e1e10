package repository

import (
	"strings"

	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies (tenants)
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company. Names are stored lower-cased.
func (r *CompanyRepository) Create(company *models.Company) error {
	company.Name = strings.ToLower(strings.TrimSpace(company.Name))
	return r.db.Create(company).Error
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByName retrieves a company by its canonical (lower-cased) name
func (r *CompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "name = ?", strings.ToLower(strings.TrimSpace(name))).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAll retrieves all companies with pagination
func (r *CompanyRepository) GetAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

// Update updates a company
func (r *CompanyRepository) Update(company *models.Company) error {
	company.Name = strings.ToLower(strings.TrimSpace(company.Name))
	return r.db.Save(company).Error
}
