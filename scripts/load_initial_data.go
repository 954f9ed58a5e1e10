package main

import (
	"fmt"
	"log"
	"os"
	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/config"
	"projextpal-backend/internal/database"
	"projextpal-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	IsSubscribed bool   `yaml:"is_subscribed"`
}

type UserData struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Role        string `yaml:"role"`
	CompanyName string `yaml:"company_name,omitempty"`
}

type PortfolioData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CompanyName string `yaml:"company_name"`
	OwnerEmail  string `yaml:"owner_email"`
}

type ProgrammeData struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	CompanyName  string `yaml:"company_name"`
	ManagerEmail string `yaml:"manager_email"`
	Framework    string `yaml:"framework"`
}

type ProjectData struct {
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	CompanyName   string `yaml:"company_name"`
	Methodology   string `yaml:"methodology"`
	ProgrammeName string `yaml:"programme_name,omitempty"`
	PortfolioName string `yaml:"portfolio_name,omitempty"`
}

type SeedFile struct {
	Companies  []CompanyData   `yaml:"companies"`
	Users      []UserData      `yaml:"users"`
	Portfolios []PortfolioData `yaml:"portfolios"`
	Programmes []ProgrammeData `yaml:"programmes"`
	Projects   []ProjectData   `yaml:"projects"`
}

func main() {
	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read seed file: %v", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	if err := load(db, &seed); err != nil {
		log.Fatalf("load seed data: %v", err)
	}
	log.Printf("seeded %d companies, %d users, %d portfolios, %d programmes, %d projects",
		len(seed.Companies), len(seed.Users), len(seed.Portfolios), len(seed.Programmes), len(seed.Projects))
}

func load(db *gorm.DB, seed *SeedFile) error {
	companies := map[string]*models.Company{}
	users := map[string]*models.User{}
	programmes := map[string]*models.Programme{}
	portfolios := map[string]*models.Portfolio{}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range seed.Companies {
			company := &models.Company{Name: c.Name, Description: c.Description, IsSubscribed: c.IsSubscribed}
			if err := tx.Where("name = ?", c.Name).FirstOrCreate(company).Error; err != nil {
				return fmt.Errorf("company %s: %w", c.Name, err)
			}
			companies[c.Name] = company
		}

		for _, u := range seed.Users {
			hash, err := auth.HashPassword(u.Password)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			user := &models.User{
				Email:        u.Email,
				PasswordHash: hash,
				FirstName:    u.FirstName,
				LastName:     u.LastName,
				Role:         models.UserRole(u.Role),
				IsVerified:   true,
				IsActive:     true,
			}
			if company, ok := companies[u.CompanyName]; ok {
				user.CompanyID = &company.ID
			}
			if err := tx.Where("email = ?", u.Email).FirstOrCreate(user).Error; err != nil {
				return fmt.Errorf("user %s: %w", u.Email, err)
			}
			users[u.Email] = user
		}

		for _, p := range seed.Portfolios {
			company, ok := companies[p.CompanyName]
			if !ok {
				return fmt.Errorf("portfolio %s: unknown company %s", p.Name, p.CompanyName)
			}
			owner, ok := users[p.OwnerEmail]
			if !ok {
				return fmt.Errorf("portfolio %s: unknown owner %s", p.Name, p.OwnerEmail)
			}
			portfolio := &models.Portfolio{
				CompanyID:   &company.ID,
				OwnerID:     owner.ID,
				Name:        p.Name,
				Description: p.Description,
				Status:      models.WorkStatusActive,
			}
			if err := tx.Where("name = ? AND company_id = ?", p.Name, company.ID).FirstOrCreate(portfolio).Error; err != nil {
				return fmt.Errorf("portfolio %s: %w", p.Name, err)
			}
			portfolios[p.Name] = portfolio
		}

		for _, p := range seed.Programmes {
			company, ok := companies[p.CompanyName]
			if !ok {
				return fmt.Errorf("programme %s: unknown company %s", p.Name, p.CompanyName)
			}
			manager, ok := users[p.ManagerEmail]
			if !ok {
				return fmt.Errorf("programme %s: unknown manager %s", p.Name, p.ManagerEmail)
			}
			framework := models.Framework(p.Framework)
			if framework == "" {
				framework = models.FrameworkGeneric
			}
			programme := &models.Programme{
				CompanyID:   company.ID,
				ManagerID:   manager.ID,
				Name:        p.Name,
				Description: p.Description,
				Framework:   framework,
				Status:      models.WorkStatusActive,
			}
			if err := tx.Where("name = ? AND company_id = ?", p.Name, company.ID).FirstOrCreate(programme).Error; err != nil {
				return fmt.Errorf("programme %s: %w", p.Name, err)
			}
			programmes[p.Name] = programme
		}

		for _, p := range seed.Projects {
			company, ok := companies[p.CompanyName]
			if !ok {
				return fmt.Errorf("project %s: unknown company %s", p.Name, p.CompanyName)
			}
			project := &models.Project{
				CompanyID:   company.ID,
				Name:        p.Name,
				Description: p.Description,
				Methodology: models.Methodology(p.Methodology),
				Status:      models.WorkStatusActive,
			}
			if programme, ok := programmes[p.ProgrammeName]; ok {
				project.ProgrammeID = &programme.ID
			}
			if portfolio, ok := portfolios[p.PortfolioName]; ok {
				project.PortfolioID = &portfolio.ID
			}
			if err := tx.Where("name = ? AND company_id = ?", p.Name, company.ID).FirstOrCreate(project).Error; err != nil {
				return fmt.Errorf("project %s: %w", p.Name, err)
			}
		}
		return nil
	})
}
