package testutils

import (
	"time"

	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids clashing with the name uniqueness constraint
		Name:         "test-company-" + id.String()[:8],
		Description:  "A test company for testing purposes",
		IsSubscribed: true,
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: nil,
		// Unique email using part of UUID to avoid conflicts
		Email:        "user-" + id.String()[:8] + "@test.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Jane",
		LastName:     "Doe",
		Role:         models.RoleMember,
		Theme:        "light",
		IsVerified:   true,
		IsActive:     true,
	}
}

// WithCompany sets the company for the user
func (f *UserFactory) WithCompany(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = &companyID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(companyID uuid.UUID, role models.UserRole) *models.User {
	user := f.WithCompany(companyID)
	user.Role = role
	return user
}

// SuperAdmin creates a verified cross-tenant super admin
func (f *UserFactory) SuperAdmin() *models.User {
	user := f.Create()
	user.Role = models.RoleSuperAdmin
	return user
}

// PortfolioFactory provides methods to create test Portfolio data
type PortfolioFactory struct{}

// NewPortfolioFactory creates a new PortfolioFactory
func NewPortfolioFactory() *PortfolioFactory {
	return &PortfolioFactory{}
}

// Create creates a test Portfolio owned by the given user
func (f *PortfolioFactory) Create(companyID uuid.UUID, ownerID uuid.UUID) *models.Portfolio {
	return &models.Portfolio{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   &companyID,
		OwnerID:     ownerID,
		Name:        "Test Portfolio",
		Description: "A test portfolio for testing purposes",
		Status:      models.WorkStatusActive,
	}
}

// Global creates a portfolio with no company (super admin owned)
func (f *PortfolioFactory) Global(ownerID uuid.UUID) *models.Portfolio {
	portfolio := f.Create(uuid.New(), ownerID)
	portfolio.CompanyID = nil
	return portfolio
}

// ProgrammeFactory provides methods to create test Programme data
type ProgrammeFactory struct{}

// NewProgrammeFactory creates a new ProgrammeFactory
func NewProgrammeFactory() *ProgrammeFactory {
	return &ProgrammeFactory{}
}

// Create creates a test Programme with default values
func (f *ProgrammeFactory) Create(companyID uuid.UUID, managerID uuid.UUID) *models.Programme {
	start := time.Now().Truncate(24 * time.Hour)
	end := start.AddDate(0, 6, 0)
	return &models.Programme{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ManagerID:   managerID,
		Name:        "Test Programme",
		Description: "A test programme for testing purposes",
		Framework:   models.FrameworkGeneric,
		Status:      models.WorkStatusActive,
		StartDate:   &start,
		EndDate:     &end,
	}
}

// WithFramework sets a custom framework for the programme
func (f *ProgrammeFactory) WithFramework(companyID, managerID uuid.UUID, framework models.Framework) *models.Programme {
	programme := f.Create(companyID, managerID)
	programme.Framework = framework
	return programme
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create(companyID uuid.UUID, methodology models.Methodology) *models.Project {
	start := time.Now().Truncate(24 * time.Hour)
	end := start.AddDate(0, 3, 0)
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		Name:        "Test Project",
		Description: "A test project for testing purposes",
		Methodology: methodology,
		Status:      models.WorkStatusActive,
		StartDate:   &start,
		EndDate:     &end,
	}
}

// InProgramme attaches the project to a programme
func (f *ProjectFactory) InProgramme(companyID uuid.UUID, methodology models.Methodology, programmeID uuid.UUID) *models.Project {
	project := f.Create(companyID, methodology)
	project.ProgrammeID = &programmeID
	return project
}

// InPortfolio attaches the project to a portfolio
func (f *ProjectFactory) InPortfolio(companyID uuid.UUID, methodology models.Methodology, portfolioID uuid.UUID) *models.Project {
	project := f.Create(companyID, methodology)
	project.PortfolioID = &portfolioID
	return project
}

// IterationFactory provides methods to create test Iteration data
type IterationFactory struct{}

// NewIterationFactory creates a new IterationFactory
func NewIterationFactory() *IterationFactory {
	return &IterationFactory{}
}

// Create creates a test Iteration starting today with a two week span
func (f *IterationFactory) Create(companyID, projectID uuid.UUID) *models.Iteration {
	start := time.Now().Truncate(24 * time.Hour)
	return &models.Iteration{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		ProjectID: projectID,
		Name:      "Sprint 1",
		Goal:      "Deliver the first increment",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Status:    models.IterationStatusPlanned,
	}
}

// WithDates sets custom start and end dates for the iteration
func (f *IterationFactory) WithDates(companyID, projectID uuid.UUID, start, end time.Time) *models.Iteration {
	iteration := f.Create(companyID, projectID)
	iteration.StartDate = start
	iteration.EndDate = end
	return iteration
}

// BacklogItemFactory provides methods to create test BacklogItem data
type BacklogItemFactory struct{}

// NewBacklogItemFactory creates a new BacklogItemFactory
func NewBacklogItemFactory() *BacklogItemFactory {
	return &BacklogItemFactory{}
}

// Create creates a test BacklogItem at the given order
func (f *BacklogItemFactory) Create(companyID, projectID uuid.UUID, order int) *models.BacklogItem {
	return &models.BacklogItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ProjectID:   projectID,
		Title:       "Test Backlog Item",
		Description: "A test backlog item for testing purposes",
		Priority:    models.PriorityShould,
		StoryPoints: 3,
		Order:       order,
	}
}

// BoardFactory provides methods to create test Board data
type BoardFactory struct{}

// NewBoardFactory creates a new BoardFactory
func NewBoardFactory() *BoardFactory {
	return &BoardFactory{}
}

// Create creates a test Board with default values
func (f *BoardFactory) Create(companyID, projectID uuid.UUID) *models.Board {
	return &models.Board{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ProjectID:   projectID,
		Name:        "Test Board",
		Description: "A test board for testing purposes",
	}
}

// ColumnFactory provides methods to create test Column data
type ColumnFactory struct{}

// NewColumnFactory creates a new ColumnFactory
func NewColumnFactory() *ColumnFactory {
	return &ColumnFactory{}
}

// Create creates a test Column with no WIP limit
func (f *ColumnFactory) Create(companyID, boardID uuid.UUID, order int) *models.Column {
	return &models.Column{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		BoardID:   boardID,
		Name:      "Test Column",
		Order:     order,
		CountsWIP: true,
	}
}

// WithWIPLimit sets a WIP limit on the column
func (f *ColumnFactory) WithWIPLimit(companyID, boardID uuid.UUID, order, limit int) *models.Column {
	column := f.Create(companyID, boardID, order)
	column.WIPLimit = &limit
	return column
}

// CardFactory provides methods to create test Card data
type CardFactory struct{}

// NewCardFactory creates a new CardFactory
func NewCardFactory() *CardFactory {
	return &CardFactory{}
}

// Create creates a test Card in the given column
func (f *CardFactory) Create(companyID, boardID, columnID uuid.UUID) *models.Card {
	return &models.Card{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		BoardID:     boardID,
		ColumnID:    columnID,
		Title:       "Test Card",
		Description: "A test card for testing purposes",
		Position:    0,
	}
}

// StageFactory provides methods to create test Stage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a test Stage at the given order
func (f *StageFactory) Create(companyID, projectID uuid.UUID, order int) *models.Stage {
	return &models.Stage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: companyID,
		ProjectID: projectID,
		Name:      "Test Stage",
		Order:     order,
		Status:    models.StageStatusPlanned,
	}
}

// Completed creates a gate-approved completed stage
func (f *StageFactory) Completed(companyID, projectID uuid.UUID, order int) *models.Stage {
	stage := f.Create(companyID, projectID, order)
	now := time.Now()
	stage.Status = models.StageStatusCompleted
	stage.GateApproved = true
	stage.ApprovedAt = &now
	return stage
}

// MilestoneFactory provides methods to create test Milestone data
type MilestoneFactory struct{}

// NewMilestoneFactory creates a new MilestoneFactory
func NewMilestoneFactory() *MilestoneFactory {
	return &MilestoneFactory{}
}

// Create creates a test Milestone due in one month
func (f *MilestoneFactory) Create(companyID, projectID uuid.UUID) *models.Milestone {
	return &models.Milestone{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ProjectID:   projectID,
		Name:        "Test Milestone",
		Description: "A test milestone for testing purposes",
		DueDate:     time.Now().AddDate(0, 1, 0),
		Status:      models.MilestoneStatusPending,
	}
}

// ResourceFactory provides methods to create test Resource data
type ResourceFactory struct{}

// NewResourceFactory creates a new ResourceFactory
func NewResourceFactory() *ResourceFactory {
	return &ResourceFactory{}
}

// Create creates a test person Resource allocated to a project
func (f *ResourceFactory) Create(companyID, projectID uuid.UUID, allocation int) *models.Resource {
	return &models.Resource{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:            companyID,
		ProjectID:            &projectID,
		Name:                 "Test Resource",
		Type:                 models.ResourceTypePerson,
		AllocationPercentage: allocation,
		SharedAcrossProjects: true,
	}
}

// TrancheFactory provides methods to create test Tranche data
type TrancheFactory struct{}

// NewTrancheFactory creates a new TrancheFactory
func NewTrancheFactory() *TrancheFactory {
	return &TrancheFactory{}
}

// Create creates a test Tranche at the given sequence
func (f *TrancheFactory) Create(companyID, programmeID uuid.UUID, sequence int) *models.Tranche {
	return &models.Tranche{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ProgrammeID: programmeID,
		Name:        "Test Tranche",
		Sequence:    sequence,
	}
}

// BenefitFactory provides methods to create test Benefit data
type BenefitFactory struct{}

// NewBenefitFactory creates a new BenefitFactory
func NewBenefitFactory() *BenefitFactory {
	return &BenefitFactory{}
}

// Create creates a test Benefit with a default target
func (f *BenefitFactory) Create(companyID, programmeID uuid.UUID) *models.Benefit {
	return &models.Benefit{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID:   companyID,
		ProgrammeID: programmeID,
		Name:        "Test Benefit",
		TargetValue: 100,
		Unit:        "percent",
	}
}
