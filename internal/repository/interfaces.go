package repository

import (
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for company repository operations
type CompanyRepositoryInterface interface {
	Create(company *models.Company) error
	GetByID(id uuid.UUID) (*models.Company, error)
	GetByName(name string) (*models.Company, error)
	GetAll(limit, offset int) ([]models.Company, int64, error)
	Update(company *models.Company) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
}

// TokenRepositoryInterface defines the interface for auth token operations
type TokenRepositoryInterface interface {
	Issue(token *models.AuthToken) error
	GetLive(tokenValue string, purpose models.TokenPurpose) (*models.AuthToken, error)
	MarkUsed(id uuid.UUID) error
}

// PortfolioRepositoryInterface defines the interface for portfolio repository operations
type PortfolioRepositoryInterface interface {
	Create(portfolio *models.Portfolio) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Portfolio, error)
	List(scope auth.TenantScope, status models.WorkStatus, limit, offset int) ([]models.Portfolio, int64, error)
	Update(portfolio *models.Portfolio) error
	SoftDelete(id uuid.UUID) error
	CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error)
}

// ProgrammeRepositoryInterface defines the interface for programme repository operations
type ProgrammeRepositoryInterface interface {
	Create(programme *models.Programme) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Programme, error)
	GetWithProjects(scope auth.TenantScope, id uuid.UUID) (*models.Programme, error)
	List(scope auth.TenantScope, status models.WorkStatus, limit, offset int) ([]models.Programme, int64, error)
	Update(programme *models.Programme) error
	SoftDelete(id uuid.UUID) error
	CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Project, error)
	GetByIDIncludeDeleted(scope auth.TenantScope, id uuid.UUID) (*models.Project, error)
	GetByName(companyID uuid.UUID, name string) (*models.Project, error)
	List(scope auth.TenantScope, status models.WorkStatus, methodology models.Methodology, limit, offset int) ([]models.Project, int64, error)
	ListByProgramme(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Project, error)
	Update(project *models.Project) error
	SoftDelete(id uuid.UUID) error
	CountByStatus(scope auth.TenantScope) (map[models.WorkStatus]int64, error)
	CountByMethodology(scope auth.TenantScope) (map[models.Methodology]int64, error)
}

// DependencyRepositoryInterface defines the interface for dependency edge operations
type DependencyRepositoryInterface interface {
	Create(dep *models.Dependency) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Dependency, error)
	ListByScope(scope auth.TenantScope, depScope models.DependencyScope, programmeID *uuid.UUID) ([]models.Dependency, error)
	Delete(id uuid.UUID) error
}

// ResourceRepositoryInterface defines the interface for resource repository operations
type ResourceRepositoryInterface interface {
	Create(resource *models.Resource) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Resource, error)
	ListByProject(scope auth.TenantScope, projectID uuid.UUID) ([]models.Resource, error)
	ListByProgramme(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Resource, error)
	SumAllocationByName(scope auth.TenantScope, name string, excludeID uuid.UUID) (int, error)
	Update(resource *models.Resource) error
	SoftDelete(id uuid.UUID) error
}

// MilestoneRepositoryInterface defines the interface for milestone repository operations
type MilestoneRepositoryInterface interface {
	Create(milestone *models.Milestone) error
	GetByID(scope auth.TenantScope, id uuid.UUID) (*models.Milestone, error)
	ListByProject(scope auth.TenantScope, projectID uuid.UUID) ([]models.Milestone, error)
	Update(milestone *models.Milestone) error
	SoftDelete(id uuid.UUID) error
}

// ScrumRepositoryInterface defines the interface for scrum artifact operations
type ScrumRepositoryInterface interface {
	CreateIteration(iteration *models.Iteration) error
	GetIteration(scope auth.TenantScope, id uuid.UUID) (*models.Iteration, error)
	ListIterations(scope auth.TenantScope, projectID uuid.UUID) ([]models.Iteration, error)
	CountOverlappingActive(projectID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error)
	UpdateIteration(iteration *models.Iteration, expectedVersion int) (bool, error)
	SoftDeleteIteration(id uuid.UUID) error
	CreateBacklogItem(item *models.BacklogItem) error
	GetBacklogItem(scope auth.TenantScope, id uuid.UUID) (*models.BacklogItem, error)
	ListBacklog(scope auth.TenantScope, projectID uuid.UUID) ([]models.BacklogItem, error)
	OrderTaken(projectID uuid.UUID, order int, excludeID uuid.UUID) (bool, error)
	UpdateBacklogItem(item *models.BacklogItem) error
	SoftDeleteBacklogItem(id uuid.UUID) error
	CreateDailyUpdate(update *models.DailyUpdate) error
	GetDailyUpdateByKey(iterationID, authorID uuid.UUID, date time.Time) (*models.DailyUpdate, error)
	ListDailyUpdates(scope auth.TenantScope, iterationID uuid.UUID) ([]models.DailyUpdate, error)
	CreateDoDItems(items []models.DoDItem) error
	ListDoD(scope auth.TenantScope, projectID uuid.UUID, dodScope models.DoDScope) ([]models.DoDItem, error)
	CountDoD(projectID uuid.UUID) (int64, error)
	GetDoDItem(scope auth.TenantScope, id uuid.UUID) (*models.DoDItem, error)
	UpdateDoDItem(item *models.DoDItem) error
	SoftDeleteDoDItem(id uuid.UUID) error
}

// KanbanRepositoryInterface defines the interface for kanban artifact operations
type KanbanRepositoryInterface interface {
	CreateBoard(board *models.Board) error
	GetBoard(scope auth.TenantScope, id uuid.UUID) (*models.Board, error)
	ListBoards(scope auth.TenantScope, projectID uuid.UUID) ([]models.Board, error)
	SoftDeleteBoard(id uuid.UUID) error
	CreateColumn(column *models.Column) error
	GetColumn(scope auth.TenantScope, id uuid.UUID) (*models.Column, error)
	UpdateColumn(column *models.Column) error
	SoftDeleteColumn(id uuid.UUID) error
	CountCards(columnID uuid.UUID) (int64, error)
	CreateCard(card *models.Card) error
	GetCard(scope auth.TenantScope, id uuid.UUID) (*models.Card, error)
	ListCards(scope auth.TenantScope, columnID uuid.UUID) ([]models.Card, error)
	MoveCard(card *models.Card, destColumnID uuid.UUID, position, expectedVersion int, wipLimit *int) (bool, error)
	UpdateCard(card *models.Card) error
	SoftDeleteCard(id uuid.UUID) error
	CreateWorkPolicy(policy *models.WorkPolicy) error
	GetWorkPolicy(scope auth.TenantScope, id uuid.UUID) (*models.WorkPolicy, error)
	ListWorkPolicies(scope auth.TenantScope, projectID uuid.UUID) ([]models.WorkPolicy, error)
	UpdateWorkPolicy(policy *models.WorkPolicy) error
	SoftDeleteWorkPolicy(id uuid.UUID) error
}

// Prince2RepositoryInterface defines the interface for PRINCE2 artifact operations
type Prince2RepositoryInterface interface {
	CreateStage(stage *models.Stage) error
	GetStage(scope auth.TenantScope, id uuid.UUID) (*models.Stage, error)
	ListStages(scope auth.TenantScope, projectID uuid.UUID) ([]models.Stage, error)
	GetStageByOrder(projectID uuid.UUID, order int) (*models.Stage, error)
	UpdateStage(stage *models.Stage) error
	SoftDeleteStage(id uuid.UUID) error
	CreateProduct(product *models.Product) error
	GetProduct(scope auth.TenantScope, id uuid.UUID) (*models.Product, error)
	ListProducts(scope auth.TenantScope, projectID uuid.UUID) ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	SoftDeleteProduct(id uuid.UUID) error
}

// ProgrammeArtifactRepositoryInterface defines the interface for PMI/MSP/P2 artifact operations
type ProgrammeArtifactRepositoryInterface interface {
	CreateComponent(component *models.ProgramComponent) error
	GetComponent(scope auth.TenantScope, id uuid.UUID) (*models.ProgramComponent, error)
	ListComponents(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ProgramComponent, error)
	UpdateComponent(component *models.ProgramComponent) error
	SoftDeleteComponent(id uuid.UUID) error
	CreateTranche(tranche *models.Tranche) error
	GetTranche(scope auth.TenantScope, id uuid.UUID) (*models.Tranche, error)
	ListTranches(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Tranche, error)
	MaxTrancheSequence(programmeID uuid.UUID) (int, error)
	DeleteTrancheAndClose(tranche *models.Tranche) error
	CreateBenefit(benefit *models.Benefit) error
	GetBenefit(scope auth.TenantScope, id uuid.UUID) (*models.Benefit, error)
	ListBenefits(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Benefit, error)
	AppendRealization(entry *models.BenefitRealization) error
	SumRealized(benefitID uuid.UUID) (float64, error)
	CreateBlueprint(blueprint *models.Blueprint) error
	GetBlueprint(scope auth.TenantScope, id uuid.UUID) (*models.Blueprint, error)
	ListBlueprints(scope auth.TenantScope, programmeID uuid.UUID) ([]models.Blueprint, error)
	MaxBlueprintVersion(programmeID uuid.UUID) (int, error)
	ActivateBlueprint(blueprint *models.Blueprint) error
}

// SAFeRepositoryInterface defines the interface for SAFe artifact operations
type SAFeRepositoryInterface interface {
	CreateART(art *models.ART) error
	GetART(scope auth.TenantScope, id uuid.UUID) (*models.ART, error)
	ListARTs(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ART, error)
	SoftDeleteART(id uuid.UUID) error
	CreatePI(pi *models.ProgramIncrement) error
	GetPI(scope auth.TenantScope, id uuid.UUID) (*models.ProgramIncrement, error)
	ListPIs(scope auth.TenantScope, programmeID uuid.UUID) ([]models.ProgramIncrement, error)
	UpdatePI(pi *models.ProgramIncrement) error
	SoftDeletePI(id uuid.UUID) error
	CreateObjective(objective *models.PIObjective) error
	GetObjective(scope auth.TenantScope, id uuid.UUID) (*models.PIObjective, error)
	UpdateObjective(objective *models.PIObjective) error
	AppendSyncMeeting(meeting *models.ARTSyncMeeting) error
	ListSyncMeetings(scope auth.TenantScope, artID uuid.UUID) ([]models.ARTSyncMeeting, error)
}

// LSSRepositoryInterface defines the interface for Lean Six Sigma artifact operations
type LSSRepositoryInterface interface {
	CreateDMAICRecord(record *models.DMAICRecord) error
	GetDMAICRecord(scope auth.TenantScope, id uuid.UUID) (*models.DMAICRecord, error)
	GetDMAICByPhase(projectID uuid.UUID, phase models.DMAICPhase) (*models.DMAICRecord, error)
	ListDMAICRecords(scope auth.TenantScope, projectID uuid.UUID) ([]models.DMAICRecord, error)
	UpdateDMAICRecord(record *models.DMAICRecord) error
	UpsertMetric(metric *models.SixSigmaMetric) error
	ListMetrics(scope auth.TenantScope, projectID uuid.UUID) ([]models.SixSigmaMetric, error)
	CreateHypothesisTest(test *models.HypothesisTest) error
	ListHypothesisTests(scope auth.TenantScope, projectID uuid.UUID) ([]models.HypothesisTest, error)
	CreateDoE(doe *models.DoExperiment) error
	ListDoE(scope auth.TenantScope, projectID uuid.UUID) ([]models.DoExperiment, error)
	CreateSPCChart(chart *models.SPCChart) error
	ListSPCCharts(scope auth.TenantScope, projectID uuid.UUID) ([]models.SPCChart, error)
	CreateControlPlan(plan *models.ControlPlan) error
	ListControlPlans(scope auth.TenantScope, projectID uuid.UUID) ([]models.ControlPlan, error)
}

// HybridRepositoryInterface defines the interface for hybrid artifact operations
type HybridRepositoryInterface interface {
	CreateConfig(config *models.HybridConfig) error
	GetConfigByProject(scope auth.TenantScope, projectID uuid.UUID) (*models.HybridConfig, error)
	UpdateConfig(config *models.HybridConfig) error
	CreateArtifact(artifact *models.HybridArtifact) error
	GetArtifact(scope auth.TenantScope, id uuid.UUID) (*models.HybridArtifact, error)
	ListArtifacts(scope auth.TenantScope, projectID uuid.UUID) ([]models.HybridArtifact, error)
	UpdateArtifact(artifact *models.HybridArtifact) error
	SoftDeleteArtifact(id uuid.UUID) error
}

// AuditRepositoryInterface defines the interface for audit log operations
type AuditRepositoryInterface interface {
	Append(entry *models.AuditLog) error
	List(scope auth.TenantScope, entityType string, limit, offset int) ([]models.AuditLog, int64, error)
}
