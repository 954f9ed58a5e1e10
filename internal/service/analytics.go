package service

import (
	"context"
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/cache"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/google/uuid"
)

// Summary aggregates tenant-wide counts by status and methodology.
type Summary struct {
	Portfolios  map[models.WorkStatus]int64  `json:"portfolios"`
	Programmes  map[models.WorkStatus]int64  `json:"programmes"`
	Projects    map[models.WorkStatus]int64  `json:"projects"`
	Methodology map[models.Methodology]int64 `json:"methodology_distribution"`
}

// ProgrammeRollup aggregates the cross-project view of one programme.
type ProgrammeRollup struct {
	ProgrammeID     uuid.UUID                  `json:"programme_id"`
	ProjectCount    int                        `json:"project_count"`
	StatusCounts    map[models.WorkStatus]int  `json:"status_counts"`
	DependencyCount int                        `json:"dependency_count"`
	Resources       []models.Resource          `json:"resources"`
	Methodologies   map[models.Methodology]int `json:"methodologies"`
}

// AnalyticsService computes read-only aggregations across the work
// hierarchy. Summaries are cached briefly; reads degrade to the database
// when the cache is off.
type AnalyticsService struct {
	projects     repository.ProjectRepositoryInterface
	portfolios   repository.PortfolioRepositoryInterface
	programmes   repository.ProgrammeRepositoryInterface
	dependencies repository.DependencyRepositoryInterface
	resources    repository.ResourceRepositoryInterface
	scrum        repository.ScrumRepositoryInterface
	kanban       repository.KanbanRepositoryInterface
	lss          repository.LSSRepositoryInterface
	cache        *cache.Client
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	projects repository.ProjectRepositoryInterface,
	portfolios repository.PortfolioRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	dependencies repository.DependencyRepositoryInterface,
	resources repository.ResourceRepositoryInterface,
	scrum repository.ScrumRepositoryInterface,
	kanban repository.KanbanRepositoryInterface,
	lss repository.LSSRepositoryInterface,
	cacheClient *cache.Client,
) *AnalyticsService {
	return &AnalyticsService{
		projects:     projects,
		portfolios:   portfolios,
		programmes:   programmes,
		dependencies: dependencies,
		resources:    resources,
		scrum:        scrum,
		kanban:       kanban,
		lss:          lss,
		cache:        cacheClient,
	}
}

func summaryCacheKey(scope auth.TenantScope) string {
	if scope.SuperAdmin {
		return "analytics:summary:global"
	}
	if scope.CompanyID == nil {
		return "analytics:summary:none"
	}
	return "analytics:summary:" + scope.CompanyID.String()
}

// GetSummary returns tenant-wide counts, served from cache when fresh.
func (s *AnalyticsService) GetSummary(ctx context.Context, claims *auth.Claims) (*Summary, error) {
	scope := auth.ScopeFromClaims(claims)
	var cached Summary
	if s.cache.GetJSON(ctx, summaryCacheKey(scope), &cached) {
		return &cached, nil
	}
	summary, err := s.computeSummary(scope)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, summaryCacheKey(scope), summary)
	return summary, nil
}

// Recalculate recomputes the tenant summary and refreshes the cache. Used
// by the ops CLI after bulk imports.
func (s *AnalyticsService) Recalculate(ctx context.Context, claims *auth.Claims) (*Summary, error) {
	scope := auth.ScopeFromClaims(claims)
	summary, err := s.computeSummary(scope)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, summaryCacheKey(scope), summary)
	return summary, nil
}

func (s *AnalyticsService) computeSummary(scope auth.TenantScope) (*Summary, error) {
	portfolios, err := s.portfolios.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count portfolios: %w", err)
	}
	programmes, err := s.programmes.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count programmes: %w", err)
	}
	projects, err := s.projects.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	methodology, err := s.projects.CountByMethodology(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count methodologies: %w", err)
	}
	return &Summary{
		Portfolios:  portfolios,
		Programmes:  programmes,
		Projects:    projects,
		Methodology: methodology,
	}, nil
}

// GetProgrammeRollup aggregates projects, dependencies and resources of one
// programme.
func (s *AnalyticsService) GetProgrammeRollup(claims *auth.Claims, programmeID uuid.UUID) (*ProgrammeRollup, error) {
	scope := auth.ScopeFromClaims(claims)
	programme, err := s.programmes.GetByID(scope, programmeID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}

	projects, err := s.projects.ListByProgramme(scope, programme.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programme projects: %w", err)
	}
	deps, err := s.dependencies.ListByScope(scope, models.DependencyScopeProgramme, &programme.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programme dependencies: %w", err)
	}
	resources, err := s.resources.ListByProgramme(scope, programme.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list programme resources: %w", err)
	}

	rollup := &ProgrammeRollup{
		ProgrammeID:     programme.ID,
		ProjectCount:    len(projects),
		StatusCounts:    map[models.WorkStatus]int{},
		DependencyCount: len(deps),
		Resources:       resources,
		Methodologies:   map[models.Methodology]int{},
	}
	for _, p := range projects {
		rollup.StatusCounts[p.Status]++
		rollup.Methodologies[p.Methodology]++
	}
	return rollup, nil
}

// MethodologyMetrics computes the methodology-specific health view of one
// project. Methodologies without a defined metric set return a
// not-implemented error.
func (s *AnalyticsService) MethodologyMetrics(claims *auth.Claims, projectID uuid.UUID) (map[string]interface{}, error) {
	scope := auth.ScopeFromClaims(claims)
	project, err := s.projects.GetByID(scope, projectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}

	switch project.Methodology {
	case models.MethodologyScrum, models.MethodologyAgile:
		return s.scrumMetrics(scope, project)
	case models.MethodologyKanban:
		return s.kanbanMetrics(scope, project)
	case models.MethodologyLSSGreen, models.MethodologyLSSBlack:
		return s.lssMetrics(scope, project)
	default:
		return nil, apperrors.NewNotImplementedError(
			fmt.Sprintf("metrics for %s projects", project.Methodology))
	}
}

func (s *AnalyticsService) scrumMetrics(scope auth.TenantScope, project *models.Project) (map[string]interface{}, error) {
	iterations, err := s.scrum.ListIterations(scope, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list iterations: %w", err)
	}
	backlog, err := s.scrum.ListBacklog(scope, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backlog: %w", err)
	}

	var done, totalPoints, donePoints int
	for _, item := range backlog {
		totalPoints += item.StoryPoints
		if item.IsDone {
			done++
			donePoints += item.StoryPoints
		}
	}
	var completedIterations int
	for _, it := range iterations {
		if it.Status == models.IterationStatusCompleted {
			completedIterations++
		}
	}
	velocity := 0.0
	if completedIterations > 0 {
		velocity = float64(donePoints) / float64(completedIterations)
	}
	return map[string]interface{}{
		"methodology":          project.Methodology,
		"iteration_count":      len(iterations),
		"completed_iterations": completedIterations,
		"backlog_size":         len(backlog),
		"backlog_done":         done,
		"story_points_total":   totalPoints,
		"story_points_done":    donePoints,
		"velocity":             velocity,
	}, nil
}

func (s *AnalyticsService) kanbanMetrics(scope auth.TenantScope, project *models.Project) (map[string]interface{}, error) {
	boards, err := s.kanban.ListBoards(scope, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}

	type columnLoad struct {
		Column   string `json:"column"`
		Cards    int64  `json:"cards"`
		WIPLimit *int   `json:"wip_limit,omitempty"`
	}
	var loads []columnLoad
	var totalCards int64
	for _, board := range boards {
		full, err := s.kanban.GetBoard(scope, board.ID)
		if err != nil {
			continue
		}
		for _, column := range full.Columns {
			count, err := s.kanban.CountCards(column.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to count cards: %w", err)
			}
			totalCards += count
			loads = append(loads, columnLoad{Column: column.Name, Cards: count, WIPLimit: column.WIPLimit})
		}
	}
	return map[string]interface{}{
		"methodology":  project.Methodology,
		"board_count":  len(boards),
		"card_count":   totalCards,
		"column_loads": loads,
	}, nil
}

func (s *AnalyticsService) lssMetrics(scope auth.TenantScope, project *models.Project) (map[string]interface{}, error) {
	records, err := s.lss.ListDMAICRecords(scope, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list DMAIC records: %w", err)
	}
	metrics, err := s.lss.ListMetrics(scope, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}

	var completed int
	currentPhase := ""
	for _, record := range records {
		if record.IsComplete {
			completed++
		} else if currentPhase == "" {
			currentPhase = string(record.Phase)
		}
	}
	return map[string]interface{}{
		"methodology":      project.Methodology,
		"phases_opened":    len(records),
		"phases_completed": completed,
		"current_phase":    currentPhase,
		"metric_count":     len(metrics),
	}, nil
}
