package service

import (
	"context"

	"projextpal-backend/internal/cache"
	"projextpal-backend/internal/database/models"
)

// MethodologyInfo describes one catalog entry for API consumers.
type MethodologyInfo struct {
	Key         models.Methodology `json:"key"`
	Name        string             `json:"name"`
	Kind        models.ParentKind  `json:"kind"`
	Description string             `json:"description"`
}

// catalogEntries is the closed methodology catalog. Kind separates
// project-level methodologies from programme frameworks.
var catalogEntries = []MethodologyInfo{
	{models.MethodologyWaterfall, "Waterfall", models.ParentKindProject, "Sequential phase delivery with dated milestones."},
	{models.MethodologyAgile, "Agile", models.ParentKindProject, "Generic iterative delivery; admits scrum artifacts."},
	{models.MethodologyScrum, "Scrum", models.ParentKindProject, "Time-boxed iterations, backlog, daily updates, Definition of Done."},
	{models.MethodologyKanban, "Kanban", models.ParentKindProject, "Flow-based boards with WIP limits and explicit work policies."},
	{models.MethodologyPrince2, "PRINCE2", models.ParentKindProject, "Stage-gated delivery with product quality criteria."},
	{models.MethodologyPMI, "PMI Program", models.ParentKindProgramme, "Program components with governance and dependency mapping."},
	{models.MethodologyMSP, "MSP", models.ParentKindProgramme, "Tranches, benefits and benefit realization tracking."},
	{models.MethodologyP2Programme, "PRINCE2 Programme", models.ParentKindProgramme, "Versioned blueprints of the target operating model."},
	{models.MethodologySAFe, "SAFe", models.ParentKindProgramme, "Agile Release Trains, Program Increments and PI objectives."},
	{models.MethodologyLSSGreen, "Lean Six Sigma (Green Belt)", models.ParentKindProject, "DMAIC phase records and basic metrics."},
	{models.MethodologyLSSBlack, "Lean Six Sigma (Black Belt)", models.ParentKindProject, "DMAIC plus hypothesis tests, DoE, SPC charts and control plans."},
	{models.MethodologyHybrid, "Hybrid", models.ParentKindProject, "A declared mix of one primary and secondary methodologies."},
}

// CatalogService serves the closed enumerations backing project and
// programme creation. Reads go through the advisory cache when enabled.
type CatalogService struct {
	cache *cache.Client
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cacheClient *cache.Client) *CatalogService {
	return &CatalogService{cache: cacheClient}
}

// ListMethodologies returns the methodology catalog in stable order.
func (s *CatalogService) ListMethodologies(ctx context.Context) []MethodologyInfo {
	var cached []MethodologyInfo
	if s.cache.GetJSON(ctx, "catalog:methodologies", &cached) {
		return cached
	}
	out := make([]MethodologyInfo, len(catalogEntries))
	copy(out, catalogEntries)
	s.cache.SetJSON(ctx, "catalog:methodologies", out)
	return out
}

// GetMethodology returns one catalog entry by key.
func (s *CatalogService) GetMethodology(key models.Methodology) (*MethodologyInfo, bool) {
	for i := range catalogEntries {
		if catalogEntries[i].Key == key {
			entry := catalogEntries[i]
			return &entry, true
		}
	}
	return nil, false
}

// ListStatuses returns the shared work status values.
func (s *CatalogService) ListStatuses() []models.WorkStatus {
	return []models.WorkStatus{
		models.WorkStatusDraft,
		models.WorkStatusActive,
		models.WorkStatusCompleted,
		models.WorkStatusCancelled,
		models.WorkStatusArchived,
	}
}

// ListPriorities returns MoSCoW priorities in rank order.
func (s *CatalogService) ListPriorities() []models.Priority {
	return models.AllPriorities
}

// ListDependencyTypes returns the precedence relation kinds.
func (s *CatalogService) ListDependencyTypes() []models.DependencyType {
	return models.AllDependencyTypes
}

// ListFrameworks returns the programme governance frameworks.
func (s *CatalogService) ListFrameworks() []models.Framework {
	return models.AllFrameworks
}

// ListDMAICPhases returns the DMAIC sequence in order.
func (s *CatalogService) ListDMAICPhases() []models.DMAICPhase {
	return models.DMAICOrder
}
