package models

// Methodology is a delivery approach from the closed catalog. Every project
// carries exactly one primary methodology; hybrid projects add secondaries.
type Methodology string

const (
	MethodologyWaterfall   Methodology = "waterfall"
	MethodologyAgile       Methodology = "agile"
	MethodologyScrum       Methodology = "scrum"
	MethodologyKanban      Methodology = "kanban"
	MethodologyPrince2     Methodology = "prince2"
	MethodologyPMI         Methodology = "pmi"
	MethodologyMSP         Methodology = "msp"
	MethodologyP2Programme Methodology = "p2-programme"
	MethodologySAFe        Methodology = "safe"
	MethodologyLSSGreen    Methodology = "lss-green"
	MethodologyLSSBlack    Methodology = "lss-black"
	MethodologyHybrid      Methodology = "hybrid"
)

// AllMethodologies lists the catalog in a stable order for catalog reads.
var AllMethodologies = []Methodology{
	MethodologyWaterfall,
	MethodologyAgile,
	MethodologyScrum,
	MethodologyKanban,
	MethodologyPrince2,
	MethodologyPMI,
	MethodologyMSP,
	MethodologyP2Programme,
	MethodologySAFe,
	MethodologyLSSGreen,
	MethodologyLSSBlack,
	MethodologyHybrid,
}

// IsValid checks if the Methodology is part of the catalog
func (m Methodology) IsValid() bool {
	for _, v := range AllMethodologies {
		if m == v {
			return true
		}
	}
	return false
}

// WorkStatus is the lifecycle status shared by portfolios, programmes and
// projects: draft -> active -> (completed | cancelled); archived for portfolios.
type WorkStatus string

const (
	WorkStatusDraft     WorkStatus = "draft"
	WorkStatusActive    WorkStatus = "active"
	WorkStatusCompleted WorkStatus = "completed"
	WorkStatusCancelled WorkStatus = "cancelled"
	WorkStatusArchived  WorkStatus = "archived"
)

// IsValid checks if the WorkStatus is valid
func (s WorkStatus) IsValid() bool {
	switch s {
	case WorkStatusDraft, WorkStatusActive, WorkStatusCompleted, WorkStatusCancelled, WorkStatusArchived:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s WorkStatus) IsTerminal() bool {
	return s == WorkStatusCompleted || s == WorkStatusCancelled
}

// CanTransitionTo enforces the status machine. Archived is reachable only
// from terminal states and is used for portfolios.
func (s WorkStatus) CanTransitionTo(next WorkStatus) bool {
	if s == next {
		return false
	}
	switch s {
	case WorkStatusDraft:
		return next == WorkStatusActive || next == WorkStatusCancelled
	case WorkStatusActive:
		return next == WorkStatusCompleted || next == WorkStatusCancelled
	case WorkStatusCompleted, WorkStatusCancelled:
		return next == WorkStatusArchived
	}
	return false
}

// Priority follows MoSCoW prioritization for backlog items.
type Priority string

const (
	PriorityMust   Priority = "must"
	PriorityShould Priority = "should"
	PriorityCould  Priority = "could"
	PriorityWont   Priority = "wont"
)

// AllPriorities lists MoSCoW priorities in rank order.
var AllPriorities = []Priority{PriorityMust, PriorityShould, PriorityCould, PriorityWont}

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityMust, PriorityShould, PriorityCould, PriorityWont:
		return true
	}
	return false
}

// DependencyType is the standard precedence relation between two work items.
type DependencyType string

const (
	DependencyFinishToStart  DependencyType = "FS"
	DependencyStartToStart   DependencyType = "SS"
	DependencyFinishToFinish DependencyType = "FF"
	DependencyStartToFinish  DependencyType = "SF"
)

// AllDependencyTypes lists the dependency relations.
var AllDependencyTypes = []DependencyType{
	DependencyFinishToStart,
	DependencyStartToStart,
	DependencyFinishToFinish,
	DependencyStartToFinish,
}

// IsValid checks if the DependencyType is valid
func (d DependencyType) IsValid() bool {
	switch d {
	case DependencyFinishToStart, DependencyStartToStart, DependencyFinishToFinish, DependencyStartToFinish:
		return true
	}
	return false
}

// DMAICPhase is one of the strictly ordered Lean Six Sigma phases.
type DMAICPhase string

const (
	DMAICDefine  DMAICPhase = "define"
	DMAICMeasure DMAICPhase = "measure"
	DMAICAnalyze DMAICPhase = "analyze"
	DMAICImprove DMAICPhase = "improve"
	DMAICControl DMAICPhase = "control"
)

// DMAICOrder gives the fixed phase sequence D -> M -> A -> I -> C.
var DMAICOrder = []DMAICPhase{DMAICDefine, DMAICMeasure, DMAICAnalyze, DMAICImprove, DMAICControl}

// IsValid checks if the DMAICPhase is valid
func (p DMAICPhase) IsValid() bool {
	return p.Index() >= 0
}

// Index returns the position of the phase in the DMAIC sequence, or -1.
func (p DMAICPhase) Index() int {
	for i, v := range DMAICOrder {
		if p == v {
			return i
		}
	}
	return -1
}

// Framework is a programme-level governance framework.
type Framework string

const (
	FrameworkMSP         Framework = "msp"
	FrameworkSAFe        Framework = "safe"
	FrameworkP2Programme Framework = "p2-programme"
	FrameworkPMI         Framework = "pmi"
	FrameworkGeneric     Framework = "generic"
)

// AllFrameworks lists the programme frameworks.
var AllFrameworks = []Framework{FrameworkMSP, FrameworkSAFe, FrameworkP2Programme, FrameworkPMI, FrameworkGeneric}

// IsValid checks if the Framework is valid
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkMSP, FrameworkSAFe, FrameworkP2Programme, FrameworkPMI, FrameworkGeneric:
		return true
	}
	return false
}

// PolicyCategory classifies a Kanban work policy.
type PolicyCategory string

const (
	PolicyCategoryWorkflow PolicyCategory = "workflow"
	PolicyCategoryQuality  PolicyCategory = "quality"
	PolicyCategoryTeam     PolicyCategory = "team"
	PolicyCategoryProcess  PolicyCategory = "process"
)

// IsValid checks if the PolicyCategory is valid
func (p PolicyCategory) IsValid() bool {
	switch p {
	case PolicyCategoryWorkflow, PolicyCategoryQuality, PolicyCategoryTeam, PolicyCategoryProcess:
		return true
	}
	return false
}

// MilestoneStatus is the status of a waterfall or core milestone.
type MilestoneStatus string

const (
	MilestoneStatusPending    MilestoneStatus = "pending"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusMissed     MilestoneStatus = "missed"
)

// IsValid checks if the MilestoneStatus is valid
func (s MilestoneStatus) IsValid() bool {
	switch s {
	case MilestoneStatusPending, MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusMissed:
		return true
	}
	return false
}

// DoDScope is the scope of a Definition of Done entry.
type DoDScope string

const (
	DoDScopeProject   DoDScope = "project"
	DoDScopeIteration DoDScope = "iteration"
	DoDScopeTask      DoDScope = "task"
)

// IsValid checks if the DoDScope is valid
func (s DoDScope) IsValid() bool {
	switch s {
	case DoDScopeProject, DoDScopeIteration, DoDScopeTask:
		return true
	}
	return false
}

// ParentKind identifies the owner of a methodology artifact.
type ParentKind string

const (
	ParentKindProject   ParentKind = "project"
	ParentKindProgramme ParentKind = "programme"
)
