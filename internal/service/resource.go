package service

import (
	"fmt"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ResourceService manages project and programme resource allocations.
// The cross-project sum per resource name should stay within 100%:
// exceeding it warns, unless the resource is a declared hard constraint,
// which makes it a conflict.
type ResourceService struct {
	repo       repository.ResourceRepositoryInterface
	projects   repository.ProjectRepositoryInterface
	programmes repository.ProgrammeRepositoryInterface
	auditor    *Auditor
	validator  *validator.Validate
}

// NewResourceService creates a new resource service
func NewResourceService(
	repo repository.ResourceRepositoryInterface,
	projects repository.ProjectRepositoryInterface,
	programmes repository.ProgrammeRepositoryInterface,
	auditor *Auditor,
) *ResourceService {
	return &ResourceService{
		repo:       repo,
		projects:   projects,
		programmes: programmes,
		auditor:    auditor,
		validator:  validator.New(),
	}
}

// CreateResourceRequest carries the allocation payload. Exactly one of
// ProjectID and ProgrammeID must be set.
type CreateResourceRequest struct {
	ProjectID            *uuid.UUID          `json:"project_id,omitempty"`
	ProgrammeID          *uuid.UUID          `json:"programme_id,omitempty"`
	Name                 string              `json:"name" validate:"required,max=200"`
	Type                 models.ResourceType `json:"type"`
	AllocationPercentage int                 `json:"allocation_percentage" validate:"min=0,max=100"`
	SharedAcrossProjects bool                `json:"shared_across_projects"`
	HardConstraint       bool                `json:"hard_constraint"`
}

// AllocationResult is a created or updated resource plus any over-allocation
// warning produced while accepting it.
type AllocationResult struct {
	Resource *models.Resource `json:"resource"`
	Warning  string           `json:"warning,omitempty"`
}

// Create allocates a resource to a project or programme.
func (s *ResourceService) Create(claims *auth.Claims, req *CreateResourceRequest) (*AllocationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if (req.ProjectID == nil) == (req.ProgrammeID == nil) {
		return nil, apperrors.NewValidationError("", "exactly one of project_id and programme_id is required")
	}
	resourceType := req.Type
	if resourceType == "" {
		resourceType = models.ResourceTypePerson
	}
	if !resourceType.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown resource type")
	}

	scope := auth.ScopeFromClaims(claims)
	var companyID uuid.UUID
	if req.ProjectID != nil {
		project, err := s.projects.GetByID(scope, *req.ProjectID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
		}
		companyID = project.CompanyID
	} else {
		programme, err := s.programmes.GetByID(scope, *req.ProgrammeID)
		if err != nil {
			return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
		}
		companyID = programme.CompanyID
	}

	resource := &models.Resource{
		CompanyID:            companyID,
		ProjectID:            req.ProjectID,
		ProgrammeID:          req.ProgrammeID,
		Name:                 req.Name,
		Type:                 resourceType,
		AllocationPercentage: req.AllocationPercentage,
		SharedAcrossProjects: req.SharedAcrossProjects,
		HardConstraint:       req.HardConstraint,
	}

	warning, err := s.checkAllocation(scope, resource, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	s.auditor.Record(claims, &companyID, "create", "resource", resource.ID, nil, resource)
	return &AllocationResult{Resource: resource, Warning: warning}, nil
}

// ListByProject returns the allocations of one project.
func (s *ResourceService) ListByProject(claims *auth.Claims, projectID uuid.UUID) ([]models.Resource, error) {
	resources, err := s.repo.ListByProject(auth.ScopeFromClaims(claims), projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// ListByProgramme returns the allocations of one programme.
func (s *ResourceService) ListByProgramme(claims *auth.Claims, programmeID uuid.UUID) ([]models.Resource, error) {
	resources, err := s.repo.ListByProgramme(auth.ScopeFromClaims(claims), programmeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// UpdateResourceRequest carries mutable allocation fields.
type UpdateResourceRequest struct {
	Name                 *string `json:"name,omitempty" validate:"omitempty,max=200"`
	AllocationPercentage *int    `json:"allocation_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	SharedAcrossProjects *bool   `json:"shared_across_projects,omitempty"`
	HardConstraint       *bool   `json:"hard_constraint,omitempty"`
}

// Update changes an allocation, re-running the over-allocation check.
func (s *ResourceService) Update(claims *auth.Claims, id uuid.UUID, req *UpdateResourceRequest) (*AllocationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	scope := auth.ScopeFromClaims(claims)
	resource, err := s.repo.GetByID(scope, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrResourceNotFound)
	}

	before := *resource
	if req.Name != nil {
		resource.Name = *req.Name
	}
	if req.AllocationPercentage != nil {
		resource.AllocationPercentage = *req.AllocationPercentage
	}
	if req.SharedAcrossProjects != nil {
		resource.SharedAcrossProjects = *req.SharedAcrossProjects
	}
	if req.HardConstraint != nil {
		resource.HardConstraint = *req.HardConstraint
	}

	warning, err := s.checkAllocation(scope, resource, resource.ID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(resource); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	s.auditor.Record(claims, &resource.CompanyID, "update", "resource", resource.ID, &before, resource)
	return &AllocationResult{Resource: resource, Warning: warning}, nil
}

// Delete soft-deletes an allocation.
func (s *ResourceService) Delete(claims *auth.Claims, id uuid.UUID) error {
	resource, err := s.repo.GetByID(auth.ScopeFromClaims(claims), id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrResourceNotFound)
	}
	if err := s.repo.SoftDelete(resource.ID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	s.auditor.Record(claims, &resource.CompanyID, "delete", "resource", resource.ID, resource, nil)
	return nil
}

// checkAllocation sums the allocations sharing the resource name within the
// tenant. Over 100% returns a warning, or a conflict for hard constraints.
func (s *ResourceService) checkAllocation(scope auth.TenantScope, resource *models.Resource, excludeID uuid.UUID) (string, error) {
	sum, err := s.repo.SumAllocationByName(scope, resource.Name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to sum allocations: %w", err)
	}
	total := sum + resource.AllocationPercentage
	if total <= 100 {
		return "", nil
	}
	if resource.HardConstraint {
		return "", apperrors.ErrAllocationExceeded
	}
	warning := fmt.Sprintf("resource %q is allocated at %d%% across projects", resource.Name, total)
	logrus.WithFields(logrus.Fields{
		"resource": resource.Name,
		"total":    total,
	}).Warn("resource over-allocated")
	return warning, nil
}
