package service

import (
	"errors"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// parentGuard validates the binding of a methodology artifact to its parent:
// the parent must exist in the caller's tenant and its methodology set must
// admit the artifact's tag (primary, or a declared secondary on hybrids).
type parentGuard struct {
	projects   repository.ProjectRepositoryInterface
	programmes repository.ProgrammeRepositoryInterface
	hybrids    repository.HybridRepositoryInterface
}

// RequireProject loads a project and checks that one of the given tags is
// admitted by its methodology set.
func (g *parentGuard) RequireProject(scope auth.TenantScope, projectID uuid.UUID, tags ...models.Methodology) (*models.Project, error) {
	project, err := g.projects.GetByID(scope, projectID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
	}

	for _, tag := range tags {
		if project.Methodology == tag {
			return project, nil
		}
	}

	// Hybrid projects admit artifacts from their declared mix.
	if project.Methodology == models.MethodologyHybrid && g.hybrids != nil {
		config, err := g.hybrids.GetConfigByProject(scope, projectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrMethodologyMismatch
			}
			return nil, notFoundOr(err, apperrors.ErrProjectNotFound)
		}
		for _, tag := range tags {
			if config.Allows(tag) {
				return project, nil
			}
		}
	}

	return nil, apperrors.ErrMethodologyMismatch
}

// RequireProgramme loads a programme and checks its framework against the
// given set.
func (g *parentGuard) RequireProgramme(scope auth.TenantScope, programmeID uuid.UUID, frameworks ...models.Framework) (*models.Programme, error) {
	programme, err := g.programmes.GetByID(scope, programmeID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrProgrammeNotFound)
	}
	if len(frameworks) == 0 {
		return programme, nil
	}
	for _, framework := range frameworks {
		if programme.Framework == framework {
			return programme, nil
		}
	}
	return nil, apperrors.ErrMethodologyMismatch
}
