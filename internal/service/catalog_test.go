package service_test

import (
	"context"
	"testing"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCatalogListMethodologies(t *testing.T) {
	catalog := service.NewCatalogService(nil)

	entries := catalog.ListMethodologies(context.Background())

	assert.Len(t, entries, 12)
	for _, entry := range entries {
		assert.True(t, entry.Key.IsValid(), "catalog key %q must be a known methodology", entry.Key)
		assert.NotEmpty(t, entry.Name)
		assert.Contains(t, []models.ParentKind{models.ParentKindProject, models.ParentKindProgramme}, entry.Kind)
	}
}

func TestCatalogGetMethodology(t *testing.T) {
	catalog := service.NewCatalogService(nil)

	entry, ok := catalog.GetMethodology(models.MethodologyScrum)
	assert.True(t, ok)
	assert.Equal(t, "Scrum", entry.Name)
	assert.Equal(t, models.ParentKindProject, entry.Kind)

	entry, ok = catalog.GetMethodology(models.Methodology("xp"))
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestCatalogEnumerations(t *testing.T) {
	catalog := service.NewCatalogService(nil)

	statuses := catalog.ListStatuses()
	assert.Len(t, statuses, 5)
	for _, status := range statuses {
		assert.True(t, status.IsValid())
	}

	assert.Equal(t, models.AllPriorities, catalog.ListPriorities())
	assert.Equal(t, models.AllDependencyTypes, catalog.ListDependencyTypes())
	assert.Equal(t, models.AllFrameworks, catalog.ListFrameworks())
	assert.Equal(t, models.DMAICOrder, catalog.ListDMAICPhases())
}
