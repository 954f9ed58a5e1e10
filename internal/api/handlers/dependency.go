package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DependencyHandler handles HTTP requests for cross project dependencies
type DependencyHandler struct {
	dependencyService *service.DependencyService
}

// NewDependencyHandler creates a new dependency handler
func NewDependencyHandler(dependencyService *service.DependencyService) *DependencyHandler {
	return &DependencyHandler{dependencyService: dependencyService}
}

// Create handles POST /dependencies
// @Summary Create a dependency edge between two projects
// @Tags dependencies
// @Accept json
// @Produce json
// @Param dependency body service.CreateDependencyRequest true "Dependency data"
// @Success 201 {object} models.Dependency
// @Failure 409 {object} ErrorResponse "Edge would close a cycle"
// @Security BearerAuth
// @Router /dependencies [post]
func (h *DependencyHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateDependencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dependency, err := h.dependencyService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dependency)
}

// List handles GET /dependencies
// @Summary List dependency edges
// @Tags dependencies
// @Produce json
// @Param scope query string false "portfolio or programme"
// @Param programme_id query string false "Restrict to one programme"
// @Success 200 {array} models.Dependency
// @Security BearerAuth
// @Router /dependencies [get]
func (h *DependencyHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	programmeID, ok := queryID(c, "programme_id")
	if !ok {
		return
	}

	deps, err := h.dependencyService.List(claims, models.DependencyScope(c.Query("scope")), programmeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deps)
}

// Delete handles DELETE /dependencies/:id
// @Summary Remove a dependency edge
// @Tags dependencies
// @Param id path string true "Dependency ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Dependency not found"
// @Security BearerAuth
// @Router /dependencies/{id} [delete]
func (h *DependencyHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.dependencyService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
