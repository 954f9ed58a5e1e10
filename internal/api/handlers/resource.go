package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceHandler handles HTTP requests for resource assignments
type ResourceHandler struct {
	resourceService *service.ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// Create handles POST /resources
// @Summary Assign a resource to a project or programme
// @Description Over allocation past 100 percent returns a warning, or 409 when the resource is hard constrained
// @Tags resources
// @Accept json
// @Produce json
// @Param resource body service.CreateResourceRequest true "Resource data"
// @Success 201 {object} service.AllocationResult
// @Failure 409 {object} ErrorResponse "Hard constrained resource over allocated"
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resourceService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListByProject handles GET /projects/:id/resources
// @Summary List resources assigned to a project
// @Tags resources
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Resource
// @Security BearerAuth
// @Router /projects/{id}/resources [get]
func (h *ResourceHandler) ListByProject(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resources, err := h.resourceService.ListByProject(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// ListByProgramme handles GET /programmes/:id/resources
// @Summary List resources assigned to a programme
// @Tags resources
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.Resource
// @Security BearerAuth
// @Router /programmes/{id}/resources [get]
func (h *ResourceHandler) ListByProgramme(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resources, err := h.resourceService.ListByProgramme(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// Update handles PATCH /resources/:id
// @Summary Update a resource assignment
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID (UUID)"
// @Param resource body service.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} service.AllocationResult
// @Failure 409 {object} ErrorResponse "Hard constrained resource over allocated"
// @Security BearerAuth
// @Router /resources/{id} [patch]
func (h *ResourceHandler) Update(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.resourceService.Update(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Delete handles DELETE /resources/:id
// @Summary Remove a resource assignment
// @Tags resources
// @Param id path string true "Resource ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.resourceService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
