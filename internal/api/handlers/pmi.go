package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PMIHandler handles HTTP requests for PMI program components
type PMIHandler struct {
	pmiService *service.PMIService
}

// NewPMIHandler creates a new PMI handler
func NewPMIHandler(pmiService *service.PMIService) *PMIHandler {
	return &PMIHandler{pmiService: pmiService}
}

// CreateComponent handles POST /pmi/components
// @Summary Create a program component
// @Tags pmi
// @Accept json
// @Produce json
// @Param component body service.CreateComponentRequest true "Component data"
// @Success 201 {object} models.ProgramComponent
// @Failure 409 {object} ErrorResponse "depends_on would close a cycle"
// @Security BearerAuth
// @Router /pmi/components [post]
func (h *PMIHandler) CreateComponent(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.pmiService.CreateComponent(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, component)
}

// ListComponents handles GET /programmes/:id/components
// @Summary List a programme's components
// @Tags pmi
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.ProgramComponent
// @Security BearerAuth
// @Router /programmes/{id}/components [get]
func (h *PMIHandler) ListComponents(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	components, err := h.pmiService.ListComponents(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, components)
}

// UpdateComponent handles PATCH /pmi/components/:id
// @Summary Update a program component
// @Tags pmi
// @Accept json
// @Produce json
// @Param id path string true "Component ID (UUID)"
// @Param component body service.UpdateComponentRequest true "Fields to change"
// @Success 200 {object} models.ProgramComponent
// @Failure 409 {object} ErrorResponse "depends_on would close a cycle"
// @Security BearerAuth
// @Router /pmi/components/{id} [patch]
func (h *PMIHandler) UpdateComponent(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	component, err := h.pmiService.UpdateComponent(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, component)
}

// DeleteComponent handles DELETE /pmi/components/:id
// @Summary Remove a program component
// @Tags pmi
// @Param id path string true "Component ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /pmi/components/{id} [delete]
func (h *PMIHandler) DeleteComponent(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.pmiService.DeleteComponent(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
