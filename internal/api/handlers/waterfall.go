package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WaterfallHandler handles HTTP requests for waterfall milestones
type WaterfallHandler struct {
	waterfallService *service.WaterfallService
}

// NewWaterfallHandler creates a new waterfall handler
func NewWaterfallHandler(waterfallService *service.WaterfallService) *WaterfallHandler {
	return &WaterfallHandler{waterfallService: waterfallService}
}

// Create handles POST /waterfall/milestones
// @Summary Create a milestone
// @Tags waterfall
// @Accept json
// @Produce json
// @Param milestone body service.CreateMilestoneRequest true "Milestone data"
// @Success 201 {object} models.Milestone
// @Failure 409 {object} ErrorResponse "Project is not waterfall"
// @Security BearerAuth
// @Router /waterfall/milestones [post]
func (h *WaterfallHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.waterfallService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, milestone)
}

// ListByProject handles GET /projects/:id/milestones
// @Summary List a project's milestones in date order
// @Tags waterfall
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Milestone
// @Security BearerAuth
// @Router /projects/{id}/milestones [get]
func (h *WaterfallHandler) ListByProject(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	milestones, err := h.waterfallService.ListByProject(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// Update handles PATCH /waterfall/milestones/:id
// @Summary Update a milestone
// @Description Marking a milestone completed stamps its completion time
// @Tags waterfall
// @Accept json
// @Produce json
// @Param id path string true "Milestone ID (UUID)"
// @Param milestone body service.UpdateMilestoneRequest true "Fields to change"
// @Success 200 {object} models.Milestone
// @Failure 404 {object} ErrorResponse "Milestone not found"
// @Security BearerAuth
// @Router /waterfall/milestones/{id} [patch]
func (h *WaterfallHandler) Update(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestone, err := h.waterfallService.Update(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

// Delete handles DELETE /waterfall/milestones/:id
// @Summary Remove a milestone
// @Tags waterfall
// @Param id path string true "Milestone ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Milestone not found"
// @Security BearerAuth
// @Router /waterfall/milestones/{id} [delete]
func (h *WaterfallHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.waterfallService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
