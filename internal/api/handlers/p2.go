package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// P2Handler handles HTTP requests for PRINCE2 programme blueprints
type P2Handler struct {
	p2Service *service.P2Service
}

// NewP2Handler creates a new P2 handler
func NewP2Handler(p2Service *service.P2Service) *P2Handler {
	return &P2Handler{p2Service: p2Service}
}

// CreateBlueprint handles POST /p2/blueprints
// @Summary Create a blueprint draft
// @Description The version number is server assigned and strictly increasing per programme
// @Tags p2
// @Accept json
// @Produce json
// @Param blueprint body service.CreateBlueprintRequest true "Blueprint data"
// @Success 201 {object} models.Blueprint
// @Security BearerAuth
// @Router /p2/blueprints [post]
func (h *P2Handler) CreateBlueprint(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blueprint, err := h.p2Service.CreateBlueprint(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, blueprint)
}

// ListBlueprints handles GET /programmes/:id/blueprints
// @Summary List a programme's blueprint versions
// @Tags p2
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.Blueprint
// @Security BearerAuth
// @Router /programmes/{id}/blueprints [get]
func (h *P2Handler) ListBlueprints(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	blueprints, err := h.p2Service.ListBlueprints(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blueprints)
}

// ActivateBlueprint handles POST /p2/blueprints/:id/activate
// @Summary Activate a blueprint version
// @Description The previously active version is archived in the same transaction. Activating the already active version is a no-op.
// @Tags p2
// @Produce json
// @Param id path string true "Blueprint ID (UUID)"
// @Success 200 {object} models.Blueprint
// @Failure 409 {object} ErrorResponse "Archived versions cannot be reactivated"
// @Security BearerAuth
// @Router /p2/blueprints/{id}/activate [post]
func (h *P2Handler) ActivateBlueprint(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	blueprint, err := h.p2Service.ActivateBlueprint(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blueprint)
}
