package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HybridHandler handles HTTP requests for hybrid configurations and artifacts
type HybridHandler struct {
	hybridService *service.HybridService
}

// NewHybridHandler creates a new hybrid handler
func NewHybridHandler(hybridService *service.HybridService) *HybridHandler {
	return &HybridHandler{hybridService: hybridService}
}

// SetConfig handles PUT /hybrid/config
// @Summary Create or replace a hybrid project's methodology mix
// @Description The primary and secondaries must be concrete methodologies and the phase map may only reference them
// @Tags hybrid
// @Accept json
// @Produce json
// @Param config body service.ConfigRequest true "Mix definition"
// @Success 200 {object} models.HybridConfig
// @Failure 409 {object} ErrorResponse "Project is not hybrid"
// @Security BearerAuth
// @Router /hybrid/config [put]
func (h *HybridHandler) SetConfig(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config, err := h.hybridService.SetConfig(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// GetConfig handles GET /projects/:id/hybrid-config
// @Summary Get a hybrid project's mix
// @Tags hybrid
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} models.HybridConfig
// @Failure 404 {object} ErrorResponse "No config set"
// @Security BearerAuth
// @Router /projects/{id}/hybrid-config [get]
func (h *HybridHandler) GetConfig(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	config, err := h.hybridService.GetConfig(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

// CreateArtifact handles POST /hybrid/artifacts
// @Summary Record an artifact borrowed from a mixed in methodology
// @Description The artifact's source methodology must be admitted by the project's mix
// @Tags hybrid
// @Accept json
// @Produce json
// @Param artifact body service.CreateArtifactRequest true "Artifact data"
// @Success 201 {object} models.HybridArtifact
// @Failure 409 {object} ErrorResponse "Source methodology not in the mix"
// @Security BearerAuth
// @Router /hybrid/artifacts [post]
func (h *HybridHandler) CreateArtifact(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.hybridService.CreateArtifact(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, artifact)
}

// ListArtifacts handles GET /projects/:id/hybrid-artifacts
// @Summary List a hybrid project's artifacts
// @Tags hybrid
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.HybridArtifact
// @Security BearerAuth
// @Router /projects/{id}/hybrid-artifacts [get]
func (h *HybridHandler) ListArtifacts(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	artifacts, err := h.hybridService.ListArtifacts(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

// UpdateArtifact handles PATCH /hybrid/artifacts/:id
// @Summary Update an artifact's payload
// @Description The source methodology is immutable after creation
// @Tags hybrid
// @Accept json
// @Produce json
// @Param id path string true "Artifact ID (UUID)"
// @Param artifact body service.UpdateArtifactRequest true "Fields to change"
// @Success 200 {object} models.HybridArtifact
// @Security BearerAuth
// @Router /hybrid/artifacts/{id} [patch]
func (h *HybridHandler) UpdateArtifact(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	artifact, err := h.hybridService.UpdateArtifact(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// DeleteArtifact handles DELETE /hybrid/artifacts/:id
// @Summary Remove an artifact
// @Tags hybrid
// @Param id path string true "Artifact ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /hybrid/artifacts/{id} [delete]
func (h *HybridHandler) DeleteArtifact(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.hybridService.DeleteArtifact(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
