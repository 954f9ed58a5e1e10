package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SAFeHandler handles HTTP requests for agile release trains, program
// increments, objectives and sync meetings
type SAFeHandler struct {
	safeService *service.SAFeService
}

// NewSAFeHandler creates a new SAFe handler
func NewSAFeHandler(safeService *service.SAFeService) *SAFeHandler {
	return &SAFeHandler{safeService: safeService}
}

// CreateART handles POST /safe/arts
// @Summary Create an agile release train
// @Tags safe
// @Accept json
// @Produce json
// @Param art body service.CreateARTRequest true "ART data"
// @Success 201 {object} models.ART
// @Security BearerAuth
// @Router /safe/arts [post]
func (h *SAFeHandler) CreateART(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateARTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.safeService.CreateART(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, art)
}

// ListARTs handles GET /programmes/:id/arts
// @Summary List a programme's release trains
// @Tags safe
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.ART
// @Security BearerAuth
// @Router /programmes/{id}/arts [get]
func (h *SAFeHandler) ListARTs(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	arts, err := h.safeService.ListARTs(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, arts)
}

// DeleteART handles DELETE /safe/arts/:id
// @Summary Remove a release train
// @Tags safe
// @Param id path string true "ART ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /safe/arts/{id} [delete]
func (h *SAFeHandler) DeleteART(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.safeService.DeleteART(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePI handles POST /safe/pis
// @Summary Create a program increment
// @Tags safe
// @Accept json
// @Produce json
// @Param pi body service.CreatePIRequest true "PI data"
// @Success 201 {object} models.ProgramIncrement
// @Security BearerAuth
// @Router /safe/pis [post]
func (h *SAFeHandler) CreatePI(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreatePIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pi, err := h.safeService.CreatePI(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pi)
}

// ListPIs handles GET /programmes/:id/pis
// @Summary List a programme's program increments
// @Tags safe
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.ProgramIncrement
// @Security BearerAuth
// @Router /programmes/{id}/pis [get]
func (h *SAFeHandler) ListPIs(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pis, err := h.safeService.ListPIs(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pis)
}

// CreateObjective handles POST /safe/objectives
// @Summary Add a PI objective
// @Description Business value is bounded one to ten
// @Tags safe
// @Accept json
// @Produce json
// @Param objective body service.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} models.PIObjective
// @Security BearerAuth
// @Router /safe/objectives [post]
func (h *SAFeHandler) CreateObjective(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objective, err := h.safeService.CreateObjective(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, objective)
}

// UpdateObjective handles PATCH /safe/objectives/:id
// @Summary Update a PI objective
// @Tags safe
// @Accept json
// @Produce json
// @Param id path string true "Objective ID (UUID)"
// @Param objective body service.UpdateObjectiveRequest true "Fields to change"
// @Success 200 {object} models.PIObjective
// @Security BearerAuth
// @Router /safe/objectives/{id} [patch]
func (h *SAFeHandler) UpdateObjective(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objective, err := h.safeService.UpdateObjective(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, objective)
}

// RecordSyncMeeting handles POST /safe/sync-meetings
// @Summary Record an ART sync meeting
// @Description The meeting log is append only
// @Tags safe
// @Accept json
// @Produce json
// @Param meeting body service.RecordSyncMeetingRequest true "Meeting data"
// @Success 201 {object} models.ARTSyncMeeting
// @Security BearerAuth
// @Router /safe/sync-meetings [post]
func (h *SAFeHandler) RecordSyncMeeting(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.RecordSyncMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meeting, err := h.safeService.RecordSyncMeeting(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meeting)
}

// ListSyncMeetings handles GET /safe/arts/:id/sync-meetings
// @Summary List an ART's sync meetings
// @Tags safe
// @Produce json
// @Param id path string true "ART ID (UUID)"
// @Success 200 {array} models.ARTSyncMeeting
// @Security BearerAuth
// @Router /safe/arts/{id}/sync-meetings [get]
func (h *SAFeHandler) ListSyncMeetings(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meetings, err := h.safeService.ListSyncMeetings(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}
