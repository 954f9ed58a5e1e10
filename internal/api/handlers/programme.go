package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgrammeHandler handles HTTP requests for programmes
type ProgrammeHandler struct {
	programmeService *service.ProgrammeService
}

// NewProgrammeHandler creates a new programme handler
func NewProgrammeHandler(programmeService *service.ProgrammeService) *ProgrammeHandler {
	return &ProgrammeHandler{programmeService: programmeService}
}

// Create handles POST /programmes
// @Summary Create a programme
// @Tags programmes
// @Accept json
// @Produce json
// @Param programme body service.CreateProgrammeRequest true "Programme data"
// @Success 201 {object} models.Programme
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /programmes [post]
func (h *ProgrammeHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programme, err := h.programmeService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, programme)
}

// Get handles GET /programmes/:id
// @Summary Get a programme
// @Description With include=projects the member projects are embedded
// @Tags programmes
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Param include query string false "Set to projects to embed members"
// @Success 200 {object} models.Programme
// @Failure 404 {object} ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /programmes/{id} [get]
func (h *ProgrammeHandler) Get(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var (
		programme *models.Programme
		err       error
	)
	if c.Query("include") == "projects" {
		programme, err = h.programmeService.GetWithProjects(claims, id)
	} else {
		programme, err = h.programmeService.Get(claims, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programme)
}

// List handles GET /programmes
// @Summary List programmes
// @Tags programmes
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /programmes [get]
func (h *ProgrammeHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	programmes, total, err := h.programmeService.List(claims, models.WorkStatus(c.Query("status")), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: programmes, Total: total, Page: page, PageSize: pageSize})
}

// Update handles PATCH /programmes/:id
// @Summary Update a programme
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Param programme body service.UpdateProgrammeRequest true "Fields to change"
// @Success 200 {object} models.Programme
// @Failure 404 {object} ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /programmes/{id} [patch]
func (h *ProgrammeHandler) Update(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProgrammeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programme, err := h.programmeService.Update(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programme)
}

// SetStatus handles PUT /programmes/:id/status
// @Summary Transition a programme's lifecycle status
// @Tags programmes
// @Accept json
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Param status body statusBody true "Target status"
// @Success 200 {object} models.Programme
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /programmes/{id}/status [put]
func (h *ProgrammeHandler) SetStatus(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	programme, err := h.programmeService.SetStatus(claims, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programme)
}

// Delete handles DELETE /programmes/:id
// @Summary Soft delete a programme
// @Tags programmes
// @Param id path string true "Programme ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /programmes/{id} [delete]
func (h *ProgrammeHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.programmeService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
