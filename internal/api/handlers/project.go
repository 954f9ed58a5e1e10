package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// Create handles POST /projects
// @Summary Create a project
// @Description The methodology is fixed at creation and drives which subresources the project accepts
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse "Invalid request or unknown methodology"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Get handles GET /projects/:id
// @Summary Get a project
// @Description include_deleted=true is admin only and surfaces soft deleted rows
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param include_deleted query bool false "Include soft deleted projects (admin only)"
// @Success 200 {object} models.Project
// @Failure 403 {object} ErrorResponse "include_deleted requires admin"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(claims, id, c.Query("include_deleted") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// List handles GET /projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param status query string false "Filter by status"
// @Param methodology query string false "Filter by methodology"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	projects, total, err := h.projectService.List(claims,
		models.WorkStatus(c.Query("status")),
		models.Methodology(c.Query("methodology")),
		page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: projects, Total: total, Page: page, PageSize: pageSize})
}

// Update handles PATCH /projects/:id
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param project body service.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [patch]
func (h *ProjectHandler) Update(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Update(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// SetStatus handles PUT /projects/:id/status
// @Summary Transition a project's lifecycle status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param status body statusBody true "Target status"
// @Success 200 {object} models.Project
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /projects/{id}/status [put]
func (h *ProjectHandler) SetStatus(c *gin.Context) {
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

	project, err := h.projectService.SetStatus(claims, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Attach handles PUT /projects/:id/attach
// @Summary Attach or detach a project from a portfolio or programme
// @Description A nil UUID in either field detaches; both fields may be set in one call
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param attach body service.AttachRequest true "Attachment targets"
// @Success 200 {object} models.Project
// @Failure 404 {object} ErrorResponse "Project or target not found"
// @Security BearerAuth
// @Router /projects/{id}/attach [put]
func (h *ProjectHandler) Attach(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.AttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projectService.Attach(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /projects/:id
// @Summary Soft delete a project and its methodology records
// @Tags projects
// @Param id path string true "Project ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
