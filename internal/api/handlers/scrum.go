package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScrumHandler handles HTTP requests for scrum iterations, backlog,
// daily updates and definition of done
type ScrumHandler struct {
	scrumService *service.ScrumService
}

// NewScrumHandler creates a new scrum handler
func NewScrumHandler(scrumService *service.ScrumService) *ScrumHandler {
	return &ScrumHandler{scrumService: scrumService}
}

// CreateIteration handles POST /scrum/iterations
// @Summary Create an iteration
// @Description When end_date is omitted it defaults to fourteen days after start_date
// @Tags scrum
// @Accept json
// @Produce json
// @Param iteration body service.CreateIterationRequest true "Iteration data"
// @Success 201 {object} models.Iteration
// @Failure 409 {object} ErrorResponse "Project is not scrum or agile"
// @Security BearerAuth
// @Router /scrum/iterations [post]
func (h *ScrumHandler) CreateIteration(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateIterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iteration, err := h.scrumService.CreateIteration(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, iteration)
}

// GetIteration handles GET /scrum/iterations/:id
// @Summary Get an iteration
// @Tags scrum
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {object} models.Iteration
// @Failure 404 {object} ErrorResponse "Iteration not found"
// @Security BearerAuth
// @Router /scrum/iterations/{id} [get]
func (h *ScrumHandler) GetIteration(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	iteration, err := h.scrumService.GetIteration(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iteration)
}

// ListIterations handles GET /projects/:id/iterations
// @Summary List a project's iterations
// @Tags scrum
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Iteration
// @Security BearerAuth
// @Router /projects/{id}/iterations [get]
func (h *ScrumHandler) ListIterations(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	iterations, err := h.scrumService.ListIterations(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iterations)
}

// UpdateIteration handles PATCH /scrum/iterations/:id
// @Summary Update an iteration
// @Description Activating an iteration fails with 409 while another overlapping iteration is active. The request should carry the lock_version read earlier; a stale version is rejected.
// @Tags scrum
// @Accept json
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Param iteration body service.UpdateIterationRequest true "Fields to change plus lock_version"
// @Success 200 {object} models.Iteration
// @Failure 409 {object} ErrorResponse "Overlap or stale lock version"
// @Security BearerAuth
// @Router /scrum/iterations/{id} [patch]
func (h *ScrumHandler) UpdateIteration(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateIterationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	iteration, err := h.scrumService.UpdateIteration(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iteration)
}

// DeleteIteration handles DELETE /scrum/iterations/:id
// @Summary Remove an iteration
// @Tags scrum
// @Param id path string true "Iteration ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /scrum/iterations/{id} [delete]
func (h *ScrumHandler) DeleteIteration(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scrumService.DeleteIteration(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBacklogItem handles POST /scrum/backlog
// @Summary Create a backlog item
// @Tags scrum
// @Accept json
// @Produce json
// @Param item body service.CreateBacklogItemRequest true "Backlog item data"
// @Success 201 {object} models.BacklogItem
// @Failure 409 {object} ErrorResponse "Order already taken"
// @Security BearerAuth
// @Router /scrum/backlog [post]
func (h *ScrumHandler) CreateBacklogItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateBacklogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scrumService.CreateBacklogItem(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListBacklog handles GET /projects/:id/backlog
// @Summary List a project's backlog in order
// @Tags scrum
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.BacklogItem
// @Security BearerAuth
// @Router /projects/{id}/backlog [get]
func (h *ScrumHandler) ListBacklog(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.scrumService.ListBacklog(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateBacklogItem handles PATCH /scrum/backlog/:id
// @Summary Update a backlog item
// @Description A nil iteration_id unassigns the item from its iteration
// @Tags scrum
// @Accept json
// @Produce json
// @Param id path string true "Backlog item ID (UUID)"
// @Param item body service.UpdateBacklogItemRequest true "Fields to change"
// @Success 200 {object} models.BacklogItem
// @Failure 409 {object} ErrorResponse "Order already taken"
// @Security BearerAuth
// @Router /scrum/backlog/{id} [patch]
func (h *ScrumHandler) UpdateBacklogItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateBacklogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scrumService.UpdateBacklogItem(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteBacklogItem handles DELETE /scrum/backlog/:id
// @Summary Remove a backlog item
// @Tags scrum
// @Param id path string true "Backlog item ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /scrum/backlog/{id} [delete]
func (h *ScrumHandler) DeleteBacklogItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scrumService.DeleteBacklogItem(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateDailyUpdate handles POST /scrum/daily-updates
// @Summary Record a daily update
// @Description One update per author per iteration per day; a second attempt is 409
// @Tags scrum
// @Accept json
// @Produce json
// @Param update body service.CreateDailyUpdateRequest true "Daily update data"
// @Success 201 {object} models.DailyUpdate
// @Failure 409 {object} ErrorResponse "Update already recorded for that day"
// @Security BearerAuth
// @Router /scrum/daily-updates [post]
func (h *ScrumHandler) CreateDailyUpdate(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateDailyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update, err := h.scrumService.CreateDailyUpdate(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, update)
}

// ListDailyUpdates handles GET /scrum/iterations/:id/daily-updates
// @Summary List an iteration's daily updates
// @Tags scrum
// @Produce json
// @Param id path string true "Iteration ID (UUID)"
// @Success 200 {array} models.DailyUpdate
// @Security BearerAuth
// @Router /scrum/iterations/{id}/daily-updates [get]
func (h *ScrumHandler) ListDailyUpdates(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	updates, err := h.scrumService.ListDailyUpdates(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

// InitializeDoD handles POST /projects/:id/dod/initialize
// @Summary Seed the default definition of done
// @Description Idempotent; when items already exist the existing set is returned unchanged
// @Tags scrum
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.DoDItem
// @Security BearerAuth
// @Router /projects/{id}/dod/initialize [post]
func (h *ScrumHandler) InitializeDoD(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.scrumService.InitializeDoD(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateDoDItem handles POST /scrum/dod
// @Summary Add a definition of done item
// @Tags scrum
// @Accept json
// @Produce json
// @Param item body service.CreateDoDItemRequest true "Item data"
// @Success 201 {object} models.DoDItem
// @Security BearerAuth
// @Router /scrum/dod [post]
func (h *ScrumHandler) CreateDoDItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateDoDItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scrumService.CreateDoDItem(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListDoD handles GET /projects/:id/dod
// @Summary List a project's definition of done
// @Tags scrum
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param scope query string false "Filter by item scope"
// @Success 200 {array} models.DoDItem
// @Security BearerAuth
// @Router /projects/{id}/dod [get]
func (h *ScrumHandler) ListDoD(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.scrumService.ListDoD(claims, id, models.DoDScope(c.Query("scope")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpdateDoDItem handles PATCH /scrum/dod/:id
// @Summary Update a definition of done item
// @Tags scrum
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param item body service.UpdateDoDItemRequest true "Fields to change"
// @Success 200 {object} models.DoDItem
// @Security BearerAuth
// @Router /scrum/dod/{id} [patch]
func (h *ScrumHandler) UpdateDoDItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDoDItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.scrumService.UpdateDoDItem(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteDoDItem handles DELETE /scrum/dod/:id
// @Summary Remove a definition of done item
// @Tags scrum
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /scrum/dod/{id} [delete]
func (h *ScrumHandler) DeleteDoDItem(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scrumService.DeleteDoDItem(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
