package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// KanbanHandler handles HTTP requests for kanban boards, columns,
// cards and work policies
type KanbanHandler struct {
	kanbanService *service.KanbanService
}

// NewKanbanHandler creates a new kanban handler
func NewKanbanHandler(kanbanService *service.KanbanService) *KanbanHandler {
	return &KanbanHandler{kanbanService: kanbanService}
}

// CreateBoard handles POST /kanban/boards
// @Summary Create a board
// @Tags kanban
// @Accept json
// @Produce json
// @Param board body service.CreateBoardRequest true "Board data"
// @Success 201 {object} models.Board
// @Failure 409 {object} ErrorResponse "Project is not kanban"
// @Security BearerAuth
// @Router /kanban/boards [post]
func (h *KanbanHandler) CreateBoard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.kanbanService.CreateBoard(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

// GetBoard handles GET /kanban/boards/:id
// @Summary Get a board with its columns
// @Tags kanban
// @Produce json
// @Param id path string true "Board ID (UUID)"
// @Success 200 {object} models.Board
// @Failure 404 {object} ErrorResponse "Board not found"
// @Security BearerAuth
// @Router /kanban/boards/{id} [get]
func (h *KanbanHandler) GetBoard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	board, err := h.kanbanService.GetBoard(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ListBoards handles GET /projects/:id/boards
// @Summary List a project's boards
// @Tags kanban
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Board
// @Security BearerAuth
// @Router /projects/{id}/boards [get]
func (h *KanbanHandler) ListBoards(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	boards, err := h.kanbanService.ListBoards(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// DeleteBoard handles DELETE /kanban/boards/:id
// @Summary Remove a board
// @Tags kanban
// @Param id path string true "Board ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /kanban/boards/{id} [delete]
func (h *KanbanHandler) DeleteBoard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.kanbanService.DeleteBoard(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateColumn handles POST /kanban/columns
// @Summary Add a column to a board
// @Tags kanban
// @Accept json
// @Produce json
// @Param column body service.CreateColumnRequest true "Column data"
// @Success 201 {object} models.Column
// @Security BearerAuth
// @Router /kanban/columns [post]
func (h *KanbanHandler) CreateColumn(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.kanbanService.CreateColumn(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, column)
}

// UpdateColumn handles PATCH /kanban/columns/:id
// @Summary Update a column
// @Description Lowering a WIP limit below the current card count is allowed and binds future moves
// @Tags kanban
// @Accept json
// @Produce json
// @Param id path string true "Column ID (UUID)"
// @Param column body service.UpdateColumnRequest true "Fields to change"
// @Success 200 {object} models.Column
// @Security BearerAuth
// @Router /kanban/columns/{id} [patch]
func (h *KanbanHandler) UpdateColumn(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	column, err := h.kanbanService.UpdateColumn(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, column)
}

// DeleteColumn handles DELETE /kanban/columns/:id
// @Summary Remove an empty column
// @Tags kanban
// @Param id path string true "Column ID (UUID)"
// @Success 204 "Deleted"
// @Failure 409 {object} ErrorResponse "Column still holds cards"
// @Security BearerAuth
// @Router /kanban/columns/{id} [delete]
func (h *KanbanHandler) DeleteColumn(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.kanbanService.DeleteColumn(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCard handles POST /kanban/cards
// @Summary Create a card in a column
// @Tags kanban
// @Accept json
// @Produce json
// @Param card body service.CreateCardRequest true "Card data"
// @Success 201 {object} models.Card
// @Failure 409 {object} ErrorResponse "Destination column at its WIP limit"
// @Security BearerAuth
// @Router /kanban/cards [post]
func (h *KanbanHandler) CreateCard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.kanbanService.CreateCard(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// ListCards handles GET /kanban/columns/:id/cards
// @Summary List a column's cards in position order
// @Tags kanban
// @Produce json
// @Param id path string true "Column ID (UUID)"
// @Success 200 {array} models.Card
// @Security BearerAuth
// @Router /kanban/columns/{id}/cards [get]
func (h *KanbanHandler) ListCards(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cards, err := h.kanbanService.ListCards(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// MoveCard handles PUT /kanban/cards/:id/move
// @Summary Move a card between columns
// @Description WIP limits are re-checked inside the move transaction. override skips the check and requires a manager or admin role.
// @Tags kanban
// @Accept json
// @Produce json
// @Param id path string true "Card ID (UUID)"
// @Param move body service.MoveCardRequest true "Destination column, position, lock_version and optional override"
// @Success 200 {object} models.Card
// @Failure 403 {object} ErrorResponse "Override needs manager or admin"
// @Failure 409 {object} ErrorResponse "WIP limit reached or stale lock version"
// @Security BearerAuth
// @Router /kanban/cards/{id}/move [put]
func (h *KanbanHandler) MoveCard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.kanbanService.MoveCard(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// UpdateCard handles PATCH /kanban/cards/:id
// @Summary Update a card's fields
// @Tags kanban
// @Accept json
// @Produce json
// @Param id path string true "Card ID (UUID)"
// @Param card body service.UpdateCardRequest true "Fields to change"
// @Success 200 {object} models.Card
// @Security BearerAuth
// @Router /kanban/cards/{id} [patch]
func (h *KanbanHandler) UpdateCard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card, err := h.kanbanService.UpdateCard(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCard handles DELETE /kanban/cards/:id
// @Summary Remove a card
// @Tags kanban
// @Param id path string true "Card ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /kanban/cards/{id} [delete]
func (h *KanbanHandler) DeleteCard(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.kanbanService.DeleteCard(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateWorkPolicy handles POST /kanban/policies
// @Summary Record an explicit work policy
// @Tags kanban
// @Accept json
// @Produce json
// @Param policy body service.CreateWorkPolicyRequest true "Policy data"
// @Success 201 {object} models.WorkPolicy
// @Security BearerAuth
// @Router /kanban/policies [post]
func (h *KanbanHandler) CreateWorkPolicy(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateWorkPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy, err := h.kanbanService.CreateWorkPolicy(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, policy)
}

// ListWorkPolicies handles GET /projects/:id/policies
// @Summary List a project's work policies
// @Tags kanban
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.WorkPolicy
// @Security BearerAuth
// @Router /projects/{id}/policies [get]
func (h *KanbanHandler) ListWorkPolicies(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	policies, err := h.kanbanService.ListWorkPolicies(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

// UpdateWorkPolicy handles PATCH /kanban/policies/:id
// @Summary Update a work policy
// @Tags kanban
// @Accept json
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Param policy body service.UpdateWorkPolicyRequest true "Fields to change"
// @Success 200 {object} models.WorkPolicy
// @Security BearerAuth
// @Router /kanban/policies/{id} [patch]
func (h *KanbanHandler) UpdateWorkPolicy(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateWorkPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy, err := h.kanbanService.UpdateWorkPolicy(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

// DeleteWorkPolicy handles DELETE /kanban/policies/:id
// @Summary Remove a work policy
// @Tags kanban
// @Param id path string true "Policy ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /kanban/policies/{id} [delete]
func (h *KanbanHandler) DeleteWorkPolicy(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.kanbanService.DeleteWorkPolicy(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
