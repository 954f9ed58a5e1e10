package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler handles HTTP requests for portfolios
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// statusBody carries a lifecycle transition target. Shared by the
// portfolio, programme and project status endpoints.
type statusBody struct {
	Status models.WorkStatus `json:"status" binding:"required"`
}

// Create handles POST /portfolios
// @Summary Create a portfolio
// @Tags portfolios
// @Accept json
// @Produce json
// @Param portfolio body service.CreatePortfolioRequest true "Portfolio data"
// @Success 201 {object} models.Portfolio
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Security BearerAuth
// @Router /portfolios [post]
func (h *PortfolioHandler) Create(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio, err := h.portfolioService.Create(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, portfolio)
}

// Get handles GET /portfolios/:id
// @Summary Get a portfolio
// @Tags portfolios
// @Produce json
// @Param id path string true "Portfolio ID (UUID)"
// @Success 200 {object} models.Portfolio
// @Failure 404 {object} ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{id} [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	portfolio, err := h.portfolioService.Get(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// List handles GET /portfolios
// @Summary List portfolios
// @Tags portfolios
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /portfolios [get]
func (h *PortfolioHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	portfolios, total, err := h.portfolioService.List(claims, models.WorkStatus(c.Query("status")), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: portfolios, Total: total, Page: page, PageSize: pageSize})
}

// Update handles PATCH /portfolios/:id
// @Summary Update a portfolio
// @Tags portfolios
// @Accept json
// @Produce json
// @Param id path string true "Portfolio ID (UUID)"
// @Param portfolio body service.UpdatePortfolioRequest true "Fields to change"
// @Success 200 {object} models.Portfolio
// @Failure 404 {object} ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{id} [patch]
func (h *PortfolioHandler) Update(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio, err := h.portfolioService.Update(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// SetStatus handles PUT /portfolios/:id/status
// @Summary Transition a portfolio's lifecycle status
// @Tags portfolios
// @Accept json
// @Produce json
// @Param id path string true "Portfolio ID (UUID)"
// @Param status body statusBody true "Target status"
// @Success 200 {object} models.Portfolio
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /portfolios/{id}/status [put]
func (h *PortfolioHandler) SetStatus(c *gin.Context) {
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

	portfolio, err := h.portfolioService.SetStatus(claims, id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// Delete handles DELETE /portfolios/:id
// @Summary Soft delete a portfolio
// @Tags portfolios
// @Param id path string true "Portfolio ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Portfolio not found"
// @Security BearerAuth
// @Router /portfolios/{id} [delete]
func (h *PortfolioHandler) Delete(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.portfolioService.Delete(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
