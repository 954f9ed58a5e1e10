package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Prince2Handler handles HTTP requests for PRINCE2 stages and products
type Prince2Handler struct {
	prince2Service *service.Prince2Service
}

// NewPrince2Handler creates a new PRINCE2 handler
func NewPrince2Handler(prince2Service *service.Prince2Service) *Prince2Handler {
	return &Prince2Handler{prince2Service: prince2Service}
}

// CreateStage handles POST /prince2/stages
// @Summary Create a management stage
// @Tags prince2
// @Accept json
// @Produce json
// @Param stage body service.CreateStageRequest true "Stage data"
// @Success 201 {object} models.Stage
// @Failure 409 {object} ErrorResponse "Stage order already taken"
// @Security BearerAuth
// @Router /prince2/stages [post]
func (h *Prince2Handler) CreateStage(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stage, err := h.prince2Service.CreateStage(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stage)
}

// ListStages handles GET /projects/:id/stages
// @Summary List a project's stages in order
// @Tags prince2
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Stage
// @Security BearerAuth
// @Router /projects/{id}/stages [get]
func (h *Prince2Handler) ListStages(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stages, err := h.prince2Service.ListStages(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stages)
}

// ApproveGate handles POST /prince2/stages/:id/gate
// @Summary Approve a stage gate
// @Description A gate can only be approved once the previous stage has completed. Re-approving is a no-op.
// @Tags prince2
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Success 200 {object} models.Stage
// @Failure 409 {object} ErrorResponse "Previous stage not completed"
// @Security BearerAuth
// @Router /prince2/stages/{id}/gate [post]
func (h *Prince2Handler) ApproveGate(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stage, err := h.prince2Service.ApproveGate(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

// CompleteStage handles POST /prince2/stages/:id/complete
// @Summary Complete a stage
// @Tags prince2
// @Produce json
// @Param id path string true "Stage ID (UUID)"
// @Success 200 {object} models.Stage
// @Failure 409 {object} ErrorResponse "Gate not yet approved"
// @Security BearerAuth
// @Router /prince2/stages/{id}/complete [post]
func (h *Prince2Handler) CompleteStage(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	stage, err := h.prince2Service.CompleteStage(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stage)
}

// DeleteStage handles DELETE /prince2/stages/:id
// @Summary Remove an unapproved stage
// @Tags prince2
// @Param id path string true "Stage ID (UUID)"
// @Success 204 "Deleted"
// @Failure 409 {object} ErrorResponse "Approved stages cannot be removed"
// @Security BearerAuth
// @Router /prince2/stages/{id} [delete]
func (h *Prince2Handler) DeleteStage(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.prince2Service.DeleteStage(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateProduct handles POST /prince2/products
// @Summary Register a product with its quality criteria
// @Tags prince2
// @Accept json
// @Produce json
// @Param product body service.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Security BearerAuth
// @Router /prince2/products [post]
func (h *Prince2Handler) CreateProduct(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.prince2Service.CreateProduct(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /projects/:id/products
// @Summary List a project's products
// @Tags prince2
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.Product
// @Security BearerAuth
// @Router /projects/{id}/products [get]
func (h *Prince2Handler) ListProducts(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	products, err := h.prince2Service.ListProducts(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type checkCriterionBody struct {
	Criterion string `json:"criterion" binding:"required"`
}

// CheckCriterion handles POST /prince2/products/:id/check
// @Summary Mark a quality criterion as met
// @Tags prince2
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param criterion body checkCriterionBody true "Criterion text"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse "Unknown criterion"
// @Security BearerAuth
// @Router /prince2/products/{id}/check [post]
func (h *Prince2Handler) CheckCriterion(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req checkCriterionBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.prince2Service.CheckCriterion(claims, id, req.Criterion)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// ApproveProduct handles POST /prince2/products/:id/approve
// @Summary Approve a product
// @Description Approval requires every quality criterion to be checked
// @Tags prince2
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.Product
// @Failure 409 {object} ErrorResponse "Criteria still open"
// @Security BearerAuth
// @Router /prince2/products/{id}/approve [post]
func (h *Prince2Handler) ApproveProduct(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.prince2Service.ApproveProduct(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /prince2/products/:id
// @Summary Remove a product
// @Tags prince2
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /prince2/products/{id} [delete]
func (h *Prince2Handler) DeleteProduct(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.prince2Service.DeleteProduct(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
