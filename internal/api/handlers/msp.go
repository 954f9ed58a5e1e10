package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MSPHandler handles HTTP requests for MSP tranches and benefits
type MSPHandler struct {
	mspService *service.MSPService
}

// NewMSPHandler creates a new MSP handler
func NewMSPHandler(mspService *service.MSPService) *MSPHandler {
	return &MSPHandler{mspService: mspService}
}

// CreateTranche handles POST /msp/tranches
// @Summary Append a tranche to a programme
// @Description The sequence number is server assigned, always one past the current maximum
// @Tags msp
// @Accept json
// @Produce json
// @Param tranche body service.CreateTrancheRequest true "Tranche data"
// @Success 201 {object} models.Tranche
// @Failure 409 {object} ErrorResponse "Sequence collision, retry"
// @Security BearerAuth
// @Router /msp/tranches [post]
func (h *MSPHandler) CreateTranche(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateTrancheRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tranche, err := h.mspService.CreateTranche(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tranche)
}

// ListTranches handles GET /programmes/:id/tranches
// @Summary List a programme's tranches in sequence
// @Tags msp
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.Tranche
// @Security BearerAuth
// @Router /programmes/{id}/tranches [get]
func (h *MSPHandler) ListTranches(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tranches, err := h.mspService.ListTranches(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tranches)
}

// DeleteTranche handles DELETE /msp/tranches/:id
// @Summary Remove a tranche and close the sequence gap
// @Tags msp
// @Param id path string true "Tranche ID (UUID)"
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /msp/tranches/{id} [delete]
func (h *MSPHandler) DeleteTranche(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mspService.DeleteTranche(claims, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBenefit handles POST /msp/benefits
// @Summary Register a benefit, optionally tied to a tranche
// @Tags msp
// @Accept json
// @Produce json
// @Param benefit body service.CreateBenefitRequest true "Benefit data"
// @Success 201 {object} models.Benefit
// @Security BearerAuth
// @Router /msp/benefits [post]
func (h *MSPHandler) CreateBenefit(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateBenefitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	benefit, err := h.mspService.CreateBenefit(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, benefit)
}

// ListBenefits handles GET /programmes/:id/benefits
// @Summary List a programme's benefits with realized totals
// @Tags msp
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {array} models.Benefit
// @Security BearerAuth
// @Router /programmes/{id}/benefits [get]
func (h *MSPHandler) ListBenefits(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	benefits, err := h.mspService.ListBenefits(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, benefits)
}

// RecordRealization handles POST /msp/benefits/:id/realizations
// @Summary Record a benefit realization measurement
// @Description Exceeding the target value is accepted with a warning in the response
// @Tags msp
// @Accept json
// @Produce json
// @Param id path string true "Benefit ID (UUID)"
// @Param realization body service.RecordRealizationRequest true "Measured value"
// @Success 201 {object} service.RealizationResult
// @Security BearerAuth
// @Router /msp/benefits/{id}/realizations [post]
func (h *MSPHandler) RecordRealization(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req service.RecordRealizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.mspService.RecordRealization(claims, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
