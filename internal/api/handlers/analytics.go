package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles HTTP requests for rollups and metrics
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary handles GET /analytics/summary
// @Summary Get the tenant wide status summary
// @Description Counts of portfolios, programmes and projects by status and methodology, served from cache when warm
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Summary
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// MethodologyDistribution handles GET /analytics/methodology-distribution
// @Summary Get the tenant's project counts by methodology
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]int64
// @Security BearerAuth
// @Router /analytics/methodology-distribution [get]
func (h *AnalyticsHandler) MethodologyDistribution(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.Methodology)
}

// Recalculate handles POST /analytics/summary/recalculate
// @Summary Recompute the summary and refresh the cache
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Summary
// @Security BearerAuth
// @Router /analytics/summary/recalculate [post]
func (h *AnalyticsHandler) Recalculate(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.Recalculate(c.Request.Context(), claims)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetProgrammeRollup handles GET /programmes/:id/rollup
// @Summary Roll up a programme's projects, dependencies and resources
// @Tags analytics
// @Produce json
// @Param id path string true "Programme ID (UUID)"
// @Success 200 {object} service.ProgrammeRollup
// @Failure 404 {object} ErrorResponse "Programme not found"
// @Security BearerAuth
// @Router /programmes/{id}/rollup [get]
func (h *AnalyticsHandler) GetProgrammeRollup(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rollup, err := h.analyticsService.GetProgrammeRollup(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rollup)
}

// MethodologyMetrics handles GET /projects/:id/methodology-metrics
// @Summary Get methodology specific metrics for a project
// @Description Supported for scrum, agile, kanban and lean six sigma projects; others return 501
// @Tags analytics
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 501 {object} ErrorResponse "No metric set for this methodology"
// @Security BearerAuth
// @Router /projects/{id}/methodology-metrics [get]
func (h *AnalyticsHandler) MethodologyMetrics(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	metrics, err := h.analyticsService.MethodologyMetrics(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
