package handlers

import (
	"net/http"

	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LSSHandler handles HTTP requests for lean six sigma DMAIC records,
// metrics and statistical artifacts
type LSSHandler struct {
	lssService *service.LSSService
}

// NewLSSHandler creates a new LSS handler
func NewLSSHandler(lssService *service.LSSService) *LSSHandler {
	return &LSSHandler{lssService: lssService}
}

// CreateDMAICRecord handles POST /lss/dmaic
// @Summary Open a DMAIC phase
// @Description Phases open in strict order; a phase cannot open until the previous one is complete
// @Tags lss
// @Accept json
// @Produce json
// @Param record body service.CreateDMAICRequest true "Phase data"
// @Success 201 {object} models.DMAICRecord
// @Failure 409 {object} ErrorResponse "Out of order or already open"
// @Security BearerAuth
// @Router /lss/dmaic [post]
func (h *LSSHandler) CreateDMAICRecord(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateDMAICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.lssService.CreateDMAICRecord(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// ListDMAICRecords handles GET /projects/:id/dmaic
// @Summary List a project's DMAIC records in phase order
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.DMAICRecord
// @Security BearerAuth
// @Router /projects/{id}/dmaic [get]
func (h *LSSHandler) ListDMAICRecords(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	records, err := h.lssService.ListDMAICRecords(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

type completePhaseBody struct {
	Summary string `json:"summary"`
}

// CompleteDMAICPhase handles POST /lss/dmaic/:id/complete
// @Summary Complete an open DMAIC phase
// @Tags lss
// @Accept json
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Param summary body completePhaseBody false "Closing summary"
// @Success 200 {object} models.DMAICRecord
// @Security BearerAuth
// @Router /lss/dmaic/{id}/complete [post]
func (h *LSSHandler) CompleteDMAICPhase(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req completePhaseBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.lssService.CompleteDMAICPhase(claims, id, req.Summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpsertMetric handles PUT /lss/metrics
// @Summary Create or replace a six sigma metric by name
// @Tags lss
// @Accept json
// @Produce json
// @Param metric body service.UpsertMetricRequest true "Metric data"
// @Success 200 {object} models.SixSigmaMetric
// @Security BearerAuth
// @Router /lss/metrics [put]
func (h *LSSHandler) UpsertMetric(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.UpsertMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	metric, err := h.lssService.UpsertMetric(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

// ListMetrics handles GET /projects/:id/metrics
// @Summary List a project's six sigma metrics
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.SixSigmaMetric
// @Security BearerAuth
// @Router /projects/{id}/metrics [get]
func (h *LSSHandler) ListMetrics(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	metrics, err := h.lssService.ListMetrics(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// CreateHypothesisTest handles POST /lss/hypothesis-tests
// @Summary Record a hypothesis test (black belt projects only)
// @Tags lss
// @Accept json
// @Produce json
// @Param test body service.CreateHypothesisTestRequest true "Test data"
// @Success 201 {object} models.HypothesisTest
// @Failure 409 {object} ErrorResponse "Project is not black belt"
// @Security BearerAuth
// @Router /lss/hypothesis-tests [post]
func (h *LSSHandler) CreateHypothesisTest(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateHypothesisTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.lssService.CreateHypothesisTest(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

// ListHypothesisTests handles GET /projects/:id/hypothesis-tests
// @Summary List a project's hypothesis tests
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.HypothesisTest
// @Security BearerAuth
// @Router /projects/{id}/hypothesis-tests [get]
func (h *LSSHandler) ListHypothesisTests(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tests, err := h.lssService.ListHypothesisTests(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// CreateDoE handles POST /lss/experiments
// @Summary Record a designed experiment (black belt projects only)
// @Tags lss
// @Accept json
// @Produce json
// @Param experiment body service.CreateDoERequest true "Experiment data"
// @Success 201 {object} models.DoExperiment
// @Security BearerAuth
// @Router /lss/experiments [post]
func (h *LSSHandler) CreateDoE(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateDoERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	experiment, err := h.lssService.CreateDoE(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experiment)
}

// ListDoE handles GET /projects/:id/experiments
// @Summary List a project's designed experiments
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.DoExperiment
// @Security BearerAuth
// @Router /projects/{id}/experiments [get]
func (h *LSSHandler) ListDoE(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	experiments, err := h.lssService.ListDoE(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiments)
}

// CreateSPCChart handles POST /lss/spc-charts
// @Summary Record an SPC chart definition (black belt projects only)
// @Tags lss
// @Accept json
// @Produce json
// @Param chart body service.CreateSPCChartRequest true "Chart data"
// @Success 201 {object} models.SPCChart
// @Failure 400 {object} ErrorResponse "Control limits out of order"
// @Security BearerAuth
// @Router /lss/spc-charts [post]
func (h *LSSHandler) CreateSPCChart(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateSPCChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chart, err := h.lssService.CreateSPCChart(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chart)
}

// ListSPCCharts handles GET /projects/:id/spc-charts
// @Summary List a project's SPC charts
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.SPCChart
// @Security BearerAuth
// @Router /projects/{id}/spc-charts [get]
func (h *LSSHandler) ListSPCCharts(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	charts, err := h.lssService.ListSPCCharts(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, charts)
}

// CreateControlPlan handles POST /lss/control-plans
// @Summary Record a control plan
// @Tags lss
// @Accept json
// @Produce json
// @Param plan body service.CreateControlPlanRequest true "Plan data"
// @Success 201 {object} models.ControlPlan
// @Security BearerAuth
// @Router /lss/control-plans [post]
func (h *LSSHandler) CreateControlPlan(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req service.CreateControlPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.lssService.CreateControlPlan(claims, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// ListControlPlans handles GET /projects/:id/control-plans
// @Summary List a project's control plans
// @Tags lss
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {array} models.ControlPlan
// @Security BearerAuth
// @Router /projects/{id}/control-plans [get]
func (h *LSSHandler) ListControlPlans(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plans, err := h.lssService.ListControlPlans(claims, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}
