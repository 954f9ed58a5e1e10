package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only methodology and enum catalog
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListMethodologies handles GET /catalog/methodologies
// @Summary List the supported methodologies
// @Tags catalog
// @Produce json
// @Success 200 {array} service.MethodologyInfo
// @Router /catalog/methodologies [get]
func (h *CatalogHandler) ListMethodologies(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListMethodologies(c.Request.Context()))
}

// GetMethodology handles GET /catalog/methodologies/:key
// @Summary Get a single methodology entry
// @Tags catalog
// @Produce json
// @Param key path string true "Methodology key"
// @Success 200 {object} service.MethodologyInfo
// @Failure 404 {object} ErrorResponse "Unknown methodology"
// @Router /catalog/methodologies/{key} [get]
func (h *CatalogHandler) GetMethodology(c *gin.Context) {
	info, ok := h.catalogService.GetMethodology(models.Methodology(c.Param("key")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown methodology"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// ListStatuses handles GET /catalog/statuses
// @Summary List the work lifecycle statuses
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/statuses [get]
func (h *CatalogHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListStatuses())
}

// ListPriorities handles GET /catalog/priorities
// @Summary List the MoSCoW priorities
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/priorities [get]
func (h *CatalogHandler) ListPriorities(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListPriorities())
}

// ListDependencyTypes handles GET /catalog/dependency-types
// @Summary List the dependency relation types
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/dependency-types [get]
func (h *CatalogHandler) ListDependencyTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListDependencyTypes())
}

// ListFrameworks handles GET /catalog/frameworks
// @Summary List the programme governance frameworks
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/frameworks [get]
func (h *CatalogHandler) ListFrameworks(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListFrameworks())
}

// ListDMAICPhases handles GET /catalog/dmaic-phases
// @Summary List the DMAIC phases in order
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/dmaic-phases [get]
func (h *CatalogHandler) ListDMAICPhases(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListDMAICPhases())
}

// ListEnums handles GET /catalog/enums
// @Summary List the closed enum vocabularies
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/enums [get]
func (h *CatalogHandler) ListEnums(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses":         h.catalogService.ListStatuses(),
		"priorities":       h.catalogService.ListPriorities(),
		"dependency_types": h.catalogService.ListDependencyTypes(),
		"frameworks":       h.catalogService.ListFrameworks(),
		"dmaic_phases":     h.catalogService.ListDMAICPhases(),
	})
}
