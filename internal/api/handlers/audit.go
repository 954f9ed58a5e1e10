package handlers

import (
	"net/http"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler serves the audit trail
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles GET /audit
// @Summary List audit entries, newest first
// @Tags audit
// @Produce json
// @Param entity_type query string false "Filter by entity type"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} listResponse
// @Security BearerAuth
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	page, pageSize := pageParams(c)

	entries, total, err := h.auditService.List(auth.ScopeFromClaims(claims), c.Query("entity_type"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse{Items: entries, Total: total, Page: page, PageSize: pageSize})
}
