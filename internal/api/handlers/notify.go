package handlers

import (
	"net/http"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotifyHandler handles administrative notification broadcasts
type NotifyHandler struct {
	hub *notify.Hub
}

// NewNotifyHandler creates a new notify handler
func NewNotifyHandler(hub *notify.Hub) *NotifyHandler {
	return &NotifyHandler{hub: hub}
}

type broadcastBody struct {
	CompanyID *uuid.UUID `json:"company_id"`
	Title     string     `json:"title" binding:"required"`
	Message   string     `json:"message" binding:"required"`
}

// Broadcast handles POST /notifications/broadcast
// @Summary Push a notification to connected clients
// @Description Admins broadcast to their own company. Super admins may target any company, or all rooms by omitting company_id.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body broadcastBody true "Notification payload"
// @Success 202 {object} map[string]int "Number of subscribers reached"
// @Security BearerAuth
// @Router /notifications/broadcast [post]
func (h *NotifyHandler) Broadcast(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	var req broadcastBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Tenanted admins are pinned to their own room regardless of the body.
	companyID := req.CompanyID
	if claims.Role != models.RoleSuperAdmin {
		companyID = claims.CompanyID
	}

	h.hub.Publish(companyID, "notification.admin.broadcast", req.Title, req.Message)
	c.JSON(http.StatusAccepted, gin.H{"subscribers": h.hub.SubscriberCount(companyID)})
}
