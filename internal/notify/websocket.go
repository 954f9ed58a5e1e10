package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// inbound is a client-originated broadcast to the caller's tenant room.
type inbound struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type socketError struct {
	Error string `json:"error"`
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, raw)
}

// ServeWS upgrades the request and pins the connection to the caller's
// tenant room. Inbound frames are user broadcasts: well-formed JSON with a
// title and message fans out to the room; anything else gets an error frame
// back on the same socket.
func (h *Hub) ServeWS(c *gin.Context) {
	claims, ok := auth.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	// Super admins may sit in any tenant room.
	room := claims.CompanyID
	if raw := c.Query("company_id"); raw != "" {
		if claims.Role != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "company_id override requires super admin"})
			return
		}
		companyID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company_id"})
			return
		}
		room = &companyID
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns:     h.originPatterns,
		InsecureSkipVerify: h.anyOrigin,
	})
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	sub := &subscriber{conn: conn}
	h.register(room, sub)
	defer h.unregister(room, sub)

	ctx := c.Request.Context()
	for {
		_, raw, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Title == "" {
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			_ = writeJSON(writeCtx, conn, &socketError{Error: "expected {\"title\": ..., \"message\": ...}"})
			cancel()
			continue
		}
		h.Publish(room, "notification.user.broadcast", msg.Title, msg.Message)
	}
}
