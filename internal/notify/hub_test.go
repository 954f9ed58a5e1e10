package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wsPair upgrades one connection against a throwaway server and returns both
// ends. The server side is what the hub writes to; the client side is what a
// browser would read from.
func wsPair(t *testing.T) (server *websocket.Conn, client *websocket.Conn) {
	t.Helper()

	connCh := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		connCh <- conn
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	clientConn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientConn.Close(websocket.StatusNormalClosure, "") })

	serverConn := <-connCh
	t.Cleanup(func() { _ = serverConn.Close(websocket.StatusNormalClosure, "") })
	return serverConn, clientConn
}

func readNotification(t *testing.T, conn *websocket.Conn) *Notification {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, raw, err := conn.Read(ctx)
	require.NoError(t, err)
	var n Notification
	require.NoError(t, json.Unmarshal(raw, &n))
	return &n
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()
	companyID := uuid.New()
	sub := &subscriber{}

	assert.Equal(t, 0, hub.SubscriberCount(&companyID))

	hub.register(&companyID, sub)
	assert.Equal(t, 1, hub.SubscriberCount(&companyID))

	hub.unregister(&companyID, sub)
	assert.Equal(t, 0, hub.SubscriberCount(&companyID))
	assert.Empty(t, hub.rooms)
}

func TestHubPublishReachesTenantRoom(t *testing.T) {
	hub := NewHub()
	companyID := uuid.New()
	serverConn, clientConn := wsPair(t)
	hub.register(&companyID, &subscriber{conn: serverConn})

	hub.Publish(&companyID, "project.created", "Project created", "Platform Rebuild")

	n := readNotification(t, clientConn)
	assert.Equal(t, "project.created", n.Topic)
	assert.Equal(t, "Project created", n.Title)
	assert.Equal(t, "Platform Rebuild", n.Message)
	assert.WithinDuration(t, time.Now(), n.Timestamp, 10*time.Second)
}

func TestHubPublishIsTenantScoped(t *testing.T) {
	hub := NewHub()
	companyA := uuid.New()
	companyB := uuid.New()
	serverA, clientA := wsPair(t)
	serverB, clientB := wsPair(t)
	hub.register(&companyA, &subscriber{conn: serverA})
	hub.register(&companyB, &subscriber{conn: serverB})

	hub.Publish(&companyA, "scrum.iteration.started", "Sprint started", "Sprint 1")
	hub.Publish(&companyB, "kanban.card.moved", "Card moved", "Doing")

	// Each client's first frame is its own room's notification.
	assert.Equal(t, "scrum.iteration.started", readNotification(t, clientA).Topic)
	assert.Equal(t, "kanban.card.moved", readNotification(t, clientB).Topic)
}

func TestHubGlobalPublishReachesEveryRoom(t *testing.T) {
	hub := NewHub()
	companyA := uuid.New()
	companyB := uuid.New()
	serverA, clientA := wsPair(t)
	serverB, clientB := wsPair(t)
	hub.register(&companyA, &subscriber{conn: serverA})
	hub.register(&companyB, &subscriber{conn: serverB})

	hub.Publish(nil, "system.announcement", "Maintenance", "Sunday 02:00 UTC")

	assert.Equal(t, "system.announcement", readNotification(t, clientA).Topic)
	assert.Equal(t, "system.announcement", readNotification(t, clientB).Topic)
}

func TestNewHubOriginPatterns(t *testing.T) {
	hub := NewHub("http://localhost:3000", "https://app.example.com")
	assert.False(t, hub.anyOrigin)
	assert.Equal(t, []string{"localhost:3000", "app.example.com"}, hub.originPatterns)

	hub = NewHub("*")
	assert.True(t, hub.anyOrigin)
	assert.Empty(t, hub.originPatterns)
}

func TestServeWSOriginAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub("http://app.example.com")
	companyID := uuid.New()

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		c.Set("auth_claims", &auth.Claims{
			UserID:    uuid.New(),
			Email:     "manager@test.com",
			Role:      models.RoleManager,
			CompanyID: &companyID,
		})
		hub.ServeWS(c)
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"http://evil.example.com"}},
	})
	require.Error(t, err)

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"http://app.example.com"}},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	assert.Eventually(t, func() bool {
		return hub.SubscriberCount(&companyID) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHubDropsDeadSubscriber(t *testing.T) {
	hub := NewHub()
	companyID := uuid.New()
	serverConn, clientConn := wsPair(t)
	hub.register(&companyID, &subscriber{conn: serverConn})

	_ = clientConn.Close(websocket.StatusNormalClosure, "")
	_ = serverConn.Close(websocket.StatusNormalClosure, "")

	hub.Publish(&companyID, "project.created", "Project created", "unreachable")

	assert.Equal(t, 0, hub.SubscriberCount(&companyID))
}
