package events

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honorsinventory/internal/domain"
)

func setupFeed(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(nil)
	r := gin.New()
	NewHandler(hub, []string{"http://localhost:5173"}).RegisterRoutes(r.Group("/api"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/equipment"
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(url, header)
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Clients() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastsToSubscribers(t *testing.T) {
	hub, srv := setupFeed(t)

	a, _, err := dial(t, srv, "")
	require.NoError(t, err)
	defer a.Close()
	b, _, err := dial(t, srv, "http://localhost:5173")
	require.NoError(t, err)
	defer b.Close()
	waitForClients(t, hub, 2)

	hub.Publish(domain.Event{
		Type:        domain.EventEquipmentTransferred,
		EquipmentID: 7,
		Equipment:   &domain.EquipmentView{ID: 7, LocationName: "HON 3017"},
		At:          time.Now().UTC(),
	})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)

		var got domain.Event
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, domain.EventEquipmentTransferred, got.Type)
		assert.Equal(t, int64(7), got.EquipmentID)
		assert.Equal(t, "HON 3017", got.Equipment.LocationName)
	}
}

func TestHub_UnregistersOnClose(t *testing.T) {
	hub, srv := setupFeed(t)

	conn, _, err := dial(t, srv, "")
	require.NoError(t, err)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)

	// Publishing with nobody listening is a no-op.
	hub.Publish(domain.Event{Type: domain.EventEquipmentDeleted, EquipmentID: 1})
}

func TestHandler_RejectsForeignOrigin(t *testing.T) {
	_, srv := setupFeed(t)

	_, resp, err := dial(t, srv, "http://evil.example")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHandler_RequiresUpgrade(t *testing.T) {
	_, srv := setupFeed(t)

	resp, err := http.Get(srv.URL + "/api/ws/equipment")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_DropsEventsForSlowClient(t *testing.T) {
	hub := NewHub(nil)
	c := &connection{send: make(chan []byte, 1)}
	hub.register(c)

	hub.Publish(domain.Event{Type: domain.EventEquipmentCreated, EquipmentID: 1})
	hub.Publish(domain.Event{Type: domain.EventEquipmentCreated, EquipmentID: 2})

	assert.Len(t, c.send, 1)
	hub.unregister(c)
	assert.Equal(t, 0, hub.Clients())
}
