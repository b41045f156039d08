package events

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"honorsinventory/internal/pkg/response"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler builds the change feed endpoint. Browser origins are checked
// against allowedOrigins; "*" allows any, and requests without an Origin
// header (non-browser clients) are always accepted.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Subscribe upgrades to a websocket and streams change events.
// GET /api/ws/equipment
func (h *Handler) Subscribe(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "Websocket upgrade required")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.log.Warn("change feed upgrade failed", zap.Error(err))
		return
	}
	h.hub.Serve(conn)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/equipment", h.Subscribe)
}
