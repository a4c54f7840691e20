package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/errs"
	"github.com/zizouhuweidi/trivia/internal/middleware"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// WebSocketHandler streams question events over websocket connections
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// Register registers the feed route
func (h *WebSocketHandler) Register(e *echo.Echo) {
	e.GET("/ws", h.HandleWebSocket)
}

// HandleWebSocket subscribes the connection to question events. The optional
// category query parameter narrows the feed to one category.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	category := domain.AllCategories
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return errs.NewBadRequestError("category must be a non-negative integer")
		}
		category = id
	}

	// Upgrade writes its own error response on failure.
	conn, err := ws.Upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		middleware.GetLogger(c).Debug().Err(err).Msg("websocket upgrade failed")
		return nil
	}

	client := ws.NewClient(h.hub, conn, category)
	if !h.hub.Register(client) {
		conn.Close()
		return nil
	}

	go client.ReadPump()
	go client.WritePump()

	return nil
}
