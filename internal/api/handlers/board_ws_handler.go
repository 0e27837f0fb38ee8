package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/Sahindou/ifrit-ticket/internal/config"
	"github.com/Sahindou/ifrit-ticket/internal/realtime"
	"github.com/Sahindou/ifrit-ticket/pkg/response"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == config.Origin {
			return true
		}
		log.Printf("[ws] rejected origin %q", origin)
		return false
	},
}

type BoardHandler struct {
	hub *realtime.Hub
}

func NewBoardHandler(hub *realtime.Hub) *BoardHandler {
	return &BoardHandler{hub: hub}
}

// StreamBoard godoc
// @Summary Board change stream
// @Description WebSocket emitting {event, id, at} for every ticket or ticket type mutation.
// @Tags tickets
// @Security BearerAuth
// @Success 101
// @Failure 401 {object} response.ErrorResponse
// @Router /ws/tickets [get]
func (h *BoardHandler) StreamBoard(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already replied when the handshake was rejected
		if !c.Writer.Written() {
			response.Error(c, http.StatusInternalServerError, "websocket upgrade failed", err.Error())
		}
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	events, cancel := h.hub.Subscribe()
	defer cancel()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
