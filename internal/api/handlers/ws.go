// internal/api/handlers/ws.go
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/mdramjankhan/HireMe/internal/auth"
	"github.com/mdramjankhan/HireMe/internal/realtime"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
)

// WSHandler upgrades connections and streams push events to the caller.
type WSHandler struct {
	hub       *realtime.Hub
	jwtSecret string
	upgrader  websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub *realtime.Hub, jwtSecret string) *WSHandler {
	return &WSHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Cross-origin policy is handled by the CORS layer
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS godoc
// @Summary      Subscribe to push events
// @Description  Upgrades to a WebSocket and streams the caller's events as JSON.
// @Tags         realtime
// @Param        token query string false "JWT, for clients that cannot set headers"
// @Success      101 "Switching Protocols"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /ws [get]
// @Security     BearerAuth
func (h *WSHandler) ServeWS(c *gin.Context) {
	userID, err := h.authenticate(c)
	if err != nil {
		log.Printf("WS: authentication failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the error response
		log.Printf("WS: upgrade failed for user %s: %v", userID, err)
		return
	}

	events, cancel := h.hub.Subscribe(userID)
	log.Printf("WS: user %s connected", userID)

	// Reader drains control frames and detects the peer going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go h.writePump(conn, userID, events, cancel, done)
}

func (h *WSHandler) writePump(conn *websocket.Conn, userID uuid.UUID, events <-chan realtime.Event, cancel func(), done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		cancel()
		conn.Close()
		log.Printf("WS: user %s disconnected", userID)
	}()

	for {
		select {
		case event := <-events:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("WS: error writing event to user %s: %v", userID, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// authenticate accepts the token either as a bearer header or as a query
// parameter, since browser WebSocket clients cannot set headers.
func (h *WSHandler) authenticate(c *gin.Context) (uuid.UUID, error) {
	tokenString := c.Query("token")
	if tokenString == "" {
		header := c.GetHeader("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			tokenString = parts[1]
		}
	}

	claims, err := auth.ParseToken(h.jwtSecret, tokenString)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(claims.Subject)
}
