package notify

import (
	"log"
	"net/http"
	"strings"
	"time"

	"axishotel/internal/pkg/jwt"
	"axishotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	readWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// origin enforcement happens at the CORS layer for the REST API;
		// the feed is gated by the token check below
		return true
	},
}

// WSHandler upgrades admin dashboard connections to the live inquiry feed.
type WSHandler struct {
	hub        *Hub
	jwtService *jwt.Service
	adminEmail string
}

func NewWSHandler(hub *Hub, jwtService *jwt.Service, adminEmail string) *WSHandler {
	return &WSHandler{
		hub:        hub,
		jwtService: jwtService,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
	}
}

// HandleFeed serves GET /admin/inquiries/feed?token=JWT. The token rides a
// query parameter because browsers cannot set headers on websocket dials.
// The same gate as the REST admin routes applies: admin role plus the one
// configured administrator address.
func (h *WSHandler) HandleFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required")
		return
	}

	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
		return
	}

	if claims.Role != "admin" || !strings.EqualFold(claims.Email, h.adminEmail) {
		response.Error(c, http.StatusForbidden, "ACCESS_DENIED",
			"You do not have permission to view the Admin Dashboard.")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(claims.UserID, conn)

	defer func() {
		h.hub.Unregister(claims.UserID)
	}()

	// arm the deadline before the first read so a peer that dies without
	// ever answering a ping still times out
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readWait))
	})

	go h.pingLoop(claims.UserID)

	// drain client frames until the peer goes away; the feed is one-way
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("feed connection error for user %d: %v", claims.UserID, err)
			}
			return
		}
	}
}

// pingLoop keeps the connection alive. Pings go through the hub so they
// share the per-connection write lock with broadcasts; the loop stops once
// the connection is unregistered.
func (h *WSHandler) pingLoop(userID int64) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := h.hub.Ping(userID); err != nil {
			return
		}
	}
}
