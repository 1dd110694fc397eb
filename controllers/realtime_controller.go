package controllers

import (
	"net/http"

	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/services"
	"github.com/Gokulsuresh1918/winter-arc/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var hub *services.RealtimeHub

// InitRealtime wires the websocket hub used by ServeWS.
func InitRealtime(h *services.RealtimeHub) {
	hub = h
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS layer in front of the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and keeps it registered with the hub until
// the client goes away. The read loop only drains control frames; all traffic
// is server to client.
func ServeWS(c *gin.Context) {
	userID := middlewares.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Sugar.Warnw("websocket upgrade failed", "error", err, "userId", userID)
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	hub.Register(client)

	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
