package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"tourline/internal/services"
)

// upgrader configures the WebSocket connection for check-in subscribers.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // viewers connect from the app's web origin and LIFF
	},
}

type RealtimeController struct {
	hub *services.CheckinHub
}

func NewRealtimeController(hub *services.CheckinHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

// Subscribe godoc
// @Summary Subscribe to check-in change events
// @Description WebSocket stream of INSERT/DELETE/SOS events. Events are not
// filtered by group; clients cross-reference traveler ids against their
// roster. Reconnection is the client's responsibility.
// @Tags CheckIn
// @Router /ws/checkins [get]
func (r *RealtimeController) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("websocket upgrade failed")
		return
	}

	r.hub.Register(conn)
	defer r.hub.Unregister(conn)

	// The stream is server-to-client; the read loop only detects closure.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
