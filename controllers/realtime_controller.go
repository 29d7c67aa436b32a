package controllers

import (
	"net/http"
	"time"

	"github.com/Ramo-11/united-masjid-help/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// ProgressWS streams weekly-progress snapshots for one pantry so the
// public thermometer updates without polling.
func ProgressWS(c *gin.Context) {
	pantry := c.Param("pantry")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.ProgressClient{Pantry: pantry, Conn: conn}
	services.Progress.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				services.Progress.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error, then unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			services.Progress.Unregister(cl)
			return
		}
	}
}
