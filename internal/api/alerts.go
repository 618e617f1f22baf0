package api

import (
	"net/http"
	"time"

	"algonest_webclient/internal/alert"
	"algonest_webclient/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type alertRoutes struct {
	*handler
}

func NewAlertRoutes(g *gin.RouterGroup, h *handler) {
	r := &alertRoutes{handler: h}
	g.GET("/ws/alerts", r.handleWebSocket)
}

func (r *alertRoutes) handleWebSocket(c *gin.Context) {
	log := logger.Logger()

	s := r.session(c)
	if s == nil {
		log.Error("session not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	sub := r.alerts.Subscribe(s.ID)

	go r.readLoop(conn, sub)
	go r.AlertsLoop(conn, sub)
}

// readLoop drains client frames and ends the subscription on disconnect.
func (r *alertRoutes) readLoop(conn *websocket.Conn, sub *alert.Subscription) {
	defer r.alerts.Unsubscribe(sub)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// AlertsLoop forwards the session's alerts until the subscription closes.
func (r *alertRoutes) AlertsLoop(conn *websocket.Conn, sub *alert.Subscription) {
	log := logger.Logger()
	defer conn.Close()

	for a := range sub.C {
		out, err := json.Marshal(a)
		if err != nil {
			log.Error("failed to marshal alert", zap.Error(err))
			continue
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err = conn.WriteMessage(websocket.TextMessage, out); err != nil {
			log.Info("alert stream closed", zap.String("session_id", sub.SessionID.String()), zap.Error(err))
			r.alerts.Unsubscribe(sub)
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}
