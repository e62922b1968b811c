package socket

import (
	"net/http"
	"strconv"

	"DevHub/config"
	"DevHub/pkg/jwt"
	"DevHub/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSHandler struct {
	Config *config.Config
	Hub    *Hub
	Notify service.INotificationService
}

func (h *WSHandler) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/ws", h.Serve)
	r.GET("/v1/presence/:user_id", h.Presence)
}

// Presence reports whether the user has a live connection on this node.
func (h *WSHandler) Presence(c *gin.Context) {
	uid, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || uid <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	online := h.Hub.Online.IsOnline(c.Request.Context(), h.Hub.Sid(), uid)
	c.JSON(http.StatusOK, gin.H{"user_id": uid, "online": online})
}

// Serve authenticates via the token query param, upgrades the connection and
// keeps it registered until the client goes away.
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	claims, err := jwt.ParseToken([]byte(h.Config.Jwt.Secret), "access", token)
	if err != nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	ctx := c.Request.Context()
	client := h.Hub.Register(ctx, conn, claims.UserID)
	defer h.Hub.Unregister(ctx, client)

	// Tell the client how much it missed while offline.
	if count, err := h.Notify.UnreadCount(ctx, claims.UserID); err == nil {
		_ = client.WriteJSON(gin.H{"type": "unread_count", "count": count})
	}

	for {
		var frame struct {
			Type       string `json:"type"`
			TargetType string `json:"target_type"`
			TargetID   int64  `json:"target_id"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			// client disconnect, nothing to log
			return
		}
		switch frame.Type {
		case "ping":
			client.Touch()
			_ = client.WriteJSON(gin.H{"type": "pong"})
		case "subscribe":
			if frame.TargetType != "" && frame.TargetID > 0 {
				client.Subscribe(TargetKey(frame.TargetType, frame.TargetID))
			}
		case "unsubscribe":
			if frame.TargetType != "" && frame.TargetID > 0 {
				client.Unsubscribe(TargetKey(frame.TargetType, frame.TargetID))
			}
		}
	}
}
