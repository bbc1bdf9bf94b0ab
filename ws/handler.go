package ws

import (
	"net/http"

	"freehunt_backend/internal/logger"
	"freehunt_backend/internal/middleware"
	"freehunt_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is enforced by the CORS layer and the auth token.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an authenticated request to a websocket connection.
func ServeWS(manager *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserIDFromContext(c)
		role := middleware.RoleFromContext(c)
		if userID == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		client := NewClient(conn, manager, userID, models.UserRole(role))
		logger.Info("websocket connected", "user_id", userID)
		client.Run(c.Request.Context())
	}
}
