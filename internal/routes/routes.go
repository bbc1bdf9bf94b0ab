package routes

import (
	"net/http"

	"freehunt_backend/internal/config"
	"freehunt_backend/internal/handlers"
	"freehunt_backend/internal/middleware"
	"freehunt_backend/ws"

	"github.com/gin-gonic/gin"
)

// Setup wires the middleware chain and every route group onto the engine.
func Setup(engine *gin.Engine, h *handlers.AppHandlers, manager *ws.Manager, cfg *config.Config) {
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogging())
	engine.Use(middleware.CORS(cfg.CORS))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	h.Auth.RegisterPublicRoutes(api)
	h.JobPosting.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.AuthMiddleware(cfg.JWT.Secret))

	h.Auth.RegisterProtectedRoutes(protected)
	h.User.RegisterRoutes(protected)
	h.JobPosting.RegisterRoutes(protected)
	h.Candidate.RegisterRoutes(protected)
	h.Checkpoint.RegisterRoutes(protected)
	h.Project.RegisterRoutes(protected)
	h.Chat.RegisterRoutes(protected)

	protected.GET("/ws", ws.ServeWS(manager))
}
