// Package routes defines HTTP routes for the todo service.
package routes

import (
	"github.com/ededddy/todo-api/internal/config"
	"github.com/ededddy/todo-api/internal/handlers"
	"github.com/ededddy/todo-api/internal/metrics"
	"github.com/ededddy/todo-api/internal/middleware"
	"github.com/ededddy/todo-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup configures all HTTP routes for the application. The bearer-auth
// gate wraps only the /api group; health, metrics and the user routes
// stay open.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	todoHandler *handlers.TodoHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	m *metrics.Metrics,
) {
	router.Use(middleware.CORS(middleware.CORSConfig{AllowedOrigins: cfg.AllowedOrigins}))
	if m != nil {
		router.Use(m.Middleware())
	}

	router.GET("/healthchecks", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := router.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
	}

	api := router.Group("/api")
	api.Use(middleware.RequireAuth(authService))
	{
		api.GET("/todos", todoHandler.List)
		api.POST("/todos", todoHandler.Create)
		api.GET("/todos/:id", todoHandler.Get)
		api.PATCH("/todos/:id", todoHandler.Patch)
		api.DELETE("/todos/:id", todoHandler.Delete)
	}
}
