// Package main is the entry point for the todo service.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ededddy/todo-api/internal/config"
	"github.com/ededddy/todo-api/internal/database"
	"github.com/ededddy/todo-api/internal/handlers"
	"github.com/ededddy/todo-api/internal/metrics"
	"github.com/ededddy/todo-api/internal/repository"
	"github.com/ededddy/todo-api/internal/routes"
	"github.com/ededddy/todo-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// @title Todo Service API
// @version 1.0
// @description Todo CRUD API with JWT bearer authentication
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Failed to disconnect from database:", err)
		}
	}()

	db := client.Database(cfg.DatabaseName)
	if err := database.EnsureCollections(ctx, db, cfg.TodoCollection, cfg.UserCollection); err != nil {
		log.Fatal("Failed to ensure collections:", err)
	}
	if err := database.EnsureUserIndexes(ctx, db, cfg.UserCollection); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	// Repositories
	todoRepo := repository.NewTodoRepository(db.Collection(cfg.TodoCollection))
	userRepo := repository.NewUserRepository(db.Collection(cfg.UserCollection))

	// Services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, jwtService)
	todoService := service.NewTodoService(todoRepo)

	// Handlers
	todoHandler := handlers.NewTodoHandler(todoService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(mongoPinger{client: client})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	m := metrics.New(prometheus.DefaultRegisterer)
	routes.Setup(router, cfg, authService, todoHandler, authHandler, healthHandler, m)

	log.Printf("Starting todo service on port %s", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// mongoPinger adapts the mongo client to the health handler.
type mongoPinger struct {
	client *mongo.Client
}

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
