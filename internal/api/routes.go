// Package api contains the API routes for the Guide4360 API
package api

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/guide4360/guide4360api/internal/api/handlers"
	"github.com/guide4360/guide4360api/internal/api/middleware"
	"github.com/guide4360/guide4360api/internal/config"
	"github.com/guide4360/guide4360api/internal/service"
	"github.com/guide4360/guide4360api/pkg/utils/response"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {

	// Create a group for all API routes
	api := e.Group("/api")

	// Index route
	api.GET("/", func(c echo.Context) error {
		return response.SuccessResponse(c, fmt.Sprintf("%s %s", cfg.APIName, cfg.APIVersion))
	})

	// Auth routes (unprotected)
	authService := service.NewAuthService(db, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	authGroup := api.Group("/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/session", authHandler.Session)

	// Task routes (protected)
	taskService := service.NewTaskService(db, redisClient)
	taskHandler := handlers.NewTaskHandler(taskService)
	taskGroup := api.Group("/tasks")
	taskGroup.Use(middleware.AuthMiddleware(cfg))
	taskGroup.GET("", taskHandler.ListTasks)
	taskGroup.POST("", taskHandler.CreateTask)
	taskGroup.PUT("/:id", taskHandler.UpdateTask)
}
