// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TaskHandler    *handler.TaskHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	taskHandler    *handler.TaskHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		taskHandler:    params.TaskHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Task routes
	taskGroup := e.Group("/tasks")
	{
		taskGroup.POST("", r.taskHandler.CreateTask)
		taskGroup.GET("", r.taskHandler.ListTasks)
		taskGroup.PUT("/:id", r.taskHandler.UpdateTask)
		taskGroup.DELETE("/:id", r.taskHandler.DeleteTask)
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/whoami", r.authHandler.Whoami, r.authMiddleware.Authenticate)
	}
}
