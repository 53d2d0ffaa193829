// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"patrol/internal/delivery/api/middleware"
	"patrol/internal/delivery/api/router/handler"
	"patrol/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler   *handler.LocationHandler
	CheckpointHandler *handler.CheckpointHandler
	PhotoHandler      *handler.PhotoHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler   *handler.LocationHandler
	checkpointHandler *handler.CheckpointHandler
	photoHandler      *handler.PhotoHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:   params.LocationHandler,
		checkpointHandler: params.CheckpointHandler,
		photoHandler:      params.PhotoHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", handler.HealthCheck)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	authed.GET("/me", handler.WhoAmI)

	locationsGroup := authed.Group("/locations")
	{
		locationsGroup.POST("/batch", r.locationHandler.UploadBatch)
		locationsGroup.GET("/:id/patrol-status", r.checkpointHandler.GetPatrolStatus)
	}

	checkpointsGroup := authed.Group("/checkpoints")
	{
		checkpointsGroup.GET("/nearby", r.checkpointHandler.GetNearbyCheckpoints)
		checkpointsGroup.POST("/verify", r.checkpointHandler.VerifyCheckpoint)
		checkpointsGroup.POST("/verify/tag", r.checkpointHandler.VerifyCheckpointTag)
		checkpointsGroup.GET("/:id/tag", r.checkpointHandler.GetCheckpointTag,
			r.authMiddleware.RequireRole(entity.RoleSupervisor))
	}

	photosGroup := authed.Group("/photos")
	{
		photosGroup.POST("", r.photoHandler.UploadPhoto)
		photosGroup.GET("/:id", r.photoHandler.GetPhoto)
		photosGroup.GET("/:id/content", r.photoHandler.GetPhotoContent)
		photosGroup.DELETE("/:id", r.photoHandler.DeletePhoto)
	}
}
