// Package router wires the API handlers to their routes.
package router

import (
	"lostfound/config"
	"lostfound/internal/delivery/api/middleware"
	"lostfound/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PostHandler         *handler.PostHandler
	UserHandler         *handler.UserHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	postHandler         *handler.PostHandler
	userHandler         *handler.UserHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		postHandler:         params.PostHandler,
		userHandler:         params.UserHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Browsing is public; a token only personalises the nearby listing.
	identify, authenticate := r.authMiddleware.Identify, r.authMiddleware.Authenticate
	posts := apiV1.Group("/posts")
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.GET("/nearby", r.postHandler.ListNearbyPosts, identify)
		posts.GET("/:id", r.postHandler.GetPost)
		posts.GET("/:id/qr", r.postHandler.PostQRCode)
		posts.POST("", r.postHandler.CreatePost, authenticate)
		posts.POST("/:id/resolve", r.postHandler.ResolvePost, authenticate)
		posts.DELETE("/:id", r.postHandler.DeletePost, authenticate)
	}

	me := apiV1.Group("/me", r.authMiddleware.Authenticate)
	{
		me.GET("", r.userHandler.GetProfile)
		me.PUT("", r.userHandler.SyncProfile)
		me.PUT("/location", r.userHandler.UpdateLocation)
	}

	notifications := apiV1.Group("/notifications", r.authMiddleware.Authenticate)
	{
		notifications.GET("", r.notificationHandler.ListNotifications)
		notifications.GET("/unread-count", r.notificationHandler.UnreadCount)
		notifications.POST("/read-all", r.notificationHandler.MarkAllRead)
		notifications.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	devices := apiV1.Group("/devices", r.authMiddleware.Authenticate)
	{
		devices.POST("", r.deviceHandler.RegisterDevice)
		devices.GET("", r.deviceHandler.GetUserDevices)
		devices.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
	testGroup.POST("/token", r.testHandler.IssueToken)
	testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
}
