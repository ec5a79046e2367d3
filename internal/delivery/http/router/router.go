// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pharmadz/internal/delivery/http/middleware"
	"pharmadz/internal/delivery/http/router/handler"
	"pharmadz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PharmacyHandler     *handler.PharmacyHandler
	ChatHandler         *handler.ChatHandler
	PrescriptionHandler *handler.PrescriptionHandler
	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pharmacyHandler     *handler.PharmacyHandler
	chatHandler         *handler.ChatHandler
	prescriptionHandler *handler.PrescriptionHandler
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pharmacyHandler:     params.PharmacyHandler,
		chatHandler:         params.ChatHandler,
		prescriptionHandler: params.PrescriptionHandler,
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/pharmacy", r.authHandler.RegisterPharmacy)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/admin/login", r.authHandler.AdminLogin)
		authGroup.GET("/admin/callback", r.authHandler.AdminCallback)
		authGroup.POST("/admin/token", r.authHandler.AdminTokenLogin)
	}

	// Public API routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/pharmacies", r.pharmacyHandler.ListPharmacies)
		apiGroup.GET("/pharmacies/:id", r.pharmacyHandler.GetPharmacy)
		apiGroup.POST("/search-medication", r.pharmacyHandler.SearchMedication)
		apiGroup.POST("/chat/:pharmacy_id", r.chatHandler.Chat)
		apiGroup.POST("/prescriptions", r.prescriptionHandler.SubmitPrescription)
		apiGroup.GET("/prescriptions/:userID", r.prescriptionHandler.ListUserPrescriptions)
	}

	// Stock replacement requires authentication; ownership is enforced in the handler
	stockGroup := e.Group("/api/pharmacies/:id/stock")
	stockGroup.Use(r.authMiddleware.Authenticate)
	{
		stockGroup.POST("", r.pharmacyHandler.ReplaceStock)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/api/pharmacies")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("", r.pharmacyHandler.CreatePharmacy)
		adminGroup.PATCH("/:id", r.pharmacyHandler.UpdatePharmacy)
	}
}
