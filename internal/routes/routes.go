// Package routes defines the HTTP routes of the contact management service.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mrifkiw/contact-management/internal/config"
	"github.com/mrifkiw/contact-management/internal/handlers"
	"github.com/mrifkiw/contact-management/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handlers bundles the handler set wired into the router.
type Handlers struct {
	User    *handlers.UserHandler
	Contact *handlers.ContactHandler
	Address *handlers.AddressHandler
	Health  *handlers.HealthHandler
}

// Setup configures middleware and routes on the given engine. Registration
// and login are the only API routes outside the auth guard.
func Setup(router *gin.Engine, h Handlers, auth *middleware.AuthMiddleware, cfg *config.Config, log *zap.SugaredLogger) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(),
		cors.New(corsConfig),
	)

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.POST("/users", h.User.Register)
	api.POST("/users/login", h.User.Login)

	authorized := api.Group("", auth.RequireAuth())
	{
		authorized.GET("/users/current", h.User.Current)
		authorized.PATCH("/users/current", h.User.Update)
		authorized.DELETE("/users/logout", h.User.Logout)

		authorized.POST("/contacts", h.Contact.Create)
		authorized.GET("/contacts", h.Contact.Search)
		authorized.GET("/contacts/:contactId", h.Contact.Get)
		authorized.PUT("/contacts/:contactId", h.Contact.Update)
		authorized.DELETE("/contacts/:contactId", h.Contact.Delete)

		authorized.POST("/contacts/:contactId/addresses", h.Address.Create)
		authorized.GET("/contacts/:contactId/addresses", h.Address.List)
		authorized.GET("/contacts/:contactId/addresses/:addressId", h.Address.Get)
		authorized.PUT("/contacts/:contactId/addresses/:addressId", h.Address.Update)
		authorized.DELETE("/contacts/:contactId/addresses/:addressId", h.Address.Delete)
	}
}
