// Package router sets up the HTTP routes for the Keksobooking API server.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/keksobooking/api/internal/apperr"
	"github.com/keksobooking/api/internal/http/handler"
	"github.com/keksobooking/api/internal/http/middleware"
)

// NewRouter initializes and returns the main Gin engine with all routes.
func NewRouter(h *handler.Handler, health *handler.HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(),
		middleware.ErrorRenderer(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	api.GET("/offers", h.List)
	api.POST("/offers", h.Create)
	api.GET("/offers/:date", h.Get)

	router.GET("/health", handler.Health)
	router.GET("/livez", health.Liveness)
	router.GET("/readyz", health.Readiness)

	// Anything outside the routes above is not implemented, by contract.
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.NewNotImplemented(c.Request.URL.Path + " is not implemented yet"))
	})

	return router
}
