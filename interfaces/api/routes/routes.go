package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskflow-api/interfaces/api/handlers"
	"taskflow-api/interfaces/api/middleware"
	"taskflow-api/pkg/ratelimit"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, limiter *ratelimit.Limiter) {
	SetupHealthRoutes(app, h)

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(limiter))

	SetupTaskRoutes(api, h)
}
