package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laibam4/reelico/internal/handlers"
)

// Setup mounts the API surface. authGate guards the upload route; limiter
// may be a no-op when redis is not configured.
func Setup(app *fiber.App, ah *handlers.AuthHandler, vh *handlers.VideoHandler, authGate fiber.Handler, limiter fiber.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", ah.Register)
	auth.Post("/login", ah.Login)

	videos := api.Group("/videos")
	videos.Post("/upload", authGate, limiter, vh.Upload)
	videos.Get("/stream/:key", vh.Stream)
	videos.Get("/", vh.List)
}
