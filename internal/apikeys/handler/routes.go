package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *KeyHandler, requireSession fiber.Handler) {
	keys := app.Group("/api/v1/keys", requireSession)
	keys.Get("/", h.Get)
	keys.Post("/regenerate", h.Regenerate)
}
