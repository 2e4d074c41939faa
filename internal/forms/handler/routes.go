package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the server-to-server forms API behind API key auth.
func RegisterRoutes(app *fiber.App, h *FormHandler, requireKey fiber.Handler) {
	forms := app.Group("/v1/forms", requireKey)
	forms.Post("/", h.Create)
	forms.Get("/", h.List)
	forms.Get("/:id", h.Get)
	forms.Put("/:id/domains", h.SetAllowedDomains)
	forms.Delete("/:id", h.Delete)
}
