package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the domain management endpoints. All of them require
// a dashboard session.
func RegisterRoutes(app *fiber.App, h *DomainHandler, requireSession fiber.Handler) {
	domains := app.Group("/api/v1/domains", requireSession)
	domains.Post("/", h.Register)
	domains.Get("/", h.List)
	domains.Post("/:id/verify", h.Verify)
	domains.Delete("/:id", h.Delete)
}
