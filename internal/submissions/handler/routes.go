package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *SubmissionHandler, requireKey fiber.Handler) {
	// public submission endpoint; everything else about a form is gated
	app.Post("/s/:formId", h.Submit)

	app.Get("/v1/forms/:id/submissions", requireKey, h.List)
}
