package handler

import (
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/dto"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/submissions/service"
	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	submits *service.SubmitService
}

func NewSubmissionHandler(submits *service.SubmitService) *SubmissionHandler {
	return &SubmissionHandler{submits: submits}
}

// Submit is the public endpoint embedded forms post to.
func (h *SubmissionHandler) Submit(c *fiber.Ctx) error {
	var data map[string]any
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	input := dto.SubmitInput{
		FormID:    c.Params("formId"),
		Origin:    requestOrigin(c),
		IPAddress: c.IP(),
		Data:      data,
	}

	sub, err := h.submits.Submit(c.Context(), input)
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": sub.ID, "success": true})
}

// List returns recent submissions for one of the API caller's forms.
func (h *SubmissionHandler) List(c *fiber.Ctx) error {
	subs, err := h.submits.ListForForm(c.Context(), c.Params("id"), identity.UserID(c), c.QueryInt("limit"))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]dto.SubmissionOutput, 0, len(subs))
	for i := range subs {
		out = append(out, dto.ToSubmissionOutput(&subs[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// requestOrigin prefers the Origin header and falls back to Referer, which
// some browsers send instead on form posts.
func requestOrigin(c *fiber.Ctx) string {
	if origin := c.Get("Origin"); origin != "" {
		return origin
	}
	return c.Get("Referer")
}
