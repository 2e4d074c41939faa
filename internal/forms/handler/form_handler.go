package handler

import (
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/dto"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/service"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type FormHandler struct {
	forms *service.FormService
}

func NewFormHandler(forms *service.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

func (h *FormHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateFormInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	form, err := h.forms.Create(c.Context(), identity.UserID(c), input)
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToFormOutput(form))
}

func (h *FormHandler) Get(c *fiber.Ctx) error {
	form, err := h.forms.Get(c.Context(), c.Params("id"), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToFormOutput(form))
}

func (h *FormHandler) List(c *fiber.Ctx) error {
	forms, err := h.forms.List(c.Context(), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]dto.FormOutput, 0, len(forms))
	for i := range forms {
		out = append(out, dto.ToFormOutput(&forms[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *FormHandler) SetAllowedDomains(c *fiber.Ctx) error {
	var input dto.SetAllowedDomainsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	form, err := h.forms.SetAllowedDomains(c.Context(), c.Params("id"), identity.UserID(c), input.Domains)
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToFormOutput(form))
}

func (h *FormHandler) Delete(c *fiber.Ctx) error {
	if err := h.forms.Delete(c.Context(), c.Params("id"), identity.UserID(c)); err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}
