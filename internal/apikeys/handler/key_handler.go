package handler

import (
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/apikeys/service"
	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type KeyHandler struct {
	keys *service.KeyService
}

func NewKeyHandler(keys *service.KeyService) *KeyHandler {
	return &KeyHandler{keys: keys}
}

func (h *KeyHandler) Get(c *fiber.Ctx) error {
	k, err := h.keys.GetOrCreate(c.Context(), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"apiKey": k.Key})
}

func (h *KeyHandler) Regenerate(c *fiber.Ctx) error {
	k, err := h.keys.Regenerate(c.Context(), identity.UserID(c))
	if err != nil {
		return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"apiKey": k.Key})
}
