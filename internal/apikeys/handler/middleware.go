package handler

import (
	"context"

	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/CodeRohanDev/FastSubmit-sub004/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// KeyValidator resolves an API key to its owning user; satisfied by
// *service.KeyService via ValidateWithCache.
type KeyValidator interface {
	ValidateWithCache(ctx context.Context, presentedKey string) (string, error)
}

// RequireKey guards the server-to-server API. The key comes from the
// x-api-key header, or the api_key query parameter on GET requests. Missing
// key -> 401, invalid key -> 403.
func RequireKey(validator KeyValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("x-api-key")
		if key == "" && c.Method() == fiber.MethodGet {
			key = c.Query("api_key")
		}
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fserrors.ErrMissingAPIKey.Error(),
			})
		}

		userID, err := validator.ValidateWithCache(c.Context(), key)
		if err != nil {
			return c.Status(fserrors.StatusOf(err)).JSON(fiber.Map{"error": err.Error()})
		}

		c.Locals(identity.LocalsUserID, userID)
		return c.Next()
	}
}
