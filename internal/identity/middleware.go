package identity

import (
	"strings"

	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// LocalsUserID is the fiber.Ctx locals key under which RequireSession stores
// the authenticated user id.
const LocalsUserID = "userID"

// RequireSession rejects requests without a valid "Authorization: Bearer"
// session token and stores the user id for downstream handlers.
func RequireSession(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fserrors.ErrMissingSession.Error(),
			})
		}

		claims, err := verifier.VerifySessionToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fserrors.ErrMissingSession.Error(),
			})
		}

		c.Locals(LocalsUserID, claims.UserID)
		return c.Next()
	}
}

// UserID returns the user id stored by RequireSession, or "" when the
// request did not pass through it.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsUserID).(string)
	return id
}
