package http

import (
	"github.com/gofiber/fiber/v2"

	"prodcheck/internal/modules/verify/domain"
	plathttp "prodcheck/internal/platform/http"
)

// HomeHandler is the "navigate home" action: clear, then back to entry.
func HomeHandler(store domain.HandoffStore, entryURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Clear(c.UserContext(), plathttp.SessionID(c)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not reset the session")
		}
		return c.Redirect(entryURL, fiber.StatusSeeOther)
	}
}

func ClearResultHandler(store domain.HandoffStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := store.Clear(c.UserContext(), plathttp.SessionID(c)); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "STORE_UNAVAILABLE",
				"message":    "Could not reset the session",
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
