package http

import (
	"github.com/gofiber/fiber/v2"

	"prodcheck/internal/modules/verify/domain"
)

func EntryPageHandler(v *domain.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderPage(c, fiber.StatusOK, entryPage, entryData{Min: v.MinLength(), Max: v.MaxLength()})
	}
}
