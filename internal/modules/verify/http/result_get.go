package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"prodcheck/internal/modules/verify/domain"
	plathttp "prodcheck/internal/platform/http"
)

// ResultPageHandler renders the handed-off result. Without one the visitor
// is sent back to the entry page.
func ResultPageHandler(store domain.HandoffStore, entryURL string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := plathttp.SessionID(c)
		r, err := store.Read(c.UserContext(), sid)
		if errors.Is(err, domain.ErrHandoffMissing) {
			log.Debug("handoff missing, redirecting", zap.String("session_id", sid))
			return c.Redirect(entryURL, fiber.StatusSeeOther)
		}
		if err != nil {
			log.Error("handoff read failed", zap.String("session_id", sid), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read the verification result")
		}
		return renderPage(c, fiber.StatusOK, resultPage, resultData{View: viewFor(r)})
	}
}

func GetResultHandler(store domain.HandoffStore, entryURL string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := plathttp.SessionID(c)
		r, err := store.Read(c.UserContext(), sid)
		if errors.Is(err, domain.ErrHandoffMissing) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error_code": "HANDOFF_MISSING",
				"message":    "No verification result for this session",
				"redirect":   entryURL,
			})
		}
		if err != nil {
			log.Error("handoff read failed", zap.String("session_id", sid), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "STORE_UNAVAILABLE",
				"message":    "Could not read the verification result",
			})
		}
		return c.JSON(viewFor(r))
	}
}
