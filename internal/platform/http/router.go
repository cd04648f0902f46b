package http

import "github.com/gofiber/fiber/v2"

type Module interface {
	Register(r fiber.Router) // каждый модуль регистрирует свои маршруты сам
}

// SessionID returns the browsing-session id set by BrowsingSession.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionLocal).(string)
	return sid
}
