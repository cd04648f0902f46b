package http

import (
	"github.com/gofiber/fiber/v2"

	"prodcheck/internal/platform/security"
)

const (
	SessionCookie = "pc_session"
	sessionLocal  = "session_id"
)

// BrowsingSession binds every request to a browsing session. A missing,
// expired or forged cookie starts a fresh session, which holds nothing.
// The cookie has no Max-Age, so it dies with the browser session.
func BrowsingSession(mgr *security.SessionManager, secure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid, err := mgr.Parse(c.Cookies(SessionCookie)); err == nil {
			c.Locals(sessionLocal, sid)
			return c.Next()
		}

		token, sid, _, err := mgr.Issue()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "SESSION_UNAVAILABLE",
				"message":    "Could not start a browsing session",
			})
		}
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
			Secure:   secure,
			SameSite: fiber.CookieSameSiteLaxMode,
			// session-scoped: no MaxAge, no Expires
			SessionOnly: true,
		})
		c.Locals(sessionLocal, sid)
		return c.Next()
	}
}
