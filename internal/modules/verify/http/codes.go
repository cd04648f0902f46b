package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"prodcheck/internal/modules/verify/domain"
)

type codeReq struct {
	Code json.RawMessage `json:"code"`
}

// text returns the code when it was sent as a JSON string. Any other value
// (number, object, null, absent) reads as empty and fails the format check.
func (r codeReq) text() string {
	var s string
	if err := json.Unmarshal(r.Code, &s); err != nil {
		return ""
	}
	return s
}

type validateResp struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Min    int    `json:"min_length"`
	Max    int    `json:"max_length"`
}

// ValidateCodeHandler reports format validity without classifying.
func ValidateCodeHandler(v *domain.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req codeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Malformed request body",
			})
		}
		resp := validateResp{Valid: true, Min: v.MinLength(), Max: v.MaxLength()}
		var fe *domain.FormatError
		if err := v.FormatError(req.text()); errors.As(err, &fe) {
			resp.Valid = false
			resp.Reason = fe.Reason
		}
		return c.JSON(resp)
	}
}

// SanitizeCodeHandler backs the as-you-type input filter.
func SanitizeCodeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req codeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Malformed request body",
			})
		}
		return c.JSON(fiber.Map{"code": domain.Sanitize(req.text())})
	}
}
