package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"prodcheck/internal/modules/verify/domain"
	plathttp "prodcheck/internal/platform/http"
)

type verifyResp struct {
	Code       string `json:"code"`
	Status     string `json:"status"`
	Recognized bool   `json:"recognized"`
	Redirect   string `json:"redirect"`
}

func formatMessage(v *domain.Validator) string {
	return fmt.Sprintf("Please enter a valid product code (%d-%d alphanumeric characters)", v.MinLength(), v.MaxLength())
}

// SubmitPageHandler handles the form post: inline error on a bad code,
// otherwise verify, hand off and redirect to the result page.
func SubmitPageHandler(sub *submission, v *domain.Validator, resultURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.FormValue("code")
		_, err := sub.run(c.UserContext(), plathttp.SessionID(c), code)

		data := entryData{Code: code, Min: v.MinLength(), Max: v.MaxLength()}
		var fe *domain.FormatError
		switch {
		case err == nil:
			return c.Redirect(resultURL, fiber.StatusSeeOther)
		case errors.As(err, &fe):
			data.Error = formatMessage(v)
			return renderPage(c, fiber.StatusUnprocessableEntity, entryPage, data)
		case errors.Is(err, errInFlight):
			data.Error = "A verification is already in progress. Please wait."
			return renderPage(c, fiber.StatusConflict, entryPage, data)
		default:
			data.Error = "Verification is unavailable right now. Please try again later."
			return renderPage(c, fiber.StatusInternalServerError, entryPage, data)
		}
	}
}

func VerifyHandler(sub *submission, resultURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req codeReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error_code": "INVALID_FIELDS",
				"message":    "Malformed request body",
			})
		}

		r, err := sub.run(c.UserContext(), plathttp.SessionID(c), req.text())
		var fe *domain.FormatError
		switch {
		case err == nil:
		case errors.As(err, &fe):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error_code": "INVALID_FORMAT",
				"message":    formatMessage(sub.validator),
				"reason":     fe.Reason,
			})
		case errors.Is(err, errInFlight):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error_code": "VERIFICATION_IN_PROGRESS",
				"message":    "A verification is already in progress",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error_code": "STORE_UNAVAILABLE",
				"message":    "Could not record the verification result",
			})
		}

		return c.JSON(verifyResp{
			Code:       r.Code,
			Status:     r.Status.Wire(),
			Recognized: r.Status.Recognized(),
			Redirect:   resultURL,
		})
	}
}
