package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Options struct {
	AppName string
	Logger  *zap.Logger
	// Middleware runs for module routes only, after /healthz.
	Middleware []fiber.Handler
}

func NewServer(opts Options, modules ...Module) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(RequestLogger(log))

	// health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	for _, mw := range opts.Middleware {
		app.Use(mw)
	}

	// регистрация модулей
	for _, m := range modules {
		m.Register(app)
	}
	return app
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "SERVER_ERROR"
		msg := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			msg = fe.Message
			switch code {
			case fiber.StatusNotFound:
				errCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				errCode = "METHOD_NOT_ALLOWED"
			default:
				if code < fiber.StatusInternalServerError {
					errCode = "BAD_REQUEST"
				}
			}
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(fiber.Map{
			"error_code": errCode,
			"message":    msg,
		})
	}
}
