package std

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/ichaly/auja/log"
	"github.com/rs/zerolog"
)

// NewFiber 创建并配置fiber应用，错误统一输出为 {"error": msg}
func NewFiber(c *Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               c.Name,
		DisableStartupMessage: !c.IsDebug(),
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(etag.New())

	// 调试模式下记录请求日志
	if c.IsDebug() {
		app.Use(func(c *fiber.Ctx) error {
			start := time.Now()
			err := c.Next()

			status := c.Response().StatusCode()
			var evt *zerolog.Event
			switch {
			case err != nil:
				evt = log.Error().Err(err)
			case status >= fiber.StatusBadRequest:
				evt = log.Warn()
			default:
				evt = log.Info()
			}
			evt.
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("fiber request")
			return err
		})
	}
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
