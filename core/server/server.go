package server

import (
	"errors"

	"fmh-devserver/core/loader"
	"fmh-devserver/core/logger"
	"fmh-devserver/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New assembles the Fiber application: ray id middleware, request logging,
// and every registered feature, in that order.
func New(logg *zap.Logger, features ...loader.Feature) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID must be first so everything downstream can correlate
	app.Use(rayid.New())
	app.Use(requestLogger(logg))

	mgr := loader.NewManager()
	for _, f := range features {
		mgr.Register(f)
	}
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

// requestLogger emits one line per handled request with method, path and
// final status. Errors surfacing from handlers are logged here too; the
// error itself is still returned so Fiber's error handler writes the
// response.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		l := logger.WithRayID(logg, c)
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
		if err != nil && (fe == nil || fe.Code >= fiber.StatusInternalServerError) {
			l.Error("Request error", zap.Error(err))
		}
		return err
	}
}
