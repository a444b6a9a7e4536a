package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/Amrit-Raj-17/Argn/api/http/handlers"
	"github.com/Amrit-Raj-17/Argn/api/http/presenter"
	"github.com/Amrit-Raj-17/Argn/pkg/logger"
	"github.com/Amrit-Raj-17/Argn/pkg/metrics"
)

// NewApp builds the Fiber app with the shared middleware stack.
// bodyLimit caps the whole request body in bytes.
func NewApp(bodyLimit int, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "argn",
		BodyLimit:             bodyLimit,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger(log))
	app.Use(metrics.Middleware())
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, analysis *handlers.AnalysisHandler, health *handlers.HealthHandler) {
	app.Post("/analyze", analysis.Analyze)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)
	app.Get("/metrics", metrics.Handler())

	app.Get("/swagger/*", swagger.HandlerDefault)
}

// requestLogger puts a request-scoped logger into the user context and logs
// each finished request.
func requestLogger(base *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		l := base.With(zap.String("request_id", rid))
		c.SetUserContext(logger.ContextWithLogger(c.UserContext(), l))

		err := c.Next()
		l.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
}

// errorHandler renders every unhandled error, including fasthttp's
// body-too-large rejection, as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	msg := err.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	if code == http.StatusRequestEntityTooLarge {
		msg = "File too large"
	}
	return presenter.Error(c, code, msg)
}
