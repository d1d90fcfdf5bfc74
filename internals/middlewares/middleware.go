package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "github.com/Emmynem/alphaprimeclub-api/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack onto the app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
