package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sigeho_backend/internals/middlewares/logger"
)

// SetupMiddlewares monta la cadena base: CORS, recovery, rate limiting
// global y logging de requests.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
