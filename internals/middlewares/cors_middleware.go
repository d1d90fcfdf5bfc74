package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Emmynem/alphaprimeclub-api/internals/constants"
)

// CorsMiddleware builds the CORS middleware with the app whitelist.
func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.Join([]string{
			"http://localhost",
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
			"https://alphaprimeclub.netlify.app",
		}, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, X-Requested-With, Content-Type, Accept, " + constants.HeaderKey,
		AllowCredentials: true,
	})
}
