package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для настройки Cross-Origin Resource Sharing.
// Пустой список источников или "*" разрешает любые источники без credentials.
func CORS(allowOrigins []string) fiber.Handler {
	origins := strings.Join(allowOrigins, ",")
	wildcard := origins == "" || origins == "*"
	if wildcard {
		origins = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Accept-Language,X-Request-ID",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: !wildcard,
	})
}
