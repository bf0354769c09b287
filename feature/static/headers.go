package static

import "github.com/gofiber/fiber/v2"

// fixedHeaders are stamped on every response. The CORS trio is what lets
// MetaMask open its popup on pages served from localhost; the remaining two
// are standard hardening.
var fixedHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
	"X-Content-Type-Options":       "nosniff",
	"X-Frame-Options":              "DENY",
}

// FixedHeaders returns a middleware that adds the fixed response headers
// after the downstream handler has written its own, so they are present on
// every response including 404s and errors.
func FixedHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		for k, v := range fixedHeaders {
			c.Set(k, v)
		}
		return err
	}
}
