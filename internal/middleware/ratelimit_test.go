package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiterNoopWithoutRedis(t *testing.T) {
	app := fiber.New()
	limiter := NewRateLimiter(nil, "upload_rate", 1, 0)
	app.Get("/x", limiter.MiddlewareByKey(func(c *fiber.Ctx) string { return c.IP() }),
		func(c *fiber.Ctx) error { return c.SendString("ok") })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 (limiter must be a no-op without redis)", i, resp.StatusCode)
		}
	}
}
