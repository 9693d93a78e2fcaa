package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/factory-api/internal/interfaces/http"
	"github.com/jhoicas/factory-api/pkg/ratelimit"
)

func TestRateLimitMiddleware_BloqueaTrasElLimite(t *testing.T) {
	limiter := ratelimit.New(time.Minute)
	defer limiter.Stop()

	app := fiber.New()
	app.Get("/ping", apphttp.RateLimitMiddleware(limiter, "ping", 5), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "petición %d dentro del límite", i+1)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode,
		"la sexta petición en la misma ventana debe recibir 429")
}

func TestRateLimitMiddleware_GruposIndependientes(t *testing.T) {
	limiter := ratelimit.New(time.Minute)
	defer limiter.Stop()

	app := fiber.New()
	app.Get("/a", apphttp.RateLimitMiddleware(limiter, "a", 1), func(c *fiber.Ctx) error {
		return c.SendString("a")
	})
	app.Get("/b", apphttp.RateLimitMiddleware(limiter, "b", 1), func(c *fiber.Ctx) error {
		return c.SendString("b")
	})

	respA, err := app.Test(httptest.NewRequest(http.MethodGet, "/a", nil), -1)
	require.NoError(t, err)
	respA.Body.Close()
	require.Equal(t, http.StatusOK, respA.StatusCode)

	// Agotar /a no afecta a /b
	respB, err := app.Test(httptest.NewRequest(http.MethodGet, "/b", nil), -1)
	require.NoError(t, err)
	respB.Body.Close()
	assert.Equal(t, http.StatusOK, respB.StatusCode)
}

func TestRateLimitMiddleware_LimiterNilEsTransparente(t *testing.T) {
	app := fiber.New()
	app.Get("/ping", apphttp.RateLimitMiddleware(nil, "ping", 1), func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
