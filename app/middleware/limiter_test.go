package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveconn/app/apperror"
	"driveconn/app/auth"
	"driveconn/app/metrics"
)

func newLimiterApp(throttle *auth.LoginThrottle) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperror.Handler})

	collector := metrics.NewCollector()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("throttle", throttle)
		c.Locals("metrics", collector)
		return c.Next()
	})

	app.Post("/login", LoginLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestLoginLimiterRejectsSixthAttempt(t *testing.T) {
	app := newLimiterApp(auth.NewLoginThrottle())

	for i := 1; i <= 5; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
		assert.Equalf(t, fiber.StatusOK, resp.StatusCode, "attempt %d", i)
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "too_many_attempts", body.Code)
}

func TestLoginLimiterRunsBeforeHandler(t *testing.T) {
	throttle := auth.NewLoginThrottle()
	app := fiber.New(fiber.Config{ErrorHandler: apperror.Handler})

	collector := metrics.NewCollector()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("throttle", throttle)
		c.Locals("metrics", collector)
		return c.Next()
	})

	handlerCalls := 0
	app.Post("/login", LoginLimiter, func(c *fiber.Ctx) error {
		handlerCalls++
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 10; i++ {
		_, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
	}

	assert.Equal(t, 5, handlerCalls, "throttled requests must not reach the handler")
}

func TestLoginLimiterResetRestores(t *testing.T) {
	throttle := auth.NewLoginThrottle()
	app := newLimiterApp(throttle)

	for i := 0; i < 6; i++ {
		_, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		require.NoError(t, err)
	}

	throttle.Reset()

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
