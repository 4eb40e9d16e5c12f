package middleware

import (
	"github.com/gofiber/fiber/v2"

	"driveconn/app/apperror"
	"driveconn/app/auth"
	"driveconn/app/metrics"
)

// LoginLimiter gates the login route by client address. It runs before the
// handler so a throttled request costs no store lookup or hash comparison.
func LoginLimiter(c *fiber.Ctx) error {
	throttle := c.Locals("throttle").(*auth.LoginThrottle)

	ip := c.IP()
	if len(c.IPs()) > 1 {
		ip = c.IPs()[0]
	}

	if !throttle.Allow(ip) {
		if collector, ok := c.Locals("metrics").(*metrics.Collector); ok {
			collector.RecordLoginAttempt("throttled")
		}
		return apperror.ErrTooManyAttempts
	}

	return c.Next()
}
