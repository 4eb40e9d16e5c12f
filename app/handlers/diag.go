package handlers

import "github.com/gofiber/fiber/v2"

// GetClientAddress echoes the address the login throttle would key this
// client under, which is useful when debugging proxy forwarding setups.
func GetClientAddress(c *fiber.Ctx) error {
	ip := c.IP()
	if len(c.IPs()) > 1 {
		ip = c.IPs()[0]
	}

	return c.JSON(fiber.Map{"ip": ip})
}

func GetHeaders(c *fiber.Ctx) error {
	return c.JSON(c.GetReqHeaders())
}
