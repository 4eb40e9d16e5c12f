package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"driveconn/app/auth"
	"driveconn/app/config"
	"driveconn/app/platform/user"
)

// AuthMiddleware authenticates requests carrying a bearer access token and
// stores the resolved user and claims in the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	users := c.Locals("users").(user.Store)

	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := auth.VerifyToken(token, cfg.AccessTokenSecret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	account, err := users.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}

	c.Locals("user", *account)
	c.Locals("claims", claims)

	return c.Next()
}
