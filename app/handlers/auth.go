package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"driveconn/app/apperror"
	"driveconn/app/auth"
	"driveconn/app/config"
	"driveconn/app/database"
	"driveconn/app/metrics"
	"driveconn/app/platform/user"
	"driveconn/pkg/utils"
)

// refreshCookieMaxAge matches the refresh token lifetime of seven days.
const refreshCookieMaxAge = 7 * 24 * 60 * 60

func issueTokens(c *fiber.Ctx, cfg *config.Config, account *database.User, role *database.Role) error {
	claims := auth.Claims{
		FullName: account.FullName,
		Email:    account.Email,
		RoleName: role.Name,
		RoleID:   role.ID.String(),
		UserID:   account.ID.String(),
	}

	accessToken, err := auth.GenerateAccessToken(claims, cfg.AccessTokenSecret)
	if err != nil {
		return apperror.ErrInternal.WithCause(err)
	}

	refreshToken, err := auth.GenerateRefreshToken(claims, cfg.RefreshTokenSecret)
	if err != nil {
		return apperror.ErrInternal.WithCause(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    refreshToken,
		MaxAge:   refreshCookieMaxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(fiber.Map{"accessToken": accessToken})
}

// Login authenticates by email and password. Unknown email and wrong
// password both fail with the same credentials error so the response never
// reveals whether an account exists. The throttle middleware has already run
// by the time this handler executes.
func Login(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	users := c.Locals("users").(user.Store)
	collector := c.Locals("metrics").(*metrics.Collector)

	type LoginInput struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrValidation.WithCause(err)
	}

	if err := config.Validate.Struct(input); err != nil {
		return apperror.ErrValidation.WithCause(err)
	}

	account, err := users.GetUserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrUserNotFound) {
			collector.RecordLoginAttempt("invalid_credentials")
			return apperror.ErrInvalidCredentials
		}
		return err
	}

	if !utils.VerifyPassword(input.Password, account.PasswordHash) {
		collector.RecordLoginAttempt("invalid_credentials")
		return apperror.ErrInvalidCredentials
	}

	// A dangling role id behind a verified password is store corruption,
	// not a caller mistake.
	role, err := users.GetRoleByID(account.RoleID)
	if err != nil {
		if errors.Is(err, apperror.ErrRoleNotFound) {
			return apperror.ErrStoreFailure.WithCause(err)
		}
		return err
	}

	collector.RecordLoginAttempt("success")

	return issueTokens(c, cfg, account, role)
}
