package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"driveconn/app/apperror"
	"driveconn/app/config"
	"driveconn/app/database"
	"driveconn/app/mail"
	"driveconn/app/metrics"
	"driveconn/app/platform/otp"
	"driveconn/app/platform/user"
	"driveconn/pkg/utils"
)

// Register creates an account and signs the caller in: a successful
// registration returns the access token and sets the refresh cookie exactly
// like Login.
func Register(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	users := c.Locals("users").(user.Store)
	collector := c.Locals("metrics").(*metrics.Collector)

	type RegisterInput struct {
		FullName string `json:"fullName" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
		RoleName string `json:"roleName" validate:"required"`
	}

	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrValidation.WithCause(err)
	}

	if err := config.Validate.Struct(input); err != nil {
		return apperror.ErrValidation.WithCause(err)
	}

	if _, err := users.GetUserByEmail(input.Email); err == nil {
		return apperror.ErrDuplicateEmail
	} else if !errors.Is(err, apperror.ErrUserNotFound) {
		return err
	}

	role, err := users.GetRoleByName(input.RoleName)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return apperror.ErrInternal.WithCause(err)
	}

	account := &database.User{
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Status:       true,
	}

	// Create still guards against a duplicate racing past the lookup above.
	if err := users.Create(account); err != nil {
		return err
	}

	collector.RecordRegistration()

	return issueTokens(c, cfg, account, role)
}

// ForgotPassword starts the OTP reset handshake. A missing or unknown email
// is a 404, mirroring the reset contract rather than the register one.
func ForgotPassword(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	users := c.Locals("users").(user.Store)
	mailer := c.Locals("mailer").(mail.Mailer)
	collector := c.Locals("metrics").(*metrics.Collector)

	type ForgotPasswordInput struct {
		Email string `json:"email" validate:"required,email"`
	}

	var input ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrUserNotFound.WithMessage("Invalid email")
	}

	if err := config.Validate.Struct(input); err != nil {
		return apperror.ErrUserNotFound.WithMessage("Invalid email")
	}

	otpService := otp.NewService(users, mailer, cfg.MailFrom)

	if err := otpService.Request(input.Email); err != nil {
		return err
	}

	collector.RecordOTPIssued()

	return c.SendString("OTP sent to email")
}

// ResetPassword completes the handshake: a matching, unexpired code replaces
// the account password with a random one delivered out-of-band.
func ResetPassword(c *fiber.Ctx) error {
	cfg := c.Locals("config").(*config.Config)
	users := c.Locals("users").(user.Store)
	mailer := c.Locals("mailer").(mail.Mailer)
	collector := c.Locals("metrics").(*metrics.Collector)

	type ResetPasswordInput struct {
		Email string `json:"email" validate:"required,email"`
		Otp   string `json:"otp" validate:"required"`
	}

	var input ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return apperror.ErrUserNotFound.WithMessage("Invalid email or otp")
	}

	if err := config.Validate.Struct(input); err != nil {
		return apperror.ErrUserNotFound.WithMessage("Invalid email or otp")
	}

	otpService := otp.NewService(users, mailer, cfg.MailFrom)

	if err := otpService.Verify(input.Email, input.Otp); err != nil {
		switch {
		case errors.Is(err, apperror.ErrWrongOtp):
			collector.RecordOTPVerification("wrong_otp")
		case errors.Is(err, apperror.ErrOtpExpired):
			collector.RecordOTPVerification("expired")
		}
		return err
	}

	collector.RecordOTPVerification("success")

	return c.SendString("Reset password successfully")
}

// GetCurrentUser echoes the authenticated account resolved by the auth
// middleware.
func GetCurrentUser(c *fiber.Ctx) error {
	account := c.Locals("user").(database.User)

	return c.JSON(account)
}
