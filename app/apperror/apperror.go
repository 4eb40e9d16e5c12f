// Package apperror defines the error taxonomy shared by the auth flows and
// the single place where errors become HTTP responses.
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"driveconn/app/observability/logger"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithCause returns a copy carrying the underlying error. The cause is kept
// for logs only and never serialized to the client.
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

// WithMessage returns a copy with a more specific user-facing message.
func (e *Error) WithMessage(message string) *Error {
	clone := *e
	clone.Message = message
	return &clone
}

var (
	ErrValidation         = &Error{Status: fiber.StatusBadRequest, Code: "validation_error", Message: "All fields must not be empty"}
	ErrDuplicateEmail     = &Error{Status: fiber.StatusBadRequest, Code: "duplicate_email", Message: "User has already registered with this email"}
	ErrUserNotFound       = &Error{Status: fiber.StatusNotFound, Code: "user_not_found", Message: "User not found"}
	ErrInvalidCredentials = &Error{Status: fiber.StatusUnauthorized, Code: "invalid_credentials", Message: "Email or password is not valid"}
	ErrTooManyAttempts    = &Error{Status: fiber.StatusTooManyRequests, Code: "too_many_attempts", Message: "Too many login attempts, please try again after a 60 second pause"}
	ErrWrongOtp           = &Error{Status: fiber.StatusBadRequest, Code: "wrong_otp", Message: "Wrong OTP, please try again"}
	ErrOtpExpired         = &Error{Status: fiber.StatusBadRequest, Code: "otp_expired", Message: "OTP is expired, please request a new one"}
	ErrRoleNotFound       = &Error{Status: fiber.StatusBadRequest, Code: "role_not_found", Message: "Role not found"}
	ErrStoreFailure       = &Error{Status: fiber.StatusInternalServerError, Code: "store_failure", Message: "Internal server error"}
	ErrInternal           = &Error{Status: fiber.StatusInternalServerError, Code: "internal_error", Message: "Internal server error"}
)

// From coerces any error into an *Error. Unknown errors degrade to a 500
// without leaking the original message.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &Error{Status: fiberErr.Code, Code: "request_error", Message: fiberErr.Message}
	}

	return ErrInternal.WithCause(err)
}

// Handler is installed as the fiber app's ErrorHandler so every handler can
// just return errors from the taxonomy.
func Handler(c *fiber.Ctx, err error) error {
	appErr := From(err)

	if appErr.Status >= fiber.StatusInternalServerError {
		log := logger.Named("http")
		log.Error(appErr.Error())
	}

	return c.Status(appErr.Status).JSON(fiber.Map{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
