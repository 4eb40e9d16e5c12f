// Package otp implements the password-reset handshake: a numeric one-time
// code is issued per user, expires after ten minutes and, once verified,
// authorizes regenerating the account password.
package otp

import (
	"time"

	"driveconn/app/apperror"
	"driveconn/app/database"
	"driveconn/app/mail"
	"driveconn/pkg/utils"
)

const (
	// otpExpiryMinutes is compared against whole elapsed minutes, truncated.
	// A code is therefore still valid at 10m59s and rejected from 11m0s.
	otpExpiryMinutes = 10

	newPasswordLength = 12
)

// Store is the slice of the credential store the reset flow touches.
type Store interface {
	GetUserByEmail(email string) (*database.User, error)
	SetResetChallenge(user *database.User, otp string, issuedAt time.Time) error
	CompleteReset(user *database.User, passwordHash string) error
}

type Service struct {
	store  Store
	mailer mail.Mailer
	from   string

	now func() time.Time
}

func NewService(store Store, mailer mail.Mailer, from string) *Service {
	return &Service{
		store:  store,
		mailer: mailer,
		from:   from,
		now:    time.Now,
	}
}

// Request issues a fresh challenge for the account behind email and mails
// the code. Re-requesting overwrites any outstanding challenge, so only the
// latest code ever validates. Mail delivery is fire-and-forget.
func (s *Service) Request(email string) error {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return err
	}

	code := utils.GenerateOTP()
	if err := s.store.SetResetChallenge(user, code, s.now()); err != nil {
		return err
	}

	mail.Dispatch(s.mailer, mail.OTPEmail(s.from, user.Email, code))

	return nil
}

// Verify checks the submitted code against the outstanding challenge. On
// success it regenerates the account password, persists the hash, clears the
// challenge and mails the new password out-of-band. A mismatched code fails
// with WrongOtp regardless of elapsed time; expiry is only checked after the
// code matches.
func (s *Service) Verify(email, code string) error {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return err
	}

	if user.Otp == nil || user.OtpIssuedAt == nil {
		return apperror.ErrWrongOtp
	}
	if *user.Otp != code {
		return apperror.ErrWrongOtp
	}

	elapsed := int(s.now().Sub(*user.OtpIssuedAt).Minutes())
	if elapsed > otpExpiryMinutes {
		return apperror.ErrOtpExpired
	}

	newPassword := utils.GenerateRandomString(newPasswordLength)
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperror.ErrInternal.WithCause(err)
	}

	if err := s.store.CompleteReset(user, hash); err != nil {
		return err
	}

	mail.Dispatch(s.mailer, mail.NewPasswordEmail(s.from, user.Email, newPassword))

	return nil
}
