// Package user is the credential store adapter: lookups and field updates on
// user and role records, no business logic of its own.
package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"driveconn/app/apperror"
	"driveconn/app/database"
)

// Store is the handler-facing view of the credential store. Handlers and
// middleware depend on it instead of the database handle so the flows can be
// exercised against an in-memory implementation.
type Store interface {
	Create(user *database.User) error
	GetUserByID(userID uuid.UUID) (*database.User, error)
	GetUserByEmail(email string) (*database.User, error)
	GetRoleByName(name string) (*database.Role, error)
	GetRoleByID(roleID uuid.UUID) (*database.Role, error)
	SetResetChallenge(user *database.User, otp string, issuedAt time.Time) error
	CompleteReset(user *database.User, passwordHash string) error
}

type UserService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(user *database.User) error {
	result := s.db.Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperror.ErrDuplicateEmail
		}
		return apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*database.User, error) {
	var user database.User

	result := s.db.First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return &user, nil
}

func (s *UserService) GetUserByEmail(email string) (*database.User, error) {
	var user database.User

	result := s.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return &user, nil
}

func (s *UserService) GetRoleByName(name string) (*database.Role, error) {
	var role database.Role

	result := s.db.First(&role, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrRoleNotFound
		}
		return nil, apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return &role, nil
}

func (s *UserService) GetRoleByID(roleID uuid.UUID) (*database.Role, error) {
	var role database.Role

	result := s.db.First(&role, "id = ?", roleID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrRoleNotFound
		}
		return nil, apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return &role, nil
}

// SetResetChallenge stores the one-time code and its issuance timestamp.
// A prior outstanding challenge is overwritten; last write wins.
func (s *UserService) SetResetChallenge(user *database.User, otp string, issuedAt time.Time) error {
	user.Otp = &otp
	user.OtpIssuedAt = &issuedAt

	result := s.db.Model(user).Updates(map[string]any{
		"otp":           otp,
		"otp_issued_at": issuedAt,
	})
	if result.Error != nil {
		return apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return nil
}

// CompleteReset persists the new password hash and clears the challenge
// fields in one write, keeping the otp/otp_issued_at pairing invariant.
func (s *UserService) CompleteReset(user *database.User, passwordHash string) error {
	user.PasswordHash = passwordHash
	user.Otp = nil
	user.OtpIssuedAt = nil

	result := s.db.Model(user).Updates(map[string]any{
		"password_hash": passwordHash,
		"otp":           nil,
		"otp_issued_at": nil,
	})
	if result.Error != nil {
		return apperror.ErrStoreFailure.WithCause(result.Error)
	}
	return nil
}
