package database

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Otp and OtpIssuedAt are set together
// while a password-reset challenge is outstanding and cleared together once
// it resolves; at most one live challenge exists per user.
type User struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email" gorm:"uniqueIndex"`
	PasswordHash string     `json:"-"`
	RoleID       uuid.UUID  `json:"role_id" gorm:"type:uuid"`
	Status       bool       `json:"status" gorm:"default:true"`
	Otp          *string    `json:"-"`
	OtpIssuedAt  *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) TableName() string {
	return "application.user"
}

// Role is referenced by users and only read here; rows are maintained by the
// admin CLI.
type Role struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name string    `json:"name" gorm:"uniqueIndex"`
}

func (r *Role) TableName() string {
	return "application.role"
}
