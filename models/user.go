package models

import (
	"time"
)

type Role string

const (
	RoleClient Role = "client"
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether a role value is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleClient || r == RoleWorker || r == RoleAdmin
}

// User is an account on the platform. Role stays nil after a Google sign-up
// until the user explicitly picks client or worker.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"unique"`
	Password   string    `json:"password,omitempty"`
	Role       *Role     `json:"role" gorm:"type:varchar(20)"`
	Phone      string    `json:"phone"`
	AvatarURL  string    `json:"avatar_url"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasRole reports whether the user has picked the given role.
func (u *User) HasRole(r Role) bool {
	return u.Role != nil && *u.Role == r
}
