package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

type User struct {
	gorm.Model
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Name         string   `gorm:"size:255" json:"name"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
}

// Elevated roles may release work items they do not own and bypass
// assignee-only status checks.
func (r UserRole) Elevated() bool {
	return r == RoleAdmin || r == RoleManager
}
