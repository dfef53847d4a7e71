package models

import "time"

// Tenant is a rental company using the back office. Every business row belongs to one.
type Tenant struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Document string `json:"document,omitempty"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// UserRole controls what a back-office user may do.
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleFinance  UserRole = "finance"
	UserRoleOperator UserRole = "operator"
)

// User represents the user model in the database
type User struct {
	Base
	TenantScoped
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Role                UserRole   `gorm:"not null;default:operator" json:"role"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
}
