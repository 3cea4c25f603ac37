package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRole is the back-office role carried in the admin JWT
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super-admin"
)

// AdminUser represents a back-office account
type AdminUser struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	Username  string     `json:"username" gorm:"uniqueIndex;not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Password  string     `json:"-" gorm:"not null"`
	Role      AdminRole  `json:"role" gorm:"type:varchar(20);default:'admin'"`
	LastLogin *time.Time `json:"lastLogin"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ValidAdminRole reports whether v is an accepted back-office role
func ValidAdminRole(v AdminRole) bool {
	switch v {
	case RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// AdminLogin model for back-office authentication
type AdminLogin struct {
	Email    string `json:"email" binding:"required,email" example:"admin@lovebae.app"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// AdminCreate model for provisioning a back-office account
// @Description model for creating a back-office account
type AdminCreate struct {
	Username string    `json:"username" binding:"required" example:"ops"`
	Email    string    `json:"email" binding:"required,email" example:"ops@lovebae.app"`
	Password string    `json:"password" binding:"required,min=8" example:"a-long-password"`
	Role     AdminRole `json:"role" example:"admin"`
}

// AdminUpdate model for editing a back-office account; the password is only
// re-hashed when a new one is provided
type AdminUpdate struct {
	Username string    `json:"username" binding:"required" example:"ops"`
	Email    string    `json:"email" binding:"required,email" example:"ops@lovebae.app"`
	Password string    `json:"password" example:""`
	Role     AdminRole `json:"role" example:"super-admin"`
}
