package models

import "time"

// User is the authentication principal. The password hash and reset token
// never appear in API responses.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	ResetToken  string    `json:"-" gorm:"type:varchar(64)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
