package models

import "time"

// Shop belongs to a user. The slug is the public lookup key: assigned once
// from the name at creation, unique across all shops, never regenerated on
// rename.
type Shop struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user" validate:"required"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;type:varchar(110)"`
	Address   string    `json:"address" gorm:"type:varchar(200)" validate:"omitempty,max=200"`
	Phone     string    `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Website   string    `json:"website" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
