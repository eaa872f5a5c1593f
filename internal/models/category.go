package models

import "time"

// Category groups products. Slug semantics are the same as Shop's.
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(200)" validate:"required,max=200"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;type:varchar(210)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
