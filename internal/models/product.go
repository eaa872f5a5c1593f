package models

import "time"

// Product belongs to a shop and optionally to a category. QRCode holds the
// base64-encoded PNG of the product's QR symbol; it is never authored
// directly, only derived from name, price and description on every save.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ShopID      uint      `json:"shop" validate:"required"`
	Name        string    `json:"name" gorm:"type:varchar(200)" validate:"required,max=200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(210)"`
	Price       Price     `json:"price" gorm:"type:numeric(10,2)"`
	Description string    `json:"description" gorm:"type:text" validate:"required"`
	CategoryID  *uint     `json:"category"`
	QRCode      string    `json:"qr_code" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
