package repositories

import "pasar/internal/models"

// ShopRepository defines the interface for shop data access. Slugs are the
// public lookup keys; numeric ids only appear in the user-scoped lookup.
type ShopRepository interface {
	GetAll() ([]models.Shop, error)
	GetBySlug(slug string) (*models.Shop, error)
	GetByID(id uint) (*models.Shop, error)
	GetByUserID(userID uint) (*models.Shop, error)
	SlugExists(slug string) (bool, error)
	Create(shop *models.Shop) error
	// CreateWithUser persists a brand-new owner and their shop atomically:
	// either both rows exist afterwards or neither does.
	CreateWithUser(user *models.User, shop *models.Shop) error
	Update(shop *models.Shop) error
	// Delete removes the shop at slug and cascades to its products.
	Delete(slug string) error
}
