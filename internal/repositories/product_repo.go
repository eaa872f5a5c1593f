package repositories

import "pasar/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetByShopID(shopID uint) ([]models.Product, error)
	SlugExists(slug string) (bool, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(slug string) error
}
