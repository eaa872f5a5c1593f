package repositories

import "pasar/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	SlugExists(slug string) (bool, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	// Delete removes the category at slug. Products keep existing with their
	// category reference cleared.
	Delete(slug string) error
}
