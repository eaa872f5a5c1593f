package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetBySlug retrieves a single product by its slug.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with slug %s: %w", slug, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by slug %s: %w", slug, err)
	}
	return &product, nil
}

// GetByShopID retrieves all products belonging to a shop.
func (r *GORMProductRepository) GetByShopID(shopID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("name").Find(&products, "shop_id = ?", shopID).Error; err != nil {
		return nil, fmt.Errorf("failed to get products of shop %d: %w", shopID, err)
	}
	return products, nil
}

// SlugExists reports whether any product already uses the given slug.
func (r *GORMProductRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check product slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save writes all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with slug %s: %w", product.Slug, apperrors.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its slug from the database.
func (r *GORMProductRepository) Delete(slug string) error {
	res := r.db.Delete(&models.Product{}, "slug = ?", slug)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", slug, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with slug %s: %w", slug, apperrors.ErrNotFound)
	}
	return nil
}
