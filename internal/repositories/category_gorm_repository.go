package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories from the database.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetBySlug retrieves a single category by its slug.
func (r *GORMCategoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with slug %s: %w", slug, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by slug %s: %w", slug, err)
	}
	return &category, nil
}

// GetByID retrieves a single category by its numeric id.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category with ID %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// SlugExists reports whether any category already uses the given slug.
func (r *GORMCategoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Create creates a new category in the database.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category in the database.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with slug %s: %w", category.Slug, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes the category at slug and clears the reference on its
// products in one transaction (the nullable-reference variant).
func (r *GORMCategoryRepository) Delete(slug string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("category with slug %s: %w", slug, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load category %s: %w", slug, err)
		}
		if err := tx.Model(&models.Product{}).Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach products from category %s: %w", slug, err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category %s: %w", slug, err)
		}
		return nil
	})
}
