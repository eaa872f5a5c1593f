package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMShopRepository is a GORM implementation of ShopRepository.
type GORMShopRepository struct {
	db *gorm.DB
}

// NewGORMShopRepository creates a new instance of GORMShopRepository.
func NewGORMShopRepository(db *gorm.DB) *GORMShopRepository {
	return &GORMShopRepository{db: db}
}

// GetAll retrieves all shops from the database.
func (r *GORMShopRepository) GetAll() ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.Order("name").Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shops: %w", err)
	}
	return shops, nil
}

// GetBySlug retrieves a single shop by its slug.
func (r *GORMShopRepository) GetBySlug(slug string) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop with slug %s: %w", slug, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop by slug %s: %w", slug, err)
	}
	return &shop, nil
}

// GetByID retrieves a single shop by its numeric id.
func (r *GORMShopRepository) GetByID(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop with ID %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop by ID %d: %w", id, err)
	}
	return &shop, nil
}

// GetByUserID retrieves the shop owned by the given user.
func (r *GORMShopRepository) GetByUserID(userID uint) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.First(&shop, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop of user %d: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shop of user %d: %w", userID, err)
	}
	return &shop, nil
}

// SlugExists reports whether any shop already uses the given slug.
func (r *GORMShopRepository) SlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Shop{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check shop slug %s: %w", slug, err)
	}
	return count > 0, nil
}

// Create creates a new shop in the database.
func (r *GORMShopRepository) Create(shop *models.Shop) error {
	if err := r.db.Create(shop).Error; err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// CreateWithUser creates a new owner and their shop in one transaction, so a
// failure on either side leaves no partial rows behind.
func (r *GORMShopRepository) CreateWithUser(user *models.User, shop *models.Shop) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create shop owner: %w", err)
		}
		shop.UserID = user.ID
		if err := tx.Create(shop).Error; err != nil {
			return fmt.Errorf("failed to create shop: %w", err)
		}
		return nil
	})
}

// Update updates an existing shop in the database.
func (r *GORMShopRepository) Update(shop *models.Shop) error {
	res := r.db.Save(shop)
	if res.Error != nil {
		return fmt.Errorf("failed to update shop: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("shop with slug %s: %w", shop.Slug, apperrors.ErrNotFound)
	}
	return nil
}

// Delete removes the shop at slug and all its products in one transaction.
func (r *GORMShopRepository) Delete(slug string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := tx.First(&shop, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("shop with slug %s: %w", slug, apperrors.ErrNotFound)
			}
			return fmt.Errorf("failed to load shop %s: %w", slug, err)
		}
		if err := tx.Delete(&models.Product{}, "shop_id = ?", shop.ID).Error; err != nil {
			return fmt.Errorf("failed to delete products of shop %s: %w", slug, err)
		}
		if err := tx.Delete(&shop).Error; err != nil {
			return fmt.Errorf("failed to delete shop %s: %w", slug, err)
		}
		return nil
	})
}
