package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/slugify"
)

// ShopService handles business logic related to shops, including the
// registration-through-shop-creation flow.
type ShopService struct {
	shopRepo    repositories.ShopRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
}

// NewShopService creates a new ShopService. publisher may be nil to disable
// event publishing.
func NewShopService(shopRepo repositories.ShopRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, publisher EventPublisher) *ShopService {
	return &ShopService{shopRepo: shopRepo, userRepo: userRepo, productRepo: productRepo, publisher: publisher}
}

// GetAllShops retrieves all shops.
func (s *ShopService) GetAllShops() ([]models.Shop, error) {
	return s.shopRepo.GetAll()
}

// GetShopBySlug retrieves a single shop by its slug.
func (s *ShopService) GetShopBySlug(slug string) (*models.Shop, error) {
	return s.shopRepo.GetBySlug(slug)
}

// GetShopByUserID retrieves the shop owned by the given user.
func (s *ShopService) GetShopByUserID(userID uint) (*models.Shop, error) {
	return s.shopRepo.GetByUserID(userID)
}

// GetShopProducts retrieves the products of the shop at slug. An unknown
// shop slug is a lookup failure, not an empty list.
func (s *ShopService) GetShopProducts(slug string) ([]models.Product, error) {
	shop, err := s.shopRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.productRepo.GetByShopID(shop.ID)
}

// CreateShop assigns a unique slug and persists the shop. When owner is
// non-nil a brand-new user account is created together with the shop in one
// transaction; otherwise shop.UserID must reference an existing user.
func (s *ShopService) CreateShop(shop *models.Shop, owner *models.User) (*models.Shop, error) {
	slug, err := slugify.Unique(shop.Name, s.shopRepo.SlugExists)
	if err != nil {
		return nil, err
	}
	shop.Slug = slug

	if owner != nil {
		if existing, err := s.userRepo.GetByUsername(owner.Username); err == nil && existing != nil {
			return nil, apperrors.NewValidation("username", fmt.Sprintf("username '%s' already taken", owner.Username))
		}
		if existing, err := s.userRepo.GetByEmail(owner.Email); err == nil && existing != nil {
			return nil, apperrors.NewValidation("email", fmt.Sprintf("email '%s' already registered", owner.Email))
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(owner.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		owner.Password = string(hashedPassword)
		owner.IsActive = true
		if err := s.shopRepo.CreateWithUser(owner, shop); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.userRepo.GetByID(shop.UserID); err != nil {
			return nil, apperrors.NewValidation("user", "user does not exist")
		}
		if err := s.shopRepo.Create(shop); err != nil {
			return nil, err
		}
	}

	publishEvent(s.publisher, "shop.created", map[string]interface{}{
		"id":   shop.ID,
		"slug": shop.Slug,
		"user": shop.UserID,
	})
	return shop, nil
}

// UpdateShop replaces the mutable fields of the shop at slug after checking
// the owning user exists. The slug never changes, even when the name does.
func (s *ShopService) UpdateShop(slug string, fields *models.Shop) (*models.Shop, error) {
	shop, err := s.shopRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(fields.UserID); err != nil {
		return nil, apperrors.NewValidation("user", "user does not exist")
	}
	shop.UserID = fields.UserID
	shop.Name = fields.Name
	shop.Address = fields.Address
	shop.Phone = fields.Phone
	shop.Website = fields.Website
	if err := s.shopRepo.Update(shop); err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "shop.updated", map[string]interface{}{
		"id":   shop.ID,
		"slug": shop.Slug,
	})
	return shop, nil
}

// DeleteShop removes the shop at slug and cascades to its products.
func (s *ShopService) DeleteShop(slug string) error {
	if err := s.shopRepo.Delete(slug); err != nil {
		return err
	}
	publishEvent(s.publisher, "shop.deleted", map[string]interface{}{"slug": slug})
	return nil
}
