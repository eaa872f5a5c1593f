package services

import (
	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/qr"
	"pasar/internal/repositories"
	"pasar/internal/slugify"
)

// ProductService handles business logic related to products. Every write
// routes through the QR pipeline, so a persisted product always carries the
// payload for its current name, price and description.
type ProductService struct {
	productRepo  repositories.ProductRepository
	shopRepo     repositories.ShopRepository
	categoryRepo repositories.CategoryRepository
	publisher    EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil to
// disable event publishing.
func NewProductService(productRepo repositories.ProductRepository, shopRepo repositories.ShopRepository, categoryRepo repositories.CategoryRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		shopRepo:     shopRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.productRepo.GetBySlug(slug)
}

// CreateProduct assigns a unique slug, encodes the QR payload and persists
// the product. Encoding happens before the write so a failure leaves nothing
// behind.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.checkReferences(product); err != nil {
		return err
	}
	slug, err := slugify.Unique(product.Name, s.productRepo.SlugExists)
	if err != nil {
		return err
	}
	product.Slug = slug
	payload, err := qr.Encode(product.Name, product.Price.StringFixed(2), product.Description)
	if err != nil {
		return err
	}
	product.QRCode = payload
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	publishEvent(s.publisher, "product.created", map[string]interface{}{
		"id":   product.ID,
		"slug": product.Slug,
		"shop": product.ShopID,
	})
	return nil
}

// UpdateProduct replaces the mutable fields of the product at slug and
// re-encodes the QR payload from the new values. The slug never changes; the
// payload always does when the inputs do.
func (s *ProductService) UpdateProduct(slug string, fields *models.Product) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(fields); err != nil {
		return nil, err
	}
	product.Name = fields.Name
	product.Price = fields.Price
	product.Description = fields.Description
	product.ShopID = fields.ShopID
	product.CategoryID = fields.CategoryID
	payload, err := qr.Encode(product.Name, product.Price.StringFixed(2), product.Description)
	if err != nil {
		return nil, err
	}
	product.QRCode = payload
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "product.updated", map[string]interface{}{
		"id":   product.ID,
		"slug": product.Slug,
	})
	return product, nil
}

// DeleteProduct deletes a product by its slug.
func (s *ProductService) DeleteProduct(slug string) error {
	if err := s.productRepo.Delete(slug); err != nil {
		return err
	}
	publishEvent(s.publisher, "product.deleted", map[string]interface{}{"slug": slug})
	return nil
}

// ProductQRCodePNG returns the stored payload of the product at slug with the
// data-URI prefix clients can drop into an <img> tag.
func (s *ProductService) ProductQRCodePNG(slug string) (string, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return "", err
	}
	return qr.DataURIPrefix + product.QRCode, nil
}

// ProductQRCodePDF re-wraps the stored payload of the product at slug as a
// single-page PDF for download.
func (s *ProductService) ProductQRCodePDF(slug string) ([]byte, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	return qr.PDF(product.QRCode)
}

// checkReferences validates the price and the referenced rows before any
// write. Category is optional; shop is not.
func (s *ProductService) checkReferences(product *models.Product) error {
	if product.Price.IsZero() {
		return apperrors.NewValidation("price", "price is required")
	}
	if product.Price.IsNegative() {
		return apperrors.NewValidation("price", "price must not be negative")
	}
	if _, err := s.shopRepo.GetByID(product.ShopID); err != nil {
		return apperrors.NewValidation("shop", "shop does not exist")
	}
	if product.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*product.CategoryID); err != nil {
			return apperrors.NewValidation("category", "category does not exist")
		}
	}
	return nil
}
