package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/slugify"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo      repositories.CategoryRepository
	publisher EventPublisher
}

// NewCategoryService creates a new CategoryService. publisher may be nil to
// disable event publishing.
func NewCategoryService(repo repositories.CategoryRepository, publisher EventPublisher) *CategoryService {
	return &CategoryService{repo: repo, publisher: publisher}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryBySlug retrieves a single category by its slug.
func (s *CategoryService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.repo.GetBySlug(slug)
}

// CreateCategory assigns a unique slug from the name and persists the
// category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	slug, err := slugify.Unique(category.Name, s.repo.SlugExists)
	if err != nil {
		return err
	}
	category.Slug = slug
	if err := s.repo.Create(category); err != nil {
		return err
	}
	publishEvent(s.publisher, "category.created", map[string]interface{}{
		"id":   category.ID,
		"slug": category.Slug,
	})
	return nil
}

// UpdateCategory replaces the mutable fields of the category at slug. The
// slug itself never changes, even when the name does.
func (s *CategoryService) UpdateCategory(slug string, fields *models.Category) (*models.Category, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	category.Name = fields.Name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	publishEvent(s.publisher, "category.updated", map[string]interface{}{
		"id":   category.ID,
		"slug": category.Slug,
	})
	return category, nil
}

// DeleteCategory removes the category at slug; its products keep existing
// with the reference cleared.
func (s *CategoryService) DeleteCategory(slug string) error {
	if err := s.repo.Delete(slug); err != nil {
		return err
	}
	publishEvent(s.publisher, "category.deleted", map[string]interface{}{"slug": slug})
	return nil
}
