package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/authz"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the category routes, each gated by the capability
// table.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, gate *middleware.CapabilityGate) {
	categories := router.Group("/categories")
	categories.Get("/", gate.Require(authz.EntityCategory, authz.ActionList), h.HandleList)
	categories.Post("/", gate.Require(authz.EntityCategory, authz.ActionCreate), h.HandleCreate)
	categories.Get("/:slug", gate.Require(authz.EntityCategory, authz.ActionRetrieve), h.HandleGetBySlug)
	categories.Put("/:slug", gate.Require(authz.EntityCategory, authz.ActionUpdate), h.HandleUpdate)
	categories.Delete("/:slug", gate.Require(authz.EntityCategory, authz.ActionDelete), h.HandleDelete)
}

// HandleList retrieves all categories.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(categories)
}

// HandleGetBySlug retrieves a single category by its slug.
func (h *CategoryHandler) HandleGetBySlug(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(category); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdate updates the category at the given slug.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var fields models.Category
	if err := c.BodyParser(&fields); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(fields); err != nil {
		return respondValidation(c, err)
	}
	category, err := h.service.UpdateCategory(c.Params("slug"), &fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

// HandleDelete deletes the category at the given slug.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("slug")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
