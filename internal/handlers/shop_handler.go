package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/authz"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// ShopHandler handles HTTP requests for shops.
type ShopHandler struct {
	service  *services.ShopService
	validate *validator.Validate
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(service *services.ShopService) *ShopHandler {
	return &ShopHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the shop routes, each gated by the capability
// table.
func (h *ShopHandler) RegisterRoutes(router fiber.Router, gate *middleware.CapabilityGate) {
	shops := router.Group("/shops")
	shops.Get("/", gate.Require(authz.EntityShop, authz.ActionList), h.HandleList)
	shops.Post("/", gate.Require(authz.EntityShop, authz.ActionCreate), h.HandleCreate)
	// Registered before the slug routes so "user" is never taken as a slug.
	shops.Get("/user/:user_id", gate.Require(authz.EntityShop, authz.ActionRetrieve), h.HandleGetByUser)
	shops.Get("/:slug", gate.Require(authz.EntityShop, authz.ActionRetrieve), h.HandleGetBySlug)
	shops.Put("/:slug", gate.Require(authz.EntityShop, authz.ActionUpdate), h.HandleUpdate)
	shops.Delete("/:slug", gate.Require(authz.EntityShop, authz.ActionDelete), h.HandleDelete)
	shops.Get("/:slug/products", gate.Require(authz.EntityProduct, authz.ActionList), h.HandleListProducts)
}

// ShopCreateRequest is the create payload. The user field carries either the
// numeric id of an existing owner or a nested new-owner object for the
// registration-through-shop-creation flow.
type ShopCreateRequest struct {
	Name    string          `json:"name" validate:"required,max=100"`
	Address string          `json:"address" validate:"omitempty,max=200"`
	Phone   string          `json:"phone" validate:"omitempty,max=20"`
	Website string          `json:"website" validate:"omitempty,max=100"`
	User    json.RawMessage `json:"user" validate:"required"`
}

// ShopOwnerRequest is the nested new-owner payload.
type ShopOwnerRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	RePassword string `json:"re_password" validate:"required,eqfield=Password"`
}

// HandleList retrieves all shops.
func (h *ShopHandler) HandleList(c *fiber.Ctx) error {
	shops, err := h.service.GetAllShops()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shops)
}

// HandleGetBySlug retrieves a single shop by its slug.
func (h *ShopHandler) HandleGetBySlug(c *fiber.Ctx) error {
	shop, err := h.service.GetShopBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// HandleGetByUser retrieves the shop owned by the user at the numeric id.
func (h *ShopHandler) HandleGetByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID < 1 {
		return c.SendStatus(fiber.StatusNotFound)
	}
	shop, err := h.service.GetShopByUserID(uint(userID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// HandleListProducts retrieves the products of the shop at the given slug.
func (h *ShopHandler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.GetShopProducts(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleCreate creates a new shop, creating its owner inline when the user
// field carries a nested object instead of an id.
func (h *ShopHandler) HandleCreate(c *fiber.Ctx) error {
	var req ShopCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	shop := &models.Shop{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Website: req.Website,
	}

	var owner *models.User
	rawUser := bytes.TrimSpace(req.User)
	if len(rawUser) > 0 && rawUser[0] == '{' {
		var ownerReq ShopOwnerRequest
		if err := json.Unmarshal(rawUser, &ownerReq); err != nil {
			return respondBadBody(c, err)
		}
		if err := h.validate.Struct(ownerReq); err != nil {
			return respondValidation(c, err)
		}
		owner = &models.User{
			Username: ownerReq.Username,
			Email:    ownerReq.Email,
			Password: ownerReq.Password,
		}
	} else {
		var userID uint
		if err := json.Unmarshal(rawUser, &userID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"user": "must be an existing user id or a new user object"},
			})
		}
		shop.UserID = userID
	}

	created, err := h.service.CreateShop(shop, owner)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate updates the shop at the given slug. Name and owning user are
// required; the slug itself never changes.
func (h *ShopHandler) HandleUpdate(c *fiber.Ctx) error {
	var fields models.Shop
	if err := c.BodyParser(&fields); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(fields); err != nil {
		return respondValidation(c, err)
	}
	shop, err := h.service.UpdateShop(c.Params("slug"), &fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(shop)
}

// HandleDelete deletes the shop at the given slug along with its products.
func (h *ShopHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteShop(c.Params("slug")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
