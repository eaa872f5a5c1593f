package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/authz"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// ProductHandler handles HTTP requests for products, including the QR code
// read endpoints.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes, each gated by the capability
// table.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, gate *middleware.CapabilityGate) {
	products := router.Group("/products")
	products.Get("/", gate.Require(authz.EntityProduct, authz.ActionList), h.HandleList)
	products.Post("/", gate.Require(authz.EntityProduct, authz.ActionCreate), h.HandleCreate)
	products.Get("/:slug", gate.Require(authz.EntityProduct, authz.ActionRetrieve), h.HandleGetBySlug)
	products.Put("/:slug", gate.Require(authz.EntityProduct, authz.ActionUpdate), h.HandleUpdate)
	products.Delete("/:slug", gate.Require(authz.EntityProduct, authz.ActionDelete), h.HandleDelete)
	products.Get("/:slug/qr-code-png", gate.Require(authz.EntityProduct, authz.ActionRetrieve), h.HandleQRCodePNG)
	products.Get("/:slug/qr-code-pdf", gate.Require(authz.EntityProduct, authz.ActionRetrieve), h.HandleQRCodePDF)
}

// HandleList retrieves all products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetBySlug retrieves a single product by its slug.
func (h *ProductHandler) HandleGetBySlug(c *fiber.Ctx) error {
	product, err := h.service.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreate creates a new product. The QR payload is generated before the
// row is written; clients never supply it.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return respondBadBody(c, err)
	}
	product.QRCode = "" // derived, never authored
	if err := h.validate.Struct(product); err != nil {
		return respondValidation(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdate updates the product at the given slug and re-encodes its QR
// payload. The slug itself never changes.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var fields models.Product
	if err := c.BodyParser(&fields); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(fields); err != nil {
		return respondValidation(c, err)
	}
	product, err := h.service.UpdateProduct(c.Params("slug"), &fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleDelete deletes the product at the given slug.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("slug")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleQRCodePNG returns the stored QR payload as a data URI string.
func (h *ProductHandler) HandleQRCodePNG(c *fiber.Ctx) error {
	payload, err := h.service.ProductQRCodePNG(c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payload)
}

// HandleQRCodePDF returns the stored QR payload re-wrapped as a downloadable
// single-page PDF named after the slug.
func (h *ProductHandler) HandleQRCodePDF(c *fiber.Ctx) error {
	slug := c.Params("slug")
	pdfBytes, err := h.service.ProductQRCodePDF(slug)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", slug+".pdf"))
	return c.Send(pdfBytes)
}
