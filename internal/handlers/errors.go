package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/apperrors"
)

// newValidator resolves field names from json tags so 400 bodies speak the
// wire vocabulary ("user", "re_password") instead of Go field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// respondError translates the store/service error taxonomy into the HTTP
// contract: 400 with field messages for validation failures, empty-body 404
// for missing rows, 400 for slug and QR encoding failures, 500 otherwise.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  vErr.Fields,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidName), errors.Is(err, apperrors.ErrEncoding):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.Printf("Unhandled error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

// respondValidation flattens validator.ValidationErrors into the standard 400
// body with a field→message map.
func respondValidation(c *fiber.Ctx, err error) error {
	messages := make(map[string]string)
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, e := range vErrs {
			messages[e.Field()] = fmt.Sprintf("failed on the '%s' rule", e.Tag())
		}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  messages,
	})
}

// respondBadBody is the reply for a request body that does not parse at all.
func respondBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
