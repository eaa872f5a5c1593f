package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/services"
)

// AuthHandler handles HTTP requests for the authentication collaborator:
// registration, token issuance/refresh/verify and password-reset
// confirmation.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the authentication routes. All of them are public
// by design; the tokens they issue are what the capability gate checks.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/refresh", h.HandleRefresh)
	authRoutes.Post("/verify", h.HandleVerify)
	authRoutes.Post("/password/reset/confirm", h.HandleResetPassword)
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		if strings.Contains(err.Error(), "already taken") || strings.Contains(err.Error(), "already registered") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Registration failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	token, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// TokenRequest carries a previously issued token for refresh or verify.
type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// HandleRefresh exchanges a still-valid token for a fresh one.
func (h *AuthHandler) HandleRefresh(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	token, err := h.authService.RefreshToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleVerify reports whether the supplied token is currently valid.
func (h *AuthHandler) HandleVerify(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if _, err := h.authService.ValidateToken(req.Token); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
		})
	}
	return c.JSON(fiber.Map{"message": "Token is valid"})
}

// ResetPasswordRequest is the password-reset confirmation payload. The uid
// and token pair comes from the reset link delivered out of band.
type ResetPasswordRequest struct {
	UID         uint   `json:"uid" validate:"required"`
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// HandleResetPassword confirms a password reset.
func (h *AuthHandler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.authService.ResetPassword(req.UID, req.Token, req.NewPassword); err != nil {
		// An unknown uid is deliberately reported the same way as a bad
		// token.
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"token": "invalid or expired reset token"},
			})
		}
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
