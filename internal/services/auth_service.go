package services

import (
	"fmt"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// AuthService handles registration, token issuance and password resets. Token
// internals stay behind this type; the rest of the system only sees claims.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour,
	}
}

// RegisterUser registers a new user, hashes their password, and saves them to
// the database. Staff and superuser flags are never granted through
// registration.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByUsername(user.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.IsStaff = false
	user.IsSuperuser = false
	user.IsActive = true

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.issueToken(user)
}

// issueToken signs a token carrying the claims the capability middleware
// needs.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":      user.ID,
		"username":     user.Username,
		"is_staff":     user.IsStaff,
		"is_superuser": user.IsSuperuser,
		"exp":          time.Now().Add(s.tokenDurat).Unix(),
		"iat":          time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrInvalidCredentials)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token: %w", apperrors.ErrInvalidCredentials)
}

// RefreshToken exchanges a still-valid token for a fresh one. The user is
// reloaded so revoked accounts and changed flags take effect immediately.
func (s *AuthService) RefreshToken(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return "", fmt.Errorf("malformed user_id claim: %w", apperrors.ErrInvalidCredentials)
	}
	user, err := s.userRepo.GetByID(uint(userID))
	if err != nil || !user.IsActive {
		return "", apperrors.ErrInvalidCredentials
	}
	return s.issueToken(user)
}

// GeneratePasswordResetToken stores an opaque reset token on the account and
// returns it along with the user id. Delivering it to the user (email) is an
// external concern.
func (s *AuthService) GeneratePasswordResetToken(email string) (uint, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return 0, "", err
	}
	user.ResetToken = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return 0, "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return user.ID, user.ResetToken, nil
}

// ResetPassword confirms a reset: the token must match the one stored for the
// user, and the new password must pass the same strength bar as registration.
func (s *AuthService) ResetPassword(userID uint, token, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if token == "" || user.ResetToken != token {
		return apperrors.NewValidation("token", "invalid or expired reset token")
	}
	if len(newPassword) < 8 {
		return apperrors.NewValidation("new_password", "must be at least 8 characters")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.ResetToken = ""
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
