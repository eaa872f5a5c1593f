package services_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/services"
)

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
		IsStaff:  true, // must be stripped during registration
	}

	// Test successful registration
	mockRepo.On("GetByUsername", user.Username).Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.False(t, user.IsStaff, "registration must never grant staff")
	assert.False(t, user.IsSuperuser)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.Password, "password must be hashed before storage")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Test username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "username 'testuser' already taken")
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByUsername", user.Username).Return(nil, fmt.Errorf("not found")).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email 'test@example.com' already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       123,
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
		IsStaff:  true,
		IsActive: true,
	}

	// Test successful login
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, user.Username, claims["username"])
	assert.Equal(t, true, claims["is_staff"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("testuser", "wrongpassword")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (user not found) - same generic error
	mockRepo.On("GetByUsername", "nonexistentuser").Return(nil, fmt.Errorf("not found")).Once()
	_, err = authService.LoginUser("nonexistentuser", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	mockRepo.AssertExpectations(t)

	// Test deactivated account
	inactive := &models.User{ID: 7, Username: "gone", Password: string(hashedPassword), IsActive: false}
	mockRepo.On("GetByUsername", "gone").Return(inactive, nil).Once()
	_, err = authService.LoginUser("gone", "password123")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Generate a valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(123),
		"username": "testuser",
		"exp":      jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	// Test valid token
	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, float64(123), claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])

	// Test garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	// Test token signed with a different secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": float64(123),
		"exp":     jwt.TimeFunc().Add(time.Hour).Unix(),
	})
	foreignString, _ := foreign.SignedString([]byte("some_other_secret"))
	_, err = authService.ValidateToken(foreignString)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  float64(123),
		"username": "testuser",
		"exp":      jwt.TimeFunc().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
}

func TestAuthService_RefreshToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: 42, Username: "refresher", Password: string(hashedPassword), IsActive: true}

	mockRepo.On("GetByUsername", "refresher").Return(user, nil).Once()
	original, err := authService.LoginUser("refresher", "password123")
	assert.NoError(t, err)

	// Refresh reloads the user so flag changes take effect
	mockRepo.On("GetByID", uint(42)).Return(user, nil).Once()
	refreshed, err := authService.RefreshToken(original)
	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed)
	mockRepo.AssertExpectations(t)

	// A deactivated account cannot refresh
	mockRepo.On("GetByID", uint(42)).Return(&models.User{ID: 42, IsActive: false}, nil).Once()
	_, err = authService.RefreshToken(original)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))
	mockRepo.AssertExpectations(t)

	// A garbage token cannot refresh
	_, err = authService.RefreshToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthService_PasswordReset(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{ID: 9, Username: "forgetful", Email: "f@example.com", IsActive: true}

	mockRepo.On("GetByEmail", "f@example.com").Return(user, nil).Once()
	mockRepo.On("Update", user).Return(nil).Once()
	uid, token, err := authService.GeneratePasswordResetToken("f@example.com")
	assert.NoError(t, err)
	assert.Equal(t, uint(9), uid)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, user.ResetToken)
	mockRepo.AssertExpectations(t)

	// Wrong token is rejected
	mockRepo.On("GetByID", uint(9)).Return(user, nil).Once()
	err = authService.ResetPassword(9, "wrong-token", "newpassword1")
	var vErr *apperrors.ValidationError
	assert.True(t, errors.As(err, &vErr))
	mockRepo.AssertExpectations(t)

	// Weak password is rejected, token survives for a retry
	mockRepo.On("GetByID", uint(9)).Return(user, nil).Once()
	err = authService.ResetPassword(9, token, "short")
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, token, user.ResetToken)
	mockRepo.AssertExpectations(t)

	// Correct token resets the password and burns the token
	mockRepo.On("GetByID", uint(9)).Return(user, nil).Once()
	mockRepo.On("Update", user).Return(nil).Once()
	err = authService.ResetPassword(9, token, "newpassword1")
	assert.NoError(t, err)
	assert.Empty(t, user.ResetToken)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword1")))
	mockRepo.AssertExpectations(t)
}
