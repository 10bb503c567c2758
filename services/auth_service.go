package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/resenas-api/dto"
	"github.com/resenas-api/models"
	"github.com/resenas-api/repositories"
	"github.com/resenas-api/utils"
	"gorm.io/gorm"
)

// ErrUserAlreadyExists is returned when a registration hits the unique
// username constraint.
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrInvalidCredentials covers both unknown username and wrong password, so
// callers cannot enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")

var userRepo = repositories.NewUserRepository()

// Register creates a new user account. Uniqueness is enforced by the
// storage layer in a single insert, not by a lookup beforehand.
func Register(req dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           models.RoleUser,
		IsActive:       true,
	}

	user, err = userRepo.Create(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate looks up a user by username and verifies the password
func Authenticate(username, password string) (*models.User, error) {
	user, err := userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := utils.CheckPassword(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Login authenticates a user and returns a signed token
func Login(username, password string) (string, error) {
	user, err := Authenticate(username, password)
	if err != nil {
		return "", err
	}

	token, _, err := GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", err
	}

	return token, nil
}

// GetUser retrieves a user by ID
func GetUser(id uint) (*models.User, error) {
	user, err := userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID uint, username, role string) (string, time.Time, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Set expiration time
	expiresAt := time.Now().Add(24 * time.Hour)

	// Create claims with expiry time
	claims := dto.TokenClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	// Create the token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Sign the token with our secret key
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	// Parse the token
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	// Check if token is valid
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Get claims
	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
