package repositories

import (
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAll retrieves all users
func (r *UserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	result := database.DB.Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByUsername retrieves a user by username
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "username = ?", username)
	return user, result.Error
}

// Create inserts a new user. A duplicate username surfaces as
// gorm.ErrDuplicatedKey through the unique index.
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}
