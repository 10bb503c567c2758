package repositories

import (
	"github.com/resenas-api/database"
	"github.com/resenas-api/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindAll retrieves all categories
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	result := database.DB.Find(&categories)
	return categories, result.Error
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(id uint) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "id = ?", id)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := database.DB.Create(&category)
	return category, result.Error
}
